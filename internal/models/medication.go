package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// MedicationLogStatus represents how a scheduled dose was resolved
type MedicationLogStatus string

const (
	DoseGiven   MedicationLogStatus = "GIVEN"
	DoseMissed  MedicationLogStatus = "MISSED"
	DoseSkipped MedicationLogStatus = "SKIPPED"
)

// ClockTimes represents an ordered list of "HH:MM" dose times stored as JSONB
type ClockTimes []string

func (c *ClockTimes) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	return json.Marshal(c)
}

func (c *ClockTimes) Scan(value interface{}) error {
	if value == nil {
		*c = make([]string, 0)
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported type for ClockTimes: %T", value)
	}
}

// Medication represents a recurring daily medication for a care recipient
type Medication struct {
	ID              string     `gorm:"primaryKey;size:50" json:"id"`
	CareRecipientID string     `gorm:"size:50;not null;index" json:"care_recipient_id"`
	Name            string     `gorm:"size:255;not null" json:"name"`
	Dosage          string     `gorm:"size:100" json:"dosage"`
	ScheduledTimes  ClockTimes `gorm:"type:jsonb;default:'[]'" json:"scheduled_times"`
	Active          bool       `gorm:"not null;default:true;index" json:"active"`
	CurrentSupply   *int       `json:"current_supply"`
	RefillAt        *int       `json:"refill_at"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
}

// MedicationLog records that a caregiver acted on a scheduled dose.
// Existence of a row for (medication, scheduled_time) suppresses reminders
// for that dose.
type MedicationLog struct {
	ID            uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	MedicationID  string              `gorm:"size:50;not null;index:idx_medication_log_sched" json:"medication_id"`
	ScheduledTime time.Time           `gorm:"not null;index:idx_medication_log_sched" json:"scheduled_time"`
	GivenTime     *time.Time          `json:"given_time"`
	Status        MedicationLogStatus `gorm:"size:10;not null" json:"status"`
	CreatedAt     time.Time           `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook is called before creating a new medication log
func (l *MedicationLog) BeforeCreate(tx *gorm.DB) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	return nil
}

// TableName specifies the table name for the Medication model
func (Medication) TableName() string {
	return "medication"
}

// TableName specifies the table name for the MedicationLog model
func (MedicationLog) TableName() string {
	return "medication_log"
}
