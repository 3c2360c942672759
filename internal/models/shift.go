package models

import "time"

// ShiftStatus represents the lifecycle status of a caregiver shift
type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "SCHEDULED"
	ShiftCompleted ShiftStatus = "COMPLETED"
	ShiftCancelled ShiftStatus = "CANCELLED"
)

// CaregiverShift represents a caregiver's assigned shift for a care recipient
type CaregiverShift struct {
	ID              string      `gorm:"primaryKey;size:50" json:"id"`
	CareRecipientID string      `gorm:"size:50;not null;index" json:"care_recipient_id"`
	CaregiverID     string      `gorm:"size:50;not null;index" json:"caregiver_id"`
	StartTime       time.Time   `gorm:"not null;index" json:"start_time"`
	EndTime         time.Time   `gorm:"not null" json:"end_time"`
	Status          ShiftStatus `gorm:"size:20;not null;default:'SCHEDULED'" json:"status"`
	CreatedAt       time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for the CaregiverShift model
func (CaregiverShift) TableName() string {
	return "caregiver_shift"
}
