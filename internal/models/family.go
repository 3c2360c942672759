package models

import (
	"time"

	"gorm.io/datatypes"
)

// MemberStatus represents a family member's standing within a family
type MemberStatus string

const (
	MemberActive  MemberStatus = "active"
	MemberInvited MemberStatus = "invited"
	MemberRemoved MemberStatus = "removed"
)

// CareRecipient represents the person being cared for; every medication,
// appointment and shift belongs to one recipient.
type CareRecipient struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	FamilyID  string    `gorm:"size:50;not null;index" json:"family_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// FamilyMember represents a user's membership in a care family. Active
// members are the recipients of refill alerts; delivery channel choices
// live in NotificationPrefs and are interpreted by the notification
// workers, not the scheduler.
type FamilyMember struct {
	ID                uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	FamilyID          string         `gorm:"size:50;not null;index" json:"family_id"`
	UserID            string         `gorm:"size:50;not null;index" json:"user_id"`
	Role              string         `gorm:"size:20;not null;default:'caregiver'" json:"role"`
	Status            MemberStatus   `gorm:"size:10;not null;default:'active'" json:"status"`
	NotificationPrefs datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"notification_prefs"`
	CreatedAt         time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for the CareRecipient model
func (CareRecipient) TableName() string {
	return "care_recipient"
}

// TableName specifies the table name for the FamilyMember model
func (FamilyMember) TableName() string {
	return "family_member"
}
