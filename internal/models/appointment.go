package models

import "time"

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "SCHEDULED"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
)

// ReminderEligibleAppointmentStatuses are the statuses that still warrant
// upcoming-appointment reminders.
var ReminderEligibleAppointmentStatuses = []AppointmentStatus{
	AppointmentScheduled,
	AppointmentConfirmed,
}

// Appointment represents a one-time appointment for a care recipient
type Appointment struct {
	ID              string            `gorm:"primaryKey;size:50" json:"id"`
	CareRecipientID string            `gorm:"size:50;not null;index" json:"care_recipient_id"`
	Title           string            `gorm:"size:255;not null" json:"title"`
	Location        string            `gorm:"size:255" json:"location"`
	StartTime       time.Time         `gorm:"not null;index" json:"start_time"`
	Status          AppointmentStatus `gorm:"size:20;not null;default:'SCHEDULED'" json:"status"`
	CreatedAt       time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointment"
}
