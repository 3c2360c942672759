// Package queue defines the work-queue contract between the reminder
// scheduler (producer) and the notification workers (consumers), plus a
// Redis-backed client. Correctness across sweeps, restarts and replicas
// rests on the queue deduplicating jobs by idempotency key.
package queue

import (
	"context"
	"fmt"
	"time"
)

// Domain identifies which reminder class a job belongs to. The set is
// closed: adding a domain means extending the switches below, which the
// compiler/tests will catch.
type Domain int

const (
	DomainMedication Domain = iota
	DomainAppointment
	DomainShift
	DomainRefill
)

// QueueName returns the logical queue a domain's jobs are enqueued onto.
func (d Domain) QueueName() string {
	switch d {
	case DomainMedication:
		return "medication-reminders"
	case DomainAppointment:
		return "appointment-reminders"
	case DomainShift:
		return "shift-reminders"
	case DomainRefill:
		return "refill-alerts"
	}
	return fmt.Sprintf("unknown-domain-%d", int(d))
}

// KeyPrefix returns the idempotency-key prefix for a domain.
func (d Domain) KeyPrefix() string {
	switch d {
	case DomainMedication:
		return "medication"
	case DomainAppointment:
		return "appointment"
	case DomainShift:
		return "shift"
	case DomainRefill:
		return "refill"
	}
	return fmt.Sprintf("unknown-%d", int(d))
}

// JobType names the unit of work a consumer dispatches on.
const (
	TypeMedicationReminder  = "medication-reminder"
	TypeAppointmentReminder = "appointment-reminder"
	TypeShiftReminder       = "shift-reminder"
	TypeRefillAlert         = "refill-alert"
)

// Options controls how the queue backend handles a job after submission.
// The scheduler never touches a job again once enqueued.
type Options struct {
	// IdempotencyKey deduplicates the job at the queue layer. Enqueuing
	// the same key twice is a no-op the second time.
	IdempotencyKey string `json:"idempotency_key"`
	// Attempts is the total number of delivery attempts the consumer
	// should make.
	Attempts int `json:"attempts"`
	// Backoff is the delay between delivery attempts.
	Backoff time.Duration `json:"backoff"`
	// RemoveOnComplete drops the job record once processed successfully.
	RemoveOnComplete bool `json:"remove_on_complete"`
}

// DefaultOptions returns the retry policy used by medication, appointment
// and shift reminders.
func DefaultOptions(idempotencyKey string) Options {
	return Options{
		IdempotencyKey: idempotencyKey,
		Attempts:       3,
		Backoff:        30 * time.Second,
	}
}

// RefillOptions returns the policy for refill alerts: a stale refill alert
// has no value if retried hours later, so a single attempt, removed once
// delivered.
func RefillOptions(idempotencyKey string) Options {
	return Options{
		IdempotencyKey:   idempotencyKey,
		Attempts:         1,
		RemoveOnComplete: true,
	}
}

// Job is one reminder occurrence bound for a domain's queue.
type Job struct {
	Domain  Domain
	Type    string
	Payload interface{}
	Opts    Options
}

// Client is the enqueue interface the scheduler produces into.
type Client interface {
	Enqueue(ctx context.Context, job Job) error
}

// MedicationReminderPayload describes one upcoming dose.
type MedicationReminderPayload struct {
	MedicationID    string    `json:"medication_id"`
	CareRecipientID string    `json:"care_recipient_id"`
	Name            string    `json:"name"`
	Dosage          string    `json:"dosage,omitempty"`
	ScheduledTime   time.Time `json:"scheduled_time"`
	OffsetMinutes   int       `json:"offset_minutes"`
}

// AppointmentReminderPayload describes one upcoming appointment.
type AppointmentReminderPayload struct {
	AppointmentID   string    `json:"appointment_id"`
	CareRecipientID string    `json:"care_recipient_id"`
	Title           string    `json:"title"`
	Location        string    `json:"location,omitempty"`
	StartTime       time.Time `json:"start_time"`
	OffsetMinutes   int       `json:"offset_minutes"`
}

// ShiftReminderPayload describes one upcoming caregiver shift.
type ShiftReminderPayload struct {
	ShiftID         string    `json:"shift_id"`
	CareRecipientID string    `json:"care_recipient_id"`
	CaregiverID     string    `json:"caregiver_id"`
	StartTime       time.Time `json:"start_time"`
	OffsetMinutes   int       `json:"offset_minutes"`
}

// RefillAlertPayload describes a medication whose supply crossed its
// refill threshold, with the family members to notify.
type RefillAlertPayload struct {
	MedicationID    string   `json:"medication_id"`
	CareRecipientID string   `json:"care_recipient_id"`
	Name            string   `json:"name"`
	CurrentSupply   int      `json:"current_supply"`
	RefillAt        int      `json:"refill_at"`
	MemberIDs       []string `json:"member_ids"`
}
