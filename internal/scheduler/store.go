package scheduler

import (
	"context"
	"time"

	"caresync/internal/models"
)

// Store is the read-only view of the application database the sweep needs.
// The scheduler never writes through it; its only cross-tick memory is the
// log rows it reads and the idempotency keys the queue remembers.
type Store interface {
	// ActiveMedications returns all medications with the active flag set.
	ActiveMedications(ctx context.Context) ([]models.Medication, error)

	// HasMedicationLog reports whether any log row exists for the
	// medication with a scheduled time in [from, to).
	HasMedicationLog(ctx context.Context, medicationID string, from, to time.Time) (bool, error)

	// UpcomingAppointments returns reminder-eligible appointments starting
	// in [from, to).
	UpcomingAppointments(ctx context.Context, from, to time.Time) ([]models.Appointment, error)

	// UpcomingShifts returns SCHEDULED shifts starting in [from, to).
	UpcomingShifts(ctx context.Context, from, to time.Time) ([]models.CaregiverShift, error)

	// RefillCandidates returns active medications that track supply and
	// have fallen to or below their refill threshold.
	RefillCandidates(ctx context.Context) ([]models.Medication, error)

	// ActiveFamilyMemberIDs returns the user ids of active members of the
	// care recipient's family.
	ActiveFamilyMemberIDs(ctx context.Context, careRecipientID string) ([]string, error)
}
