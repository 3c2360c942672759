package scheduler

import (
	"fmt"
	"strings"
	"time"

	"caresync/internal/queue"
)

// BuildKey derives the deterministic idempotency key for one logical
// reminder occurrence: {domain}-{entityID}[-{discriminator}][-{offset}].
// The discriminator is empty for one-time events (the entity id already
// identifies the occurrence) and a negative offset omits the offset
// segment (refill alerts are not offset-based). Re-running a scanner for
// the same occurrence always reproduces the same key, which is what lets
// the queue collapse duplicates.
func BuildKey(domain queue.Domain, entityID, discriminator string, offsetMinutes int) string {
	parts := []string{domain.KeyPrefix(), entityID}
	if discriminator != "" {
		parts = append(parts, discriminator)
	}
	if offsetMinutes >= 0 {
		parts = append(parts, fmt.Sprintf("%d", offsetMinutes))
	}
	return strings.Join(parts, "-")
}

// MedicationKey identifies one dose of one medication on one calendar day,
// per reminder offset.
func MedicationKey(medicationID string, scheduledAt time.Time, offsetMinutes int) string {
	disc := scheduledAt.Format("2006-01-02") + "-" + scheduledAt.Format("15:04")
	return BuildKey(queue.DomainMedication, medicationID, disc, offsetMinutes)
}

// AppointmentKey identifies an appointment reminder per offset; the key is
// stable for the appointment's whole lifetime.
func AppointmentKey(appointmentID string, offsetMinutes int) string {
	return BuildKey(queue.DomainAppointment, appointmentID, "", offsetMinutes)
}

// ShiftKey identifies a shift reminder per offset.
func ShiftKey(shiftID string, offsetMinutes int) string {
	return BuildKey(queue.DomainShift, shiftID, "", offsetMinutes)
}

// RefillKey identifies at most one refill alert per medication per
// calendar day.
func RefillKey(medicationID string, day time.Time) string {
	return BuildKey(queue.DomainRefill, medicationID, day.Format("2006-01-02"), -1)
}
