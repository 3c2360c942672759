package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"caresync/internal/models"
	"caresync/internal/queue"
)

// scanMedications walks every active medication's dose times and enqueues a
// reminder for each (dose, offset) whose instant falls in this sweep's
// window, unless a caregiver already logged the dose. One medication's
// failure is logged and skipped so the rest of the batch still runs.
func (s *Scheduler) scanMedications(ctx context.Context, now time.Time) error {
	meds, err := s.store.ActiveMedications(ctx)
	if err != nil {
		return fmt.Errorf("load active medications: %w", err)
	}

	for _, med := range meds {
		if err := s.remindMedication(ctx, med, now); err != nil {
			log.Printf("scheduler: medications: medication %s: %v", med.ID, err)
		}
	}
	return nil
}

func (s *Scheduler) remindMedication(ctx context.Context, med models.Medication, now time.Time) error {
	for _, clockTime := range med.ScheduledTimes {
		scheduledAt, err := doseInstant(now, clockTime)
		if err != nil {
			log.Printf("scheduler: medications: medication %s has bad time %q: %v", med.ID, clockTime, err)
			continue
		}

		for _, offset := range s.cfg.MedicationOffsets {
			candidate := scheduledAt.Add(-time.Duration(offset) * time.Minute)
			if !IsDue(now, candidate) {
				continue
			}

			// Suppression: a log row anywhere in the dose's minute means a
			// caregiver already acted on it (given, missed or skipped).
			from, to := minuteWindow(scheduledAt)
			logged, err := s.store.HasMedicationLog(ctx, med.ID, from, to)
			if err != nil {
				return fmt.Errorf("log lookup for dose %s: %w", clockTime, err)
			}
			if logged {
				continue
			}

			job := queue.Job{
				Domain: queue.DomainMedication,
				Type:   queue.TypeMedicationReminder,
				Payload: queue.MedicationReminderPayload{
					MedicationID:    med.ID,
					CareRecipientID: med.CareRecipientID,
					Name:            med.Name,
					Dosage:          med.Dosage,
					ScheduledTime:   scheduledAt,
					OffsetMinutes:   offset,
				},
				Opts: queue.DefaultOptions(MedicationKey(med.ID, scheduledAt, offset)),
			}
			if err := s.queue.Enqueue(ctx, job); err != nil {
				log.Printf("scheduler: medications: enqueue %s: %v", job.Opts.IdempotencyKey, err)
			}
		}
	}
	return nil
}

// doseInstant combines today's date with an "HH:MM" clock time in now's
// location.
func doseInstant(now time.Time, clockTime string) (time.Time, error) {
	t, err := time.Parse("15:04", clockTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}
