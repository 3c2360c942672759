package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"caresync/internal/queue"
)

// scanAppointments enqueues reminders for eligible appointments whose
// reminder instant lands in this sweep's window. The store query is
// bounded to [now, now + maxOffset + lookahead] so the whole table is
// never walked. Appointments have no acted-upon log, so the lifetime-
// stable idempotency key alone prevents repeats across ticks.
func (s *Scheduler) scanAppointments(ctx context.Context, now time.Time) error {
	horizon := now.Add(time.Duration(maxOffset(s.cfg.AppointmentOffsets))*time.Minute + s.cfg.LookaheadBuffer)
	appts, err := s.store.UpcomingAppointments(ctx, now, horizon)
	if err != nil {
		return fmt.Errorf("load upcoming appointments: %w", err)
	}

	for _, appt := range appts {
		for _, offset := range s.cfg.AppointmentOffsets {
			candidate := appt.StartTime.Add(-time.Duration(offset) * time.Minute)
			if !IsDue(now, candidate) {
				continue
			}

			job := queue.Job{
				Domain: queue.DomainAppointment,
				Type:   queue.TypeAppointmentReminder,
				Payload: queue.AppointmentReminderPayload{
					AppointmentID:   appt.ID,
					CareRecipientID: appt.CareRecipientID,
					Title:           appt.Title,
					Location:        appt.Location,
					StartTime:       appt.StartTime,
					OffsetMinutes:   offset,
				},
				Opts: queue.DefaultOptions(AppointmentKey(appt.ID, offset)),
			}
			if err := s.queue.Enqueue(ctx, job); err != nil {
				log.Printf("scheduler: appointments: enqueue %s: %v", job.Opts.IdempotencyKey, err)
			}
		}
	}
	return nil
}
