package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"caresync/internal/queue"
)

// scanShifts mirrors the appointment scan for SCHEDULED caregiver shifts.
func (s *Scheduler) scanShifts(ctx context.Context, now time.Time) error {
	horizon := now.Add(time.Duration(maxOffset(s.cfg.ShiftOffsets))*time.Minute + s.cfg.LookaheadBuffer)
	shifts, err := s.store.UpcomingShifts(ctx, now, horizon)
	if err != nil {
		return fmt.Errorf("load upcoming shifts: %w", err)
	}

	for _, shift := range shifts {
		for _, offset := range s.cfg.ShiftOffsets {
			candidate := shift.StartTime.Add(-time.Duration(offset) * time.Minute)
			if !IsDue(now, candidate) {
				continue
			}

			job := queue.Job{
				Domain: queue.DomainShift,
				Type:   queue.TypeShiftReminder,
				Payload: queue.ShiftReminderPayload{
					ShiftID:         shift.ID,
					CareRecipientID: shift.CareRecipientID,
					CaregiverID:     shift.CaregiverID,
					StartTime:       shift.StartTime,
					OffsetMinutes:   offset,
				},
				Opts: queue.DefaultOptions(ShiftKey(shift.ID, offset)),
			}
			if err := s.queue.Enqueue(ctx, job); err != nil {
				log.Printf("scheduler: shifts: enqueue %s: %v", job.Opts.IdempotencyKey, err)
			}
		}
	}
	return nil
}
