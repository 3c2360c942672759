package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"caresync/internal/queue"
)

// scanRefills alerts the family when a medication's supply falls to its
// refill threshold. Supply does not need minute granularity, so the scan
// only touches the store on the top of the hour; the day-scoped key still
// caps it at one alert per medication per calendar day.
func (s *Scheduler) scanRefills(ctx context.Context, now time.Time) error {
	if now.Minute() != 0 {
		return nil
	}

	meds, err := s.store.RefillCandidates(ctx)
	if err != nil {
		return fmt.Errorf("load refill candidates: %w", err)
	}

	for _, med := range meds {
		if med.CurrentSupply == nil || med.RefillAt == nil {
			continue
		}

		memberIDs, err := s.store.ActiveFamilyMemberIDs(ctx, med.CareRecipientID)
		if err != nil {
			log.Printf("scheduler: refills: medication %s: members lookup: %v", med.ID, err)
			continue
		}
		if len(memberIDs) == 0 {
			// Nobody to notify.
			continue
		}

		job := queue.Job{
			Domain: queue.DomainRefill,
			Type:   queue.TypeRefillAlert,
			Payload: queue.RefillAlertPayload{
				MedicationID:    med.ID,
				CareRecipientID: med.CareRecipientID,
				Name:            med.Name,
				CurrentSupply:   *med.CurrentSupply,
				RefillAt:        *med.RefillAt,
				MemberIDs:       memberIDs,
			},
			Opts: queue.RefillOptions(RefillKey(med.ID, now)),
		}
		if err := s.queue.Enqueue(ctx, job); err != nil {
			log.Printf("scheduler: refills: enqueue %s: %v", job.Opts.IdempotencyKey, err)
		}
	}
	return nil
}
