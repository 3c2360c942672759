package queue

import (
	"testing"
	"time"
)

func TestDomainQueueNames(t *testing.T) {
	tests := []struct {
		domain Domain
		queue  string
		prefix string
	}{
		{DomainMedication, "medication-reminders", "medication"},
		{DomainAppointment, "appointment-reminders", "appointment"},
		{DomainShift, "shift-reminders", "shift"},
		{DomainRefill, "refill-alerts", "refill"},
	}

	for _, tt := range tests {
		if got := tt.domain.QueueName(); got != tt.queue {
			t.Errorf("QueueName(%v) = %q, want %q", tt.domain, got, tt.queue)
		}
		if got := tt.domain.KeyPrefix(); got != tt.prefix {
			t.Errorf("KeyPrefix(%v) = %q, want %q", tt.domain, got, tt.prefix)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions("medication-med-1-2026-03-14-08:00-10")
	if opts.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", opts.Attempts)
	}
	if opts.Backoff != 30*time.Second {
		t.Errorf("backoff = %s, want 30s", opts.Backoff)
	}
	if opts.RemoveOnComplete {
		t.Error("default jobs should be kept after completion")
	}
}

func TestRefillOptions(t *testing.T) {
	opts := RefillOptions("refill-med-1-2026-03-14")
	if opts.Attempts != 1 {
		t.Errorf("attempts = %d, want 1 (stale refill alerts are worthless)", opts.Attempts)
	}
	if !opts.RemoveOnComplete {
		t.Error("refill jobs should be removed once delivered")
	}
}
