// Package scheduler implements the reminder sweep: a recurring loop that
// scans medications, appointments, caregiver shifts and supply levels, and
// enqueues one job per due reminder occurrence. The scheduler keeps no
// state of its own; deterministic idempotency keys plus queue-level dedupe
// make sweeps safe to repeat, skip, or run from multiple replicas.
package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"caresync/internal/queue"
)

// State is the scheduler lifecycle state.
type State int

const (
	Stopped State = iota
	Running
)

// Scheduler drives the recurring sweep. Create one with New; the zero
// value is not usable.
type Scheduler struct {
	store Store
	queue queue.Client
	cfg   Config
	clock func() time.Time

	mu    sync.Mutex
	state State
	stop  chan struct{}
	done  chan struct{}
}

// New creates a stopped scheduler.
func New(store Store, qc queue.Client, cfg Config) *Scheduler {
	return &Scheduler{
		store: store,
		queue: qc,
		cfg:   cfg,
		clock: time.Now,
	}
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start runs one sweep immediately, then arms the recurring timer. Calling
// Start while running is a warned no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.state == Running {
		s.mu.Unlock()
		log.Println("scheduler: already running, ignoring start")
		return
	}
	s.state = Running
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.mu.Unlock()

	log.Printf("scheduler: started, interval=%s", s.cfg.Interval)
	go s.run()
}

// Stop disarms the timer. An in-flight sweep is allowed to finish; Stop
// returns once the loop has exited.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.state != Running {
		s.mu.Unlock()
		return
	}
	s.state = Stopped
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done
	log.Println("scheduler: stopped")
}

func (s *Scheduler) run() {
	defer close(s.done)

	s.Sweep(s.clock())

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	last := s.clock()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := s.clock()
			// A gap wider than interval + due window means at least one
			// whole minute window elapsed unseen; those reminders are
			// gone (no backfill), so say so.
			if gap := now.Sub(last); gap > s.cfg.Interval+time.Minute {
				log.Printf("scheduler: tick delayed by %s, reminder windows may have been missed", gap-s.cfg.Interval)
			}
			last = now
			s.Sweep(now)
		}
	}
}

// Sweep runs the four domain scanners concurrently against one shared
// "now". A scanner failure (error or panic) is logged under its domain tag
// and never disturbs the other three or the next tick.
func (s *Scheduler) Sweep(now time.Time) {
	ctx := context.Background()
	started := s.clock()

	scans := []struct {
		name string
		fn   func(context.Context, time.Time) error
	}{
		{"medications", s.scanMedications},
		{"appointments", s.scanAppointments},
		{"shifts", s.scanShifts},
		{"refills", s.scanRefills},
	}

	var wg sync.WaitGroup
	for _, scan := range scans {
		wg.Add(1)
		go func(name string, fn func(context.Context, time.Time) error) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("scheduler: %s scan panicked: %v", name, r)
				}
			}()
			if err := fn(ctx, now); err != nil {
				log.Printf("scheduler: %s scan failed: %v", name, err)
			}
		}(scan.name, scan.fn)
	}
	wg.Wait()

	if elapsed := s.clock().Sub(started); elapsed > time.Minute {
		log.Printf("scheduler: sweep took %s, longer than the due window", elapsed)
	}
}
