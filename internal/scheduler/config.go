package scheduler

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the scheduler's tuning surface. Offsets are minutes before the
// event at which a reminder fires; each offset is evaluated independently.
type Config struct {
	Interval           time.Duration
	MedicationOffsets  []int
	AppointmentOffsets []int
	ShiftOffsets       []int
	// LookaheadBuffer is added past the largest offset when bounding the
	// appointment/shift queries, so a row is fetched a little before its
	// first reminder is due.
	LookaheadBuffer time.Duration
}

// DefaultConfig mirrors the production defaults.
func DefaultConfig() Config {
	return Config{
		Interval:           time.Minute,
		MedicationOffsets:  []int{30, 10},
		AppointmentOffsets: []int{60, 15},
		ShiftOffsets:       []int{15},
		LookaheadBuffer:    time.Hour,
	}
}

// LoadConfig reads the scheduler configuration from the environment,
// falling back to defaults for anything unset. Malformed values are logged
// and the default kept, so a bad env var degrades rather than crashes the
// process.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SCHEDULER_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.Interval = time.Duration(ms) * time.Millisecond
		} else {
			log.Printf("scheduler: invalid SCHEDULER_INTERVAL_MS %q, using %s", v, cfg.Interval)
		}
	}
	cfg.MedicationOffsets = offsetsFromEnv("MEDICATION_REMINDER_OFFSETS", cfg.MedicationOffsets)
	cfg.AppointmentOffsets = offsetsFromEnv("APPOINTMENT_REMINDER_OFFSETS", cfg.AppointmentOffsets)
	cfg.ShiftOffsets = offsetsFromEnv("SHIFT_REMINDER_OFFSETS", cfg.ShiftOffsets)
	if v := os.Getenv("REMINDER_LOOKAHEAD_MINUTES"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m >= 0 {
			cfg.LookaheadBuffer = time.Duration(m) * time.Minute
		} else {
			log.Printf("scheduler: invalid REMINDER_LOOKAHEAD_MINUTES %q, using %s", v, cfg.LookaheadBuffer)
		}
	}
	return cfg
}

// offsetsFromEnv parses a comma-separated minutes list like "30,10".
func offsetsFromEnv(key string, fallback []int) []int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	offsets, err := parseOffsets(v)
	if err != nil {
		log.Printf("scheduler: invalid %s %q: %v, using defaults", key, v, err)
		return fallback
	}
	return offsets
}

func parseOffsets(s string) ([]int, error) {
	var offsets []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("offset %q is not a number", part)
		}
		if n < 0 {
			return nil, fmt.Errorf("offset %d is negative", n)
		}
		offsets = append(offsets, n)
	}
	if len(offsets) == 0 {
		return nil, fmt.Errorf("no offsets in %q", s)
	}
	return offsets, nil
}

// maxOffset returns the largest offset in minutes, 0 for an empty list.
func maxOffset(offsets []int) int {
	max := 0
	for _, o := range offsets {
		if o > max {
			max = o
		}
	}
	return max
}
