package scheduler

import (
	"testing"
	"time"
)

func TestParseOffsets(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"30,10", []int{30, 10}, false},
		{"15", []int{15}, false},
		{" 60 , 15 ", []int{60, 15}, false},
		{"abc", nil, true},
		{"-5", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		got, err := parseOffsets(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseOffsets(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseOffsets(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseOffsets(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("SCHEDULER_INTERVAL_MS", "30000")
	t.Setenv("MEDICATION_REMINDER_OFFSETS", "45,20,5")
	t.Setenv("REMINDER_LOOKAHEAD_MINUTES", "90")

	cfg := LoadConfig()
	if cfg.Interval != 30*time.Second {
		t.Errorf("Interval = %s, want 30s", cfg.Interval)
	}
	if len(cfg.MedicationOffsets) != 3 || cfg.MedicationOffsets[0] != 45 {
		t.Errorf("MedicationOffsets = %v, want [45 20 5]", cfg.MedicationOffsets)
	}
	if cfg.LookaheadBuffer != 90*time.Minute {
		t.Errorf("LookaheadBuffer = %s, want 90m", cfg.LookaheadBuffer)
	}
	// Unset lists keep their defaults.
	if len(cfg.ShiftOffsets) != 1 || cfg.ShiftOffsets[0] != 15 {
		t.Errorf("ShiftOffsets = %v, want [15]", cfg.ShiftOffsets)
	}
}

func TestLoadConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("SCHEDULER_INTERVAL_MS", "soon")
	t.Setenv("APPOINTMENT_REMINDER_OFFSETS", "a,b")

	cfg := LoadConfig()
	if cfg.Interval != time.Minute {
		t.Errorf("Interval = %s, want default 1m", cfg.Interval)
	}
	if len(cfg.AppointmentOffsets) != 2 || cfg.AppointmentOffsets[0] != 60 {
		t.Errorf("AppointmentOffsets = %v, want default [60 15]", cfg.AppointmentOffsets)
	}
}

func TestMaxOffset(t *testing.T) {
	if got := maxOffset([]int{30, 10}); got != 30 {
		t.Errorf("maxOffset = %d, want 30", got)
	}
	if got := maxOffset(nil); got != 0 {
		t.Errorf("maxOffset(nil) = %d, want 0", got)
	}
}
