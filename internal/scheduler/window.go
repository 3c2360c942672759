package scheduler

import "time"

// IsDue reports whether candidate's reminder instant should fire on a sweep
// running at now. A candidate owns the one-minute window starting at its
// minute boundary; it is due in exactly the sweep whose now lands inside
// that window. Sweeps run at most a minute apart, so each window is seen by
// exactly one sweep; a window that fully elapses while the process is
// paused is skipped, never backfilled.
func IsDue(now, candidate time.Time) bool {
	return now.Truncate(time.Minute).Equal(candidate.Truncate(time.Minute))
}

// minuteWindow returns the closed-open interval [start, end) covering the
// minute that t falls in. Used to match log rows recorded anywhere within a
// dose's scheduled minute.
func minuteWindow(t time.Time) (start, end time.Time) {
	start = t.Truncate(time.Minute)
	return start, start.Add(time.Minute)
}
