package component

import "time"

// SpoolTimer counts a fixed duration down; it only advances when ticked
type SpoolTimer struct {
	Duration time.Duration
	Elapsed  time.Duration
}

// NewSpoolTimer returns a timer at full duration
func NewSpoolTimer(d time.Duration) SpoolTimer {
	return SpoolTimer{Duration: d}
}

// Tick advances the timer, saturating at Duration
func (t *SpoolTimer) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	t.Elapsed += dt
	if t.Elapsed > t.Duration {
		t.Elapsed = t.Duration
	}
}

// Finished reports whether the full duration has elapsed
func (t SpoolTimer) Finished() bool {
	return t.Elapsed >= t.Duration
}

// Remaining returns time left before Finished
func (t SpoolTimer) Remaining() time.Duration {
	return t.Duration - t.Elapsed
}

// Reset returns the timer to full duration
func (t *SpoolTimer) Reset() {
	t.Elapsed = 0
}
