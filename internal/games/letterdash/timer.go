package letterdash

import "time"

// RoundTimer tracks the deadline of the active round.
// It is driven by Poll from the frame loop, so expiry fires on the first
// frame at or after the deadline. Cancel makes a pending expiry impossible.
type RoundTimer struct {
	startedAt time.Time
	duration  time.Duration
	running   bool
}

// Start arms the timer. Any previous deadline is discarded.
func (t *RoundTimer) Start(now time.Time, d time.Duration) {
	t.startedAt = now
	t.duration = d
	t.running = true
}

// Cancel disarms the timer. Safe to call repeatedly.
func (t *RoundTimer) Cancel() {
	t.running = false
}

// Running reports whether an expiry is still pending.
func (t *RoundTimer) Running() bool {
	return t.running
}

// Elapsed returns the time since Start.
func (t *RoundTimer) Elapsed(now time.Time) time.Duration {
	return now.Sub(t.startedAt)
}

// Remaining returns the fraction of the budget left, in [0, 1].
// A stopped timer reports 0.
func (t *RoundTimer) Remaining(now time.Time) float64 {
	if !t.running || t.duration <= 0 {
		return 0
	}
	left := 1 - float64(t.Elapsed(now))/float64(t.duration)
	switch {
	case left < 0:
		return 0
	case left > 1:
		return 1
	}
	return left
}

// Poll returns true exactly once, on the first call at or after the deadline.
// The timer is stopped when it fires.
func (t *RoundTimer) Poll(now time.Time) bool {
	if !t.running {
		return false
	}
	if t.Elapsed(now) < t.duration {
		return false
	}
	t.running = false
	return true
}

// Delay is a cancellable one-shot deadline for presentation pauses.
type Delay struct {
	at    time.Time
	armed bool
}

// Schedule arms the delay to fire at the given time.
func (d *Delay) Schedule(at time.Time) {
	d.at = at
	d.armed = true
}

// Cancel disarms the delay.
func (d *Delay) Cancel() {
	d.armed = false
}

// Pending reports whether the delay is armed.
func (d *Delay) Pending() bool {
	return d.armed
}

// Poll returns true once when the deadline has passed, then disarms.
func (d *Delay) Poll(now time.Time) bool {
	if !d.armed || now.Before(d.at) {
		return false
	}
	d.armed = false
	return true
}
