package resolver

import "time"

// Instant is the point in time that seeds an identifier: either "now",
// sampled by whoever consumes the Instant, or a fixed parsed time.
type Instant struct {
	t     time.Time
	fixed bool
}

// Now returns an Instant that resolves to the clock reading at use time.
func Now() Instant { return Instant{} }

// At returns a fixed Instant truncated to millisecond precision.
func At(t time.Time) Instant {
	return Instant{t: t.Truncate(time.Millisecond), fixed: true}
}

// IsNow reports whether the Instant defers to the clock.
func (i Instant) IsNow() bool { return !i.fixed }

// Time returns the fixed time, or the clock reading truncated to the
// millisecond when the Instant is Now. A nil clock means time.Now.
func (i Instant) Time(clock func() time.Time) time.Time {
	if i.fixed {
		return i.t
	}
	if clock == nil {
		clock = time.Now
	}
	return clock().Truncate(time.Millisecond)
}

func (i Instant) String() string {
	if !i.fixed {
		return "now"
	}
	return i.t.UTC().Format(time.RFC3339Nano)
}
