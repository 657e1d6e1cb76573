package booking

import "time"

// Clock supplies the current time. The schedule rules depend on "now" and
// "today", so tests inject a fixed clock instead of the wall clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation of Clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }
