package clock

import "time"

// FakeClock is a manually advanced Clock for tests. Game timestamps are
// stored in UTC, so the seed time is normalized on construction.
type FakeClock struct {
	now time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d. A negative d moves it back.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
