package clock

import "time"

// Clock abstracts time so fetch timestamps stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Elapsed reports the time since start as seen by c. It never goes negative.
func Elapsed(c Clock, start time.Time) time.Duration {
	if start.IsZero() {
		return 0
	}
	d := c.Now().Sub(start)
	if d < 0 {
		return 0
	}
	return d
}
