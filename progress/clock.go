package progress

import "time"

// Clock abstracts time so trackers can be tested deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// NewClock returns the wall clock.
func NewClock() Clock {
	return realClock{}
}
