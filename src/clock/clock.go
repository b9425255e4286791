package clock

import "time"

type Clock interface {
	// Returns the number of seconds elapsed since the Unix epoch.
	UnixSeconds() int64
}

// Clock backed by the system wall clock.
type UnixClock struct{}

func NewUnixClock() *UnixClock {
	return &UnixClock{}
}

func (clock *UnixClock) UnixSeconds() int64 {
	return time.Now().Unix()
}
