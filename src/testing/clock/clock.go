package testingclock

type Clock struct {
	seconds int64
}

func NewClock(seconds int64) *Clock {
	return &Clock{seconds: seconds}
}

func (clock *Clock) Advance(seconds int64) {
	clock.seconds += seconds
}

func (clock *Clock) UnixSeconds() int64 {
	return clock.seconds
}
