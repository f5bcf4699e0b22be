package engine

import "time"

// TimeSource supplies wall time to the scheduler
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the monotonic system clock
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now()
}
