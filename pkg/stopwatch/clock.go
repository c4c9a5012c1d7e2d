package stopwatch

import "time"

// Clock supplies the current time. Implementations used in production must
// return values carrying a monotonic reading (as time.Now does).
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads time.Now.
var SystemClock Clock = ClockFunc(time.Now)
