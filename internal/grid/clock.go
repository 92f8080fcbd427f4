package grid

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// Hosts use it to decide which month to open on.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ForToday returns the fully enabled month containing the clock's current date.
func ForToday(c Clock, weekStart time.Weekday) (MonthSpec, error) {
	now := c.Now()
	return FullMonth(int(now.Month())-1, now.Year(), weekStart)
}
