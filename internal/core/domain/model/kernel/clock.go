package kernel

import "time"

// Clock supplies the current time to components that reason about "now":
// attendance day windows, shift labels, pickup/delivery timestamps and the
// expiry sweeps. Injecting it instead of calling time.Now directly lets tests
// simulate day and shift boundary crossings deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// NewSystemClock creates the production clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// DayWindow returns the local-day boundaries [00:00:00.000, 23:59:59.999...]
// containing t. Attendance gating and the one-open-attendance-per-day rule
// are both defined over this window.
func DayWindow(t time.Time) (start, end time.Time) {
	year, month, day := t.Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end = start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
