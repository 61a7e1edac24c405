package analytics

import "time"

// Window boundary helpers. All boundaries are inclusive lower bounds in the
// caller's location (taken from now); callers needing a stable cutover must
// snapshot now themselves.

// dayStart returns midnight of now's calendar day, in epoch millis.
func dayStart(now time.Time) int64 {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).UnixMilli()
}

// weekStart returns the most recent Monday 00:00, in epoch millis.
func weekStart(now time.Time) int64 {
	offset := (int(now.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	monday := now.AddDate(0, 0, -offset)
	y, m, d := monday.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).UnixMilli()
}

// monthStart returns the first of now's month at 00:00, in epoch millis.
func monthStart(now time.Time) int64 {
	y, m, _ := now.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, now.Location()).UnixMilli()
}

// monthRange returns the inclusive [start, end] bounds of the calendar month
// monthsAgo before now's, plus the month's short name.
func monthRange(now time.Time, monthsAgo int) (start, end int64, label string) {
	// Anchor on the first of the current month so day-of-month overflow
	// (e.g. May 31 minus one month) cannot shift the target month.
	y, m, _ := now.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, now.Location()).AddDate(0, -monthsAgo, 0)
	last := first.AddDate(0, 1, 0).Add(-time.Millisecond)
	return first.UnixMilli(), last.UnixMilli(), first.Format("Jan")
}
