package analytics

import (
	"time"

	"myhustle-backend/internal/domain"
)

// WeekdayLabels are the histogram keys in display order.
var WeekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeeklyBookingCounts counts ACCEPTED and PENDING bookings per day of the
// current Monday–Sunday week. A booking matches a day when its requestedDate
// string equals that day's YYYY-MM-DD; any other format silently counts as
// no match. All seven keys are always present, zero-filled.
func WeeklyBookingCounts(bookings []domain.Booking, now time.Time) domain.WeekdayCounts {
	counts := domain.WeekdayCounts{}
	for _, day := range WeekdayLabels {
		counts[day] = 0
	}

	monday := time.UnixMilli(weekStart(now)).In(now.Location())
	for offset := 0; offset < 7; offset++ {
		date := monday.AddDate(0, 0, offset).Format("2006-01-02")
		day := WeekdayLabels[offset]
		for _, b := range bookings {
			if b.RequestedDate != date {
				continue
			}
			if b.Status == domain.BookingStatusAccepted || b.Status == domain.BookingStatusPending {
				counts[day]++
			}
		}
	}
	return counts
}
