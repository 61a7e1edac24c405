package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"myhustle-backend/internal/domain"
)

func TestWeeklyBookingCounts(t *testing.T) {
	t.Run("All seven keys present when empty", func(t *testing.T) {
		counts := WeeklyBookingCounts(nil, testNow)

		assert.Len(t, counts, 7)
		for _, day := range WeekdayLabels {
			assert.Contains(t, counts, day)
			assert.Equal(t, 0, counts[day])
		}
	})

	t.Run("Accepted counts, denied does not", func(t *testing.T) {
		bookings := []domain.Booking{
			{RequestedDate: "2025-06-18", Status: domain.BookingStatusAccepted}, // Wednesday
			{RequestedDate: "2025-06-19", Status: domain.BookingStatusDenied},   // Thursday
		}

		counts := WeeklyBookingCounts(bookings, testNow)

		assert.Equal(t, domain.WeekdayCounts{
			"Mon": 0, "Tue": 0, "Wed": 1, "Thu": 0, "Fri": 0, "Sat": 0, "Sun": 0,
		}, counts)
	})

	t.Run("Pending counts alongside accepted", func(t *testing.T) {
		bookings := []domain.Booking{
			{RequestedDate: "2025-06-16", Status: domain.BookingStatusPending},
			{RequestedDate: "2025-06-16", Status: domain.BookingStatusAccepted},
			{RequestedDate: "2025-06-16", Status: domain.BookingStatusCompleted},
			{RequestedDate: "2025-06-16", Status: domain.BookingStatusCancelled},
		}

		counts := WeeklyBookingCounts(bookings, testNow)
		assert.Equal(t, 2, counts["Mon"])
	})

	t.Run("Mismatched date formats silently count zero", func(t *testing.T) {
		bookings := []domain.Booking{
			{RequestedDate: "18/06/2025", Status: domain.BookingStatusAccepted},
			{RequestedDate: "2025-6-18", Status: domain.BookingStatusAccepted},
			{RequestedDate: "", Status: domain.BookingStatusAccepted},
		}

		counts := WeeklyBookingCounts(bookings, testNow)
		for _, day := range WeekdayLabels {
			assert.Equal(t, 0, counts[day])
		}
	})

	t.Run("Dates outside the current week are excluded", func(t *testing.T) {
		bookings := []domain.Booking{
			{RequestedDate: "2025-06-15", Status: domain.BookingStatusAccepted}, // previous Sunday
			{RequestedDate: "2025-06-23", Status: domain.BookingStatusAccepted}, // next Monday
			{RequestedDate: "2025-06-22", Status: domain.BookingStatusAccepted}, // this Sunday
		}

		counts := WeeklyBookingCounts(bookings, testNow)

		assert.Equal(t, 1, counts["Sun"])
		assert.Equal(t, 0, counts["Mon"])
	})

	t.Run("Sum bounded by eligible bookings", func(t *testing.T) {
		bookings := []domain.Booking{
			{RequestedDate: "2025-06-17", Status: domain.BookingStatusAccepted},
			{RequestedDate: "2025-06-17", Status: domain.BookingStatusPending},
			{RequestedDate: "bogus", Status: domain.BookingStatusPending},
			{RequestedDate: "2025-06-20", Status: domain.BookingStatusDenied},
		}

		counts := WeeklyBookingCounts(bookings, testNow)

		sum := 0
		for _, c := range counts {
			sum += c
		}
		eligible := 0
		for _, b := range bookings {
			if b.Status == domain.BookingStatusAccepted || b.Status == domain.BookingStatusPending {
				eligible++
			}
		}
		assert.LessOrEqual(t, sum, eligible)
	})
}
