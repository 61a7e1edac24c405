// Package analytics contains the pure aggregation functions behind the owner
// dashboard: booking summaries, time-windowed revenue, top sellers, monthly
// trends and the weekly booking histogram. Every function operates on
// already-fetched record lists, performs no I/O, and takes the reference
// time as an argument so results are deterministic.
package analytics

import (
	"time"

	"myhustle-backend/internal/domain"
)

// BookingStats summarizes an unordered booking list. DENIED and MODIFIED
// bookings count toward TotalBookings only, so the per-status counts sum to
// at most the total. Empty input yields all zeros.
func BookingStats(bookings []domain.Booking, now time.Time) domain.BookingStats {
	todayStart := dayStart(now)

	stats := domain.BookingStats{TotalBookings: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingStatusPending:
			stats.PendingBookings++
		case domain.BookingStatusAccepted:
			stats.ConfirmedBookings++
		case domain.BookingStatusCompleted:
			stats.CompletedBookings++
		case domain.BookingStatusCancelled:
			stats.CancelledBookings++
		}
		if b.CreatedAt >= todayStart {
			stats.TodayBookings++
		}
	}
	return stats
}

// CompletedBookings filters to status COMPLETED, preserving input order.
func CompletedBookings(bookings []domain.Booking) []domain.Booking {
	completed := []domain.Booking{}
	for _, b := range bookings {
		if b.Status == domain.BookingStatusCompleted {
			completed = append(completed, b)
		}
	}
	return completed
}
