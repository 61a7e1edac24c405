package analytics

import (
	"time"

	"myhustle-backend/internal/domain"
)

// Revenue computes gross revenue for overlapping windows: today (local
// midnight), this week (most recent Monday 00:00), this month (first of
// month 00:00) and all time. Order totals are summed directly; completed
// bookings are priced through the table. All lower bounds are inclusive on
// createdAt; there is no upper bound beyond now. Each window is summed
// independently, so no ordering relation between them is guaranteed.
func Revenue(orders []domain.Order, completedBookings []domain.Booking, prices PriceTable, now time.Time) domain.RevenueSummary {
	todayStart := dayStart(now)
	wkStart := weekStart(now)
	moStart := monthStart(now)

	var summary domain.RevenueSummary
	summary.TotalTransactions = len(orders) + len(completedBookings)

	for _, o := range orders {
		summary.TotalRevenue += o.Total
		if o.CreatedAt >= todayStart {
			summary.TodayRevenue += o.Total
		}
		if o.CreatedAt >= wkStart {
			summary.WeekRevenue += o.Total
		}
		if o.CreatedAt >= moStart {
			summary.MonthRevenue += o.Total
		}
	}

	for _, b := range completedBookings {
		price := prices.Resolve(b)
		summary.TotalRevenue += price
		if b.CreatedAt >= todayStart {
			summary.TodayRevenue += price
		}
		if b.CreatedAt >= wkStart {
			summary.WeekRevenue += price
		}
		if b.CreatedAt >= moStart {
			summary.MonthRevenue += price
		}
	}

	return summary
}
