package analytics

import (
	"sort"
	"time"

	"myhustle-backend/internal/domain"
)

// TopSellers groups order line items by product name, sums quantity and
// price×quantity, and returns the top 5 by revenue. Ties keep first-seen
// input order (stable sort); there is deliberately no secondary key.
func TopSellers(orders []domain.Order) []domain.ProductSales {
	type tally struct {
		units   int
		revenue float64
	}
	totals := map[string]*tally{}
	names := []string{} // first-seen order, for stable ranking

	for _, o := range orders {
		for _, item := range o.Items {
			t, ok := totals[item.Name]
			if !ok {
				t = &tally{}
				totals[item.Name] = t
				names = append(names, item.Name)
			}
			t.units += item.Quantity
			t.revenue += item.Price * float64(item.Quantity)
		}
	}

	ranked := make([]domain.ProductSales, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, domain.ProductSales{
			Name:      name,
			UnitsSold: totals[name].units,
			Revenue:   totals[name].revenue,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})

	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	return ranked
}

// MonthlyTrend sums order totals plus priced completed-booking revenue for
// each of the trailing 3 calendar months, oldest first. A record belongs to
// a month when its createdAt falls within the month's inclusive [start, end]
// range. Empty input yields three zero buckets.
func MonthlyTrend(orders []domain.Order, bookings []domain.Booking, prices PriceTable, now time.Time) []domain.MonthRevenue {
	completed := CompletedBookings(bookings)

	trend := make([]domain.MonthRevenue, 0, 3)
	for monthsAgo := 2; monthsAgo >= 0; monthsAgo-- {
		start, end, label := monthRange(now, monthsAgo)

		var revenue float64
		for _, o := range orders {
			if o.CreatedAt >= start && o.CreatedAt <= end {
				revenue += o.Total
			}
		}
		for _, b := range completed {
			if b.CreatedAt >= start && b.CreatedAt <= end {
				revenue += prices.Resolve(b)
			}
		}

		trend = append(trend, domain.MonthRevenue{Month: label, Revenue: revenue})
	}
	return trend
}
