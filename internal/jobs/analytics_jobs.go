package jobs

import (
	"context"
	"time"

	"myhustle-backend/internal/analytics"
	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/logger"
)

// SnapshotDailyAnalytics persists a per-shop roll-up of revenue and booking
// stats so dashboard history survives document churn.
func (jr *JobRunner) SnapshotDailyAnalytics() {
	jr.runWithRecovery("SnapshotDailyAnalytics", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		now := time.Now().UTC()
		prices := analytics.DefaultPriceTable()

		shops, err := jr.store.ShopRepository.List(ctx)
		if err != nil {
			logger.Error("failed to list shops for snapshot", "error", err)
			return
		}

		saved := 0
		for _, shop := range shops {
			orders, err := jr.store.OrderRepository.ListByShop(ctx, shop.ID)
			if err != nil {
				logger.Error("failed to load shop orders", "shop_id", shop.ID, "error", err)
				continue
			}
			bookings, err := jr.store.BookingRepository.ListByShop(ctx, shop.ID)
			if err != nil {
				logger.Error("failed to load shop bookings", "shop_id", shop.ID, "error", err)
				continue
			}

			snap := &domain.AnalyticsSnapshot{
				ShopID:   shop.ID,
				OwnerID:  shop.OwnerID,
				Period:   "DAILY",
				Date:     now.Format("2006-01-02"),
				Revenue:  analytics.Revenue(orders, analytics.CompletedBookings(bookings), prices, now),
				Bookings: analytics.BookingStats(bookings, now),
			}
			if _, err := jr.store.SnapshotRepository.Save(ctx, snap); err != nil {
				logger.Error("failed to save analytics snapshot", "shop_id", shop.ID, "error", err)
				continue
			}
			saved++
		}

		logger.Info("analytics snapshots saved", "shops", len(shops), "saved", saved)
	})
}
