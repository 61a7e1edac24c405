package jobs

import (
	"context"
	"time"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/logger"
)

// SendBookingReminders emails customers whose accepted bookings are due
// tomorrow.
func (jr *JobRunner) SendBookingReminders() {
	jr.runWithRecovery("SendBookingReminders", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

		shops, err := jr.store.ShopRepository.List(ctx)
		if err != nil {
			logger.Error("failed to list shops for reminders", "error", err)
			return
		}

		sent := 0
		for _, shop := range shops {
			bookings, err := jr.store.BookingRepository.ListByShop(ctx, shop.ID)
			if err != nil {
				logger.Error("failed to load shop bookings", "shop_id", shop.ID, "error", err)
				continue
			}
			for _, b := range bookings {
				if b.Status != domain.BookingStatusAccepted || b.RequestedDate != tomorrow {
					continue
				}
				if b.CustomerEmail == "" {
					continue
				}
				if err := jr.services.Email.SendBookingReminder(ctx, b.CustomerEmail, b.CustomerName, b.ServiceName, b.RequestedDate, b.RequestedTime); err != nil {
					logger.Error("failed to send booking reminder", "booking_id", b.ID, "error", err)
					continue
				}
				sent++
			}
		}

		logger.Info("booking reminders sent", "date", tomorrow, "count", sent)
	})
}

// ExpireStalePendingBookings cancels booking requests that the shop owner
// never answered.
func (jr *JobRunner) ExpireStalePendingBookings() {
	jr.runWithRecovery("ExpireStalePendingBookings", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		cutoff := time.Now().UTC().AddDate(0, 0, -jr.config.Analytics.StalePendingAfterDays).UnixMilli()

		shops, err := jr.store.ShopRepository.List(ctx)
		if err != nil {
			logger.Error("failed to list shops for stale booking sweep", "error", err)
			return
		}

		expired := 0
		for _, shop := range shops {
			bookings, err := jr.store.BookingRepository.ListByShop(ctx, shop.ID)
			if err != nil {
				logger.Error("failed to load shop bookings", "shop_id", shop.ID, "error", err)
				continue
			}
			for _, b := range bookings {
				if b.Status != domain.BookingStatusPending || b.CreatedAt >= cutoff {
					continue
				}
				err := jr.store.BookingRepository.UpdateStatus(ctx, b.ID, domain.BookingStatusCancelled,
					"Request expired without a response")
				if err != nil {
					logger.Error("failed to expire stale booking", "booking_id", b.ID, "error", err)
					continue
				}
				expired++
			}
		}

		logger.Info("stale pending bookings expired", "count", expired)
	})
}
