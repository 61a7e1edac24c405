package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/logger"
	"myhustle-backend/internal/repository"
)

type bookingRepository struct {
	client *firestore.Client
}

func NewBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &bookingRepository{client: client}
}

func (r *bookingRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(colBookings)
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) (string, error) {
	if b.Status == "" {
		b.Status = domain.BookingStatusPending
	}
	now := nowMillis()
	b.CreatedAt = now
	b.UpdatedAt = now

	logger.StoreCall("create", colBookings, "shop_id", b.ShopID)
	ref, _, err := r.collection().Add(ctx, b)
	if err != nil {
		return "", fmt.Errorf("create booking: %w", err)
	}
	b.ID = ref.ID
	return ref.ID, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapNotFound(err)
	}
	var b domain.Booking
	if err := doc.DataTo(&b); err != nil {
		return nil, fmt.Errorf("decode booking %s: %w", id, err)
	}
	b.ID = doc.Ref.ID
	return &b, nil
}

func (r *bookingRepository) ListByShop(ctx context.Context, shopID string) ([]domain.Booking, error) {
	return r.list(ctx, r.collection().Where("shopId", "==", shopID))
}

func (r *bookingRepository) ListByOwner(ctx context.Context, shopOwnerID string) ([]domain.Booking, error) {
	return r.list(ctx, r.collection().Where("shopOwnerId", "==", shopOwnerID))
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	return r.list(ctx, r.collection().Where("customerId", "==", customerID))
}

func (r *bookingRepository) list(ctx context.Context, q firestore.Query) ([]domain.Booking, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	bookings := []domain.Booking{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.StoreResult("query", colBookings, len(bookings), err)
			return nil, fmt.Errorf("query bookings: %w", err)
		}
		var b domain.Booking
		if err := doc.DataTo(&b); err != nil {
			// Malformed document: skip it, keep the batch.
			logger.Warn("Skipping malformed booking document", "id", doc.Ref.ID, "error", err)
			continue
		}
		b.ID = doc.Ref.ID
		bookings = append(bookings, b)
	}

	sortByCreatedAtDesc(bookings, func(b domain.Booking) int64 { return b.CreatedAt })
	logger.StoreResult("query", colBookings, len(bookings), nil)
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, st domain.BookingStatus, responseMessage string) error {
	logger.StoreCall("update", colBookings, "id", id, "status", st)
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: st},
		{Path: "responseMessage", Value: responseMessage},
		{Path: "updatedAt", Value: nowMillis()},
	})
	if err != nil {
		return fmt.Errorf("update booking status: %w", mapNotFound(err))
	}
	return nil
}

func (r *bookingRepository) SetAgreedPrice(ctx context.Context, id string, price float64) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "agreedPrice", Value: price},
		{Path: "updatedAt", Value: nowMillis()},
	})
	if err != nil {
		return fmt.Errorf("set agreed price: %w", mapNotFound(err))
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("delete booking: %w", mapNotFound(err))
	}
	return nil
}

// Watch pushes the full matching booking list to fn on every snapshot change
// until ctx is cancelled.
func (r *bookingRepository) Watch(ctx context.Context, shopOwnerID string, fn func([]domain.Booking)) error {
	snaps := r.collection().Where("shopOwnerId", "==", shopOwnerID).Snapshots(ctx)
	defer snaps.Stop()

	for {
		snap, err := snaps.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled {
				return nil
			}
			return fmt.Errorf("bookings listener: %w", err)
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			return fmt.Errorf("bookings listener: %w", err)
		}
		bookings := []domain.Booking{}
		for _, doc := range docs {
			var b domain.Booking
			if err := doc.DataTo(&b); err != nil {
				logger.Warn("Skipping malformed booking document", "id", doc.Ref.ID, "error", err)
				continue
			}
			b.ID = doc.Ref.ID
			bookings = append(bookings, b)
		}
		sortByCreatedAtDesc(bookings, func(b domain.Booking) int64 { return b.CreatedAt })
		fn(bookings)
	}
}
