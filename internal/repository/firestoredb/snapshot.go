package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/logger"
	"myhustle-backend/internal/repository"
)

type snapshotRepository struct {
	client *firestore.Client
}

func NewSnapshotRepository(client *firestore.Client) repository.SnapshotRepository {
	return &snapshotRepository{client: client}
}

func (r *snapshotRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(colAnalytics)
}

// Save upserts one snapshot per shop/period/date so a rerun of the nightly
// job overwrites instead of duplicating.
func (r *snapshotRepository) Save(ctx context.Context, snap *domain.AnalyticsSnapshot) (string, error) {
	snap.CreatedAt = nowMillis()
	docID := fmt.Sprintf("%s_%s_%s", snap.ShopID, snap.Period, snap.Date)

	logger.StoreCall("set", colAnalytics, "id", docID)
	_, err := r.collection().Doc(docID).Set(ctx, snap)
	if err != nil {
		return "", fmt.Errorf("save analytics snapshot: %w", err)
	}
	snap.ID = docID
	return docID, nil
}

func (r *snapshotRepository) ListByShop(ctx context.Context, shopID string, period string) ([]domain.AnalyticsSnapshot, error) {
	iter := r.collection().
		Where("shopId", "==", shopID).
		Where("period", "==", period).
		Documents(ctx)
	defer iter.Stop()

	snaps := []domain.AnalyticsSnapshot{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query analytics snapshots: %w", err)
		}
		var s domain.AnalyticsSnapshot
		if err := doc.DataTo(&s); err != nil {
			logger.Warn("Skipping malformed analytics document", "id", doc.Ref.ID, "error", err)
			continue
		}
		s.ID = doc.Ref.ID
		snaps = append(snaps, s)
	}

	sortByCreatedAtDesc(snaps, func(s domain.AnalyticsSnapshot) int64 { return s.CreatedAt })
	return snaps, nil
}
