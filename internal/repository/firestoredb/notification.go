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

type notificationRepository struct {
	client *firestore.Client
}

func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(colNotifications)
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) (string, error) {
	n.CreatedAt = nowMillis()

	ref, _, err := r.collection().Add(ctx, n)
	if err != nil {
		return "", fmt.Errorf("create notification: %w", err)
	}
	n.ID = ref.ID
	return ref.ID, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	iter := r.collection().Where("userId", "==", userID).Documents(ctx)
	defer iter.Stop()

	notes := []domain.Notification{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query notifications: %w", err)
		}
		var n domain.Notification
		if err := doc.DataTo(&n); err != nil {
			logger.Warn("Skipping malformed notification document", "id", doc.Ref.ID, "error", err)
			continue
		}
		n.ID = doc.Ref.ID
		notes = append(notes, n)
	}

	sortByCreatedAtDesc(notes, func(n domain.Notification) int64 { return n.CreatedAt })
	if limit > 0 && len(notes) > limit {
		notes = notes[:limit]
	}
	return notes, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		return fmt.Errorf("mark notification read: %w", mapNotFound(err))
	}
	return nil
}
