package service

import (
	"context"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/repository"
)

const notificationPageSize = 50

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.noteRepo.ListByUser(ctx, userID, notificationPageSize)
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	// Ownership check scans the full list, not just the first page.
	notes, err := s.noteRepo.ListByUser(ctx, userID, 0)
	if err != nil {
		return err
	}
	for _, n := range notes {
		if n.ID == notificationID {
			return s.noteRepo.MarkRead(ctx, notificationID)
		}
	}
	return repository.ErrNotFound
}
