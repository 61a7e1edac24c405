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

type userRepository struct {
	client *firestore.Client
}

func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(colUsers)
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) (string, error) {
	u.CreatedAt = nowMillis()
	u.Active = true

	logger.StoreCall("create", colUsers, "email", u.Email)
	ref, _, err := r.collection().Add(ctx, u)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	u.ID = ref.ID
	return ref.ID, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapNotFound(err)
	}
	var u domain.User
	if err := doc.DataTo(&u); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", id, err)
	}
	u.ID = doc.Ref.ID
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	iter := r.collection().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	var u domain.User
	if err := doc.DataTo(&u); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", doc.Ref.ID, err)
	}
	u.ID = doc.Ref.ID
	return &u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	_, err := r.collection().Doc(u.ID).Set(ctx, u)
	if err != nil {
		return fmt.Errorf("update user: %w", mapNotFound(err))
	}
	return nil
}
