// Package firestoredb implements the repository interfaces against Cloud
// Firestore. Collection names match the original data set: bookings, orders,
// shops, products, services, users, notifications, analytics.
package firestoredb

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"myhustle-backend/internal/repository"
)

const (
	colBookings      = "bookings"
	colOrders        = "orders"
	colShops         = "shops"
	colProducts      = "products"
	colServices      = "services"
	colUsers         = "users"
	colNotifications = "notifications"
	colAnalytics     = "analytics"
)

// Store bundles one repository per entity type, all sharing a single
// Firestore client. Constructed once at process start and injected into
// services; no global singleton accessors.
type Store struct {
	Client *firestore.Client

	BookingRepository      repository.BookingRepository
	OrderRepository        repository.OrderRepository
	ShopRepository         repository.ShopRepository
	ProductRepository      repository.ProductRepository
	ServiceRepository      repository.ServiceRepository
	UserRepository         repository.UserRepository
	NotificationRepository repository.NotificationRepository
	SnapshotRepository     repository.SnapshotRepository
}

// NewClient connects to Firestore for the given project. credentialsFile may
// be empty, in which case application default credentials are used.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	conf := &firebase.Config{ProjectID: projectID}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, err
	}
	return app.Firestore(ctx)
}

// NewStore creates all repositories backed by the given client.
func NewStore(client *firestore.Client) *Store {
	return &Store{
		Client:                 client,
		BookingRepository:      NewBookingRepository(client),
		OrderRepository:        NewOrderRepository(client),
		ShopRepository:         NewShopRepository(client),
		ProductRepository:      NewProductRepository(client),
		ServiceRepository:      NewServiceRepository(client),
		UserRepository:         NewUserRepository(client),
		NotificationRepository: NewNotificationRepository(client),
		SnapshotRepository:     NewSnapshotRepository(client),
	}
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.Client.Close()
}

// mapNotFound converts Firestore's NotFound status into the repository
// sentinel so callers never depend on gRPC status codes.
func mapNotFound(err error) error {
	if status.Code(err) == codes.NotFound {
		return repository.ErrNotFound
	}
	return err
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// sortByCreatedAtDesc orders records newest first, matching the ordering the
// original listeners applied after every fetch.
func sortByCreatedAtDesc[T any](items []T, createdAt func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]) > createdAt(items[j])
	})
}
