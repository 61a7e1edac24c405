package service

import (
	"context"
	"errors"
	"fmt"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/logger"
	"myhustle-backend/internal/repository"
)

var (
	ErrNotAuthorized     = errors.New("not authorized to perform this action")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	serviceRepo repository.ServiceRepository
	shopRepo    repository.ShopRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	emailSvc    EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	serviceRepo repository.ServiceRepository,
	shopRepo repository.ShopRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		shopRepo:    shopRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
	}
}

func (s *bookingService) RequestBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	log := logger.WithService("booking")

	svc, err := s.serviceRepo.GetByID(ctx, booking.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if !svc.IsBookable {
		return nil, errors.New("service does not accept bookings")
	}

	shop, err := s.shopRepo.GetByID(ctx, svc.ShopID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop: %w", err)
	}

	// Denormalized display fields keep dashboard queries single-read.
	booking.ShopID = shop.ID
	booking.ShopOwnerID = shop.OwnerID
	booking.ServiceName = svc.Name
	booking.ShopName = shop.Name
	booking.Status = domain.BookingStatusPending
	booking.AgreedPrice = 0

	id, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.ID = id

	if owner, err := s.userRepo.GetByID(ctx, shop.OwnerID); err == nil {
		_ = s.emailSvc.SendBookingRequestNotification(ctx, owner.Email, booking.CustomerName, svc.Name, booking.RequestedDate, booking.RequestedTime)
		s.notify(ctx, shop.OwnerID, "New Booking Request",
			fmt.Sprintf("%s requested %s on %s at %s", booking.CustomerName, svc.Name, booking.RequestedDate, booking.RequestedTime),
			booking.ID)
	} else {
		log.Warn("could not load shop owner for notification", "owner_id", shop.OwnerID, "error", err)
	}

	log.Info("booking requested", "booking_id", id, "shop_id", shop.ID, "service_id", svc.ID)
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *bookingService) ListBookingsByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByOwner(ctx, ownerID)
}

func (s *bookingService) ListBookingsByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByCustomer(ctx, customerID)
}

func (s *bookingService) AcceptBooking(ctx context.Context, ownerID, bookingID, responseMessage string, agreedPrice float64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ShopOwnerID != ownerID {
		return nil, ErrNotAuthorized
	}
	if !booking.Status.CanTransition(domain.BookingStatusAccepted) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, domain.BookingStatusAccepted)
	}
	// The price is written before the status flips so a failed write cannot
	// leave an accepted booking without its negotiated price.
	if agreedPrice > 0 {
		if err := s.bookingRepo.SetAgreedPrice(ctx, bookingID, agreedPrice); err != nil {
			return nil, err
		}
		booking.AgreedPrice = agreedPrice
	}
	return s.applyTransition(ctx, booking, domain.BookingStatusAccepted, responseMessage)
}

func (s *bookingService) DenyBooking(ctx context.Context, ownerID, bookingID, responseMessage string) (*domain.Booking, error) {
	return s.transition(ctx, ownerID, bookingID, domain.BookingStatusDenied, responseMessage, true)
}

func (s *bookingService) ProposeChange(ctx context.Context, ownerID, bookingID, responseMessage string) (*domain.Booking, error) {
	return s.transition(ctx, ownerID, bookingID, domain.BookingStatusModified, responseMessage, true)
}

func (s *bookingService) CompleteBooking(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	return s.transition(ctx, ownerID, bookingID, domain.BookingStatusCompleted, "", true)
}

// CancelBooking may be invoked by either the customer or the shop owner.
func (s *bookingService) CancelBooking(ctx context.Context, requesterID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != requesterID && booking.ShopOwnerID != requesterID {
		return nil, ErrNotAuthorized
	}
	return s.applyTransition(ctx, booking, domain.BookingStatusCancelled, "")
}

func (s *bookingService) WatchOwnerBookings(ctx context.Context, ownerID string, fn func([]domain.Booking)) error {
	return s.bookingRepo.Watch(ctx, ownerID, fn)
}

func (s *bookingService) transition(ctx context.Context, ownerID, bookingID string, to domain.BookingStatus, responseMessage string, ownerOnly bool) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if ownerOnly && booking.ShopOwnerID != ownerID {
		return nil, ErrNotAuthorized
	}
	return s.applyTransition(ctx, booking, to, responseMessage)
}

func (s *bookingService) applyTransition(ctx context.Context, booking *domain.Booking, to domain.BookingStatus, responseMessage string) (*domain.Booking, error) {
	log := logger.WithService("booking")

	if !booking.Status.CanTransition(to) {
		log.Warn("rejected status transition", "booking_id", booking.ID, "from", booking.Status, "to", to)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, to)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, to, responseMessage); err != nil {
		return nil, err
	}
	booking.Status = to
	if responseMessage != "" {
		booking.ResponseMessage = responseMessage
	}

	if booking.CustomerEmail != "" {
		_ = s.emailSvc.SendBookingStatusNotification(ctx, booking.CustomerEmail, booking.CustomerName, booking.ServiceName, string(to), responseMessage)
	}
	s.notify(ctx, booking.CustomerID, fmt.Sprintf("Booking %s", to),
		fmt.Sprintf("Your booking for %s on %s is now %s", booking.ServiceName, booking.RequestedDate, to),
		booking.ID)

	log.Info("booking status changed", "booking_id", booking.ID, "status", to)
	return booking, nil
}

func (s *bookingService) notify(ctx context.Context, userID, title, message, bookingID string) {
	notif := &domain.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"type":       "BOOKING",
			"booking_id": bookingID,
		},
	}
	if _, err := s.noteRepo.Create(ctx, notif); err != nil {
		logger.Warn("failed to store notification", "user_id", userID, "error", err)
	}
}
