package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"myhustle-backend/internal/logger"
)

type emailService struct {
	client   *sendgrid.Client
	fromAddr string
	fromName string
}

// NewEmailService returns a SendGrid-backed EmailService. With an empty API
// key it degrades to a no-op that only logs, so local development does not
// need SendGrid credentials.
func NewEmailService(apiKey, fromAddr, fromName string) EmailService {
	if apiKey == "" {
		logger.Warn("SendGrid API key not configured, emails will be logged only")
		return &noopEmailService{}
	}
	return &emailService{
		client:   sendgrid.NewSendClient(apiKey),
		fromAddr: fromAddr,
		fromName: fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, subject, body string) error {
	log := logger.Get()
	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromAddr)
	msg := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), body, "")

	resp, err := s.client.SendWithContext(ctx, msg)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err, "to", to)
		return fmt.Errorf("failed to send email via sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("sendgrid", "send", err, "to", to)
		return err
	}
	log.Debug("email sent", "to", to, "subject", subject)
	return nil
}

func (s *emailService) SendBookingRequestNotification(ctx context.Context, to, customerName, serviceName, date, timeSlot string) error {
	subject := "New Booking Request"
	body := fmt.Sprintf("Hello,\n\n%s requested a booking for %s on %s at %s.\n\nOpen your dashboard to accept or decline the request.\n\nThe MyHustle Team", customerName, serviceName, date, timeSlot)
	return s.send(ctx, to, subject, body)
}

func (s *emailService) SendBookingStatusNotification(ctx context.Context, to, customerName, serviceName, status, message string) error {
	subject := fmt.Sprintf("Booking %s - %s", status, serviceName)
	body := fmt.Sprintf("Hello %s,\n\nYour booking for %s is now %s.", customerName, serviceName, status)
	if message != "" {
		body += fmt.Sprintf("\n\nMessage from the shop: %s", message)
	}
	body += "\n\nThe MyHustle Team"
	return s.send(ctx, to, subject, body)
}

func (s *emailService) SendBookingReminder(ctx context.Context, to, customerName, serviceName, date, timeSlot string) error {
	subject := fmt.Sprintf("Reminder: %s tomorrow", serviceName)
	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder for your booking: %s on %s at %s.\n\nThe MyHustle Team", customerName, serviceName, date, timeSlot)
	return s.send(ctx, to, subject, body)
}

func (s *emailService) SendOrderConfirmation(ctx context.Context, to, customerName, orderNumber string, total float64) error {
	subject := fmt.Sprintf("Order Confirmation %s", orderNumber)
	body := fmt.Sprintf("Hello %s,\n\nThank you for your order %s. Total: %.2f.\n\nThe MyHustle Team", customerName, orderNumber, total)
	return s.send(ctx, to, subject, body)
}

type noopEmailService struct{}

func (n *noopEmailService) SendBookingRequestNotification(ctx context.Context, to, customerName, serviceName, date, timeSlot string) error {
	logger.Debug("email skipped (not configured)", "to", to, "service", serviceName)
	return nil
}

func (n *noopEmailService) SendBookingStatusNotification(ctx context.Context, to, customerName, serviceName, status, message string) error {
	logger.Debug("email skipped (not configured)", "to", to, "status", status)
	return nil
}

func (n *noopEmailService) SendBookingReminder(ctx context.Context, to, customerName, serviceName, date, timeSlot string) error {
	logger.Debug("email skipped (not configured)", "to", to, "service", serviceName)
	return nil
}

func (n *noopEmailService) SendOrderConfirmation(ctx context.Context, to, customerName, orderNumber string, total float64) error {
	logger.Debug("email skipped (not configured)", "to", to, "order", orderNumber)
	return nil
}
