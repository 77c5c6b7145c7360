package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"eventbook/internal/domain"
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	contextTimeout time.Duration
}

// NewBookingService returns a BookingService. emailService may be nil, in
// which case no confirmation email is sent.
func NewBookingService(bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		contextTimeout: timeout,
	}
}

// CreateBooking validates the email, verifies the referenced event exists,
// and persists the booking. The confirmation email is best-effort: a send
// failure is logged and does not fail the booking.
func (s *bookingService) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booking.Email = strings.ToLower(strings.TrimSpace(booking.Email))
	if !domain.ValidEmail(booking.Email) {
		return fmt.Errorf("%w: invalid email %q", domain.ErrInvalidInput, booking.Email)
	}
	if strings.TrimSpace(booking.EventID) == "" {
		return fmt.Errorf("%w: event_id is required", domain.ErrInvalidInput)
	}

	exists, err := s.eventRepo.ExistsByID(ctx, booking.EventID)
	if err != nil {
		return fmt.Errorf("check event exists: %w", err)
	}
	if !exists {
		return domain.ErrEventNotFound
	}

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	if s.emailService != nil {
		s.sendConfirmation(ctx, booking)
	}
	return nil
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

func (s *bookingService) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		log.Printf("[BOOKING] Skipping confirmation email for booking %s: %v", booking.ID, err)
		return
	}
	data := &domain.BookingConfirmationEmailData{
		Email:      booking.Email,
		BookingID:  booking.ID,
		EventTitle: event.Title,
		EventDate:  event.Date,
		EventTime:  event.Time,
		Venue:      event.Venue,
		Location:   event.Location,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		log.Printf("[BOOKING] Failed to send confirmation email for booking %s: %v", booking.ID, err)
	}
}
