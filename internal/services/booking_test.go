package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"eventbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository for tests.
type fakeBookingRepo struct {
	byID      map[string]*domain.Booking
	nextID    int
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		byID:   make(map[string]*domain.Booking),
		nextID: 1,
	}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = fmt.Sprintf("bk-%d", f.nextID)
	f.nextID++
	f.byID[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if b, ok := f.byID[id]; ok {
		return b, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBookingRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.byID {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}

// fakeEmailService records booking confirmation sends.
type fakeEmailService struct {
	sent    []*domain.BookingConfirmationEmailData
	sendErr error
}

func (f *fakeEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, data)
	return nil
}

func seedEvent(t *testing.T, repo *fakeEventRepo) *domain.Event {
	t.Helper()
	event := validEventInput()
	svc := NewEventService(repo, time.Second)
	require.NoError(t, svc.CreateEvent(context.Background(), event))
	return event
}

func TestBookingService_CreateBooking(t *testing.T) {
	eventRepo := newFakeEventRepo()
	bookingRepo := newFakeBookingRepo()
	emails := &fakeEmailService{}
	svc := NewBookingService(bookingRepo, eventRepo, emails, time.Second)

	event := seedEvent(t, eventRepo)

	booking := &domain.Booking{EventID: event.ID, Email: "  Gopher@Example.COM "}
	err := svc.CreateBooking(context.Background(), booking)
	require.NoError(t, err)

	assert.Equal(t, "gopher@example.com", booking.Email)
	assert.NotEmpty(t, booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())

	require.Len(t, emails.sent, 1)
	assert.Equal(t, event.Title, emails.sent[0].EventTitle)
	assert.Equal(t, booking.ID, emails.sent[0].BookingID)
}

func TestBookingService_CreateBooking_InvalidEmail(t *testing.T) {
	eventRepo := newFakeEventRepo()
	svc := NewBookingService(newFakeBookingRepo(), eventRepo, nil, time.Second)

	event := seedEvent(t, eventRepo)

	for _, email := range []string{"", "nope", "a@b", "a b@c.com"} {
		booking := &domain.Booking{EventID: event.ID, Email: email}
		err := svc.CreateBooking(context.Background(), booking)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "email %q", email)
	}
}

func TestBookingService_CreateBooking_EventMissing(t *testing.T) {
	eventRepo := newFakeEventRepo()
	bookingRepo := newFakeBookingRepo()
	svc := NewBookingService(bookingRepo, eventRepo, nil, time.Second)

	booking := &domain.Booking{EventID: "ev-404", Email: "gopher@example.com"}
	err := svc.CreateBooking(context.Background(), booking)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.Empty(t, bookingRepo.byID)
}

func TestBookingService_CreateBooking_EmailFailureDoesNotFailBooking(t *testing.T) {
	eventRepo := newFakeEventRepo()
	bookingRepo := newFakeBookingRepo()
	emails := &fakeEmailService{sendErr: errors.New("smtp down")}
	svc := NewBookingService(bookingRepo, eventRepo, emails, time.Second)

	event := seedEvent(t, eventRepo)

	booking := &domain.Booking{EventID: event.ID, Email: "gopher@example.com"}
	err := svc.CreateBooking(context.Background(), booking)
	require.NoError(t, err)
	assert.Len(t, bookingRepo.byID, 1)
}

func TestBookingService_GetBooking(t *testing.T) {
	eventRepo := newFakeEventRepo()
	bookingRepo := newFakeBookingRepo()
	svc := NewBookingService(bookingRepo, eventRepo, nil, time.Second)

	event := seedEvent(t, eventRepo)
	booking := &domain.Booking{EventID: event.ID, Email: "gopher@example.com"}
	require.NoError(t, svc.CreateBooking(context.Background(), booking))

	got, err := svc.GetBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.Email, got.Email)

	_, err = svc.GetBooking(context.Background(), "bk-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
