package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Event represents a published event that users can discover and book.
// Date is stored as an ISO YYYY-MM-DD string and Time as zero-padded HH:mm;
// both are normalized before every save.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	ImageURL    string    `json:"image_url"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Agenda      []string  `json:"agenda"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the invariants that must hold before an Event is persisted.
// It assumes Slug, Date, and Time have already been normalized and returns an
// error wrapping ErrInvalidInput describing the first group of violations.
func (e *Event) Validate() error {
	var errs []string
	required := []struct {
		name  string
		value string
	}{
		{"title", e.Title},
		{"slug", e.Slug},
		{"description", e.Description},
		{"overview", e.Overview},
		{"image_url", e.ImageURL},
		{"venue", e.Venue},
		{"location", e.Location},
		{"date", e.Date},
		{"time", e.Time},
		{"mode", e.Mode},
		{"audience", e.Audience},
		{"organizer", e.Organizer},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, f.name+" is required")
		}
	}
	if len(e.Agenda) == 0 {
		errs = append(errs, "agenda must have at least one item")
	}
	for _, item := range e.Agenda {
		if strings.TrimSpace(item) == "" {
			errs = append(errs, "agenda items cannot be empty")
			break
		}
	}
	if len(e.Tags) == 0 {
		errs = append(errs, "tags must have at least one item")
	}
	for _, tag := range e.Tags {
		if strings.TrimSpace(tag) == "" {
			errs = append(errs, "tags cannot be empty")
			break
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(errs, "; "))
	}
	return nil
}

// EventUpdate carries a partial update for an Event. Nil fields are left
// unchanged; Date and Time are re-normalized only when supplied, and the slug
// is regenerated only when Title changes.
type EventUpdate struct {
	Title       *string
	Description *string
	Overview    *string
	ImageURL    *string
	Venue       *string
	Location    *string
	Date        *string
	Time        *string
	Mode        *string
	Audience    *string
	Agenda      []string
	Organizer   *string
	Tags        []string
}

// PaginationParams holds validated pagination inputs for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	Update(ctx context.Context, event *Event) error
}

// EventService defines event operations exposed to the delivery layer.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	UpdateEvent(ctx context.Context, eventID string, upd EventUpdate) (*Event, error)
}
