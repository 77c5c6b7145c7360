package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventbook/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService returns an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// CreateEvent normalizes and validates the event, derives the slug from the
// title, and persists it.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trimEventFields(event)
	event.Slug = domain.Slugify(event.Title)

	date, err := domain.NormalizeDate(event.Date)
	if err != nil {
		return err
	}
	event.Date = date

	t, err := domain.NormalizeTime(event.Time)
	if err != nil {
		return err
	}
	event.Time = t

	if err := event.Validate(); err != nil {
		return err
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return domain.ErrDuplicateSlug
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, total, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}

// UpdateEvent applies a partial update. The slug is regenerated only when the
// title changes, and date/time are re-normalized only when supplied.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, upd domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if upd.Title != nil {
		title := strings.TrimSpace(*upd.Title)
		if title != event.Title {
			event.Title = title
			event.Slug = domain.Slugify(title)
		}
	}
	if upd.Description != nil {
		event.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Overview != nil {
		event.Overview = strings.TrimSpace(*upd.Overview)
	}
	if upd.ImageURL != nil {
		event.ImageURL = strings.TrimSpace(*upd.ImageURL)
	}
	if upd.Venue != nil {
		event.Venue = strings.TrimSpace(*upd.Venue)
	}
	if upd.Location != nil {
		event.Location = strings.TrimSpace(*upd.Location)
	}
	if upd.Date != nil {
		date, err := domain.NormalizeDate(*upd.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	if upd.Time != nil {
		t, err := domain.NormalizeTime(*upd.Time)
		if err != nil {
			return nil, err
		}
		event.Time = t
	}
	if upd.Mode != nil {
		event.Mode = strings.TrimSpace(*upd.Mode)
	}
	if upd.Audience != nil {
		event.Audience = strings.TrimSpace(*upd.Audience)
	}
	if upd.Organizer != nil {
		event.Organizer = strings.TrimSpace(*upd.Organizer)
	}
	if upd.Agenda != nil {
		event.Agenda = upd.Agenda
	}
	if upd.Tags != nil {
		event.Tags = upd.Tags
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}
	event.UpdatedAt = time.Now()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrNotFound
		case errors.Is(err, domain.ErrDuplicateSlug):
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func trimEventFields(event *domain.Event) {
	event.Title = strings.TrimSpace(event.Title)
	event.Description = strings.TrimSpace(event.Description)
	event.Overview = strings.TrimSpace(event.Overview)
	event.ImageURL = strings.TrimSpace(event.ImageURL)
	event.Venue = strings.TrimSpace(event.Venue)
	event.Location = strings.TrimSpace(event.Location)
	event.Mode = strings.TrimSpace(event.Mode)
	event.Audience = strings.TrimSpace(event.Audience)
	event.Organizer = strings.TrimSpace(event.Organizer)
	for i, item := range event.Agenda {
		event.Agenda[i] = strings.TrimSpace(item)
	}
	for i, tag := range event.Tags {
		event.Tags[i] = strings.TrimSpace(tag)
	}
}
