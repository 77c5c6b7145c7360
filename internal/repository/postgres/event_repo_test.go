package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"eventbook/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var eventCols = []string{
	"id", "title", "slug", "description", "overview", "image_url", "venue",
	"location", "event_date", "event_time", "mode", "audience", "agenda",
	"organizer", "tags", "created_at", "updated_at",
}

func sampleEvent(ts time.Time) *domain.Event {
	return &domain.Event{
		Title:       "Go Conference",
		Slug:        "go-conference",
		Description: "A conference about Go.",
		Overview:    "Talks and workshops.",
		ImageURL:    "https://cdn.example.com/go.png",
		Venue:       "Main Hall",
		Location:    "Berlin",
		Date:        "2026-05-01",
		Time:        "09:00",
		Mode:        "in-person",
		Audience:    "developers",
		Agenda:      []string{"Opening keynote", "Workshops"},
		Organizer:   "Gopher Org",
		Tags:        []string{"go", "conference"},
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func sampleEventRow(id string, ts time.Time) []driverValue {
	e := sampleEvent(ts)
	return []driverValue{
		id, e.Title, e.Slug, e.Description, e.Overview, e.ImageURL, e.Venue,
		e.Location, e.Date, e.Time, e.Mode, e.Audience,
		"{\"Opening keynote\",Workshops}", e.Organizer, "{go,conference}",
		ts, ts,
	}
}

type driverValue = driver.Value

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		event       *domain.Event
		mock        func(mock sqlmock.Sqlmock)
		wantID      string
		wantErr     bool
		isDuplicate bool
	}{
		{
			name:  "success",
			event: sampleEvent(ts),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID: "ev-uuid-1",
		},
		{
			name:  "duplicate slug",
			event: sampleEvent(ts),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr:     true,
			isDuplicate: true,
		},
		{
			name:  "db error",
			event: sampleEvent(ts),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isDuplicate {
					require.True(t, errors.Is(err, domain.ErrDuplicateSlug))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetBySlug(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		slug       string
		mock       func(mock sqlmock.Sqlmock)
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "success",
			slug: "go-conference",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, slug`).
					WithArgs("go-conference").
					WillReturnRows(sqlmock.NewRows(eventCols).AddRow(sampleEventRow("ev-1", ts)...))
			},
		},
		{
			name: "not found",
			slug: "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, slug`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:    true,
			isNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetBySlug(ctx, tt.slug)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, "ev-1", got.ID)
			require.Equal(t, "go-conference", got.Slug)
			require.Equal(t, []string{"Opening keynote", "Workshops"}, got.Agenda)
			require.Equal(t, []string{"go", "conference"}, got.Tags)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_ExistsByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		id     string
		exists bool
	}{
		{"exists", "ev-1", true},
		{"absent", "ev-missing", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(`SELECT EXISTS`).
				WithArgs(tt.id).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			repo := NewEventRepository(db)
			got, err := repo.ExistsByID(ctx, tt.id)
			require.NoError(t, err)
			require.Equal(t, tt.exists, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT id, title, slug`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(eventCols).
			AddRow(sampleEventRow("ev-1", ts)...).
			AddRow(sampleEventRow("ev-2", ts)...))

	repo := NewEventRepository(db)
	events, total, err := repo.List(ctx, domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, events, 2)
	require.Equal(t, "ev-1", events[0].ID)
	require.Equal(t, "ev-2", events[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		mock        func(mock sqlmock.Sqlmock)
		wantErr     bool
		isNotFound  bool
		isDuplicate bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events`).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr:    true,
			isNotFound: true,
		},
		{
			name: "duplicate slug",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr:     true,
			isDuplicate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			e := sampleEvent(ts)
			e.ID = "ev-1"
			repo := NewEventRepository(db)
			err = repo.Update(ctx, e)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				if tt.isDuplicate {
					require.True(t, errors.Is(err, domain.ErrDuplicateSlug))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
