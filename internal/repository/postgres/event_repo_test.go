package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventboard/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var eventColumns = []string{"id", "title", "description", "date", "location", "created_at", "updated_at"}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		fields  domain.EventFields
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr bool
	}{
		{
			name: "success",
			fields: domain.EventFields{
				Title:       "Launch",
				Description: "Kickoff",
				Date:        date,
				Location:    "HQ",
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(title, description, date, location\)`).
					WithArgs("Launch", "Kickoff", date, "HQ").
					WillReturnRows(sqlmock.NewRows(eventColumns).
						AddRow(int64(1), "Launch", "Kickoff", date, "HQ", now, now))
			},
			want: &domain.Event{
				ID:          1,
				Title:       "Launch",
				Description: "Kickoff",
				Date:        date,
				Location:    "HQ",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			wantErr: false,
		},
		{
			name: "db error",
			fields: domain.EventFields{
				Title:       "Launch",
				Description: "Kickoff",
				Date:        date,
				Location:    "HQ",
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			want:    nil,
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
			got, err := repo.Create(ctx, tt.fields)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      int64
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, date, location, created_at, updated_at`).
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows(eventColumns).
						AddRow(int64(1), "Launch", "Kickoff", date, "HQ", now, now))
			},
			want: &domain.Event{
				ID:          1,
				Title:       "Launch",
				Description: "Kickoff",
				Date:        date,
				Location:    "HQ",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
		{
			name: "not found",
			id:   9999,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, date, location, created_at, updated_at`).
					WithArgs(int64(9999)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, date, location, created_at, updated_at`).
					WithArgs(int64(1)).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_ListAll(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	older := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("returns rows ordered newest first", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, description, date, location, created_at, updated_at\s+FROM events\s+ORDER BY created_at DESC`).
			WillReturnRows(sqlmock.NewRows(eventColumns).
				AddRow(int64(2), "Second", "Later event", date, "HQ", newer, newer).
				AddRow(int64(1), "First", "Earlier event", date, "HQ", older, older))

		repo := NewEventRepository(db)
		events, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, events, 2)
		require.Equal(t, int64(2), events[0].ID)
		require.Equal(t, int64(1), events[1].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, description, date, location, created_at, updated_at`).
			WillReturnRows(sqlmock.NewRows(eventColumns))

		repo := NewEventRepository(db)
		events, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.NotNil(t, events)
		require.Empty(t, events)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, description, date, location, created_at, updated_at`).
			WillReturnError(sql.ErrConnDone)

		repo := NewEventRepository(db)
		events, err := repo.ListAll(ctx)
		require.Error(t, err)
		require.Nil(t, events)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2030, 2, 1, 10, 0, 0, 0, time.UTC)
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)

	fields := domain.EventFields{
		Title:       "Launch v2",
		Description: "Rescheduled kickoff",
		Date:        date,
		Location:    "Offsite",
	}

	tests := []struct {
		name    string
		id      int64
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE events\s+SET title = \$1, description = \$2, date = \$3, location = \$4, updated_at = NOW\(\)`).
					WithArgs("Launch v2", "Rescheduled kickoff", date, "Offsite", int64(1)).
					WillReturnRows(sqlmock.NewRows(eventColumns).
						AddRow(int64(1), "Launch v2", "Rescheduled kickoff", date, "Offsite", created, updated))
			},
			want: &domain.Event{
				ID:          1,
				Title:       "Launch v2",
				Description: "Rescheduled kickoff",
				Date:        date,
				Location:    "Offsite",
				CreatedAt:   created,
				UpdatedAt:   updated,
			},
		},
		{
			name: "not found",
			id:   9999,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE events`).
					WithArgs("Launch v2", "Rescheduled kickoff", date, "Offsite", int64(9999)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.Update(ctx, tt.id, fields)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      int64
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   9999,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs(int64(9999)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs(int64(1)).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Delete(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
