package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventboard/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, fields domain.EventFields) (*domain.Event, error) {
	query := `
		INSERT INTO events (title, description, date, location)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, date, location, created_at, updated_at
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, fields.Title, fields.Description, fields.Date, fields.Location).Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT id, title, description, date, location, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, title, description, date, location, created_at, updated_at
		FROM events
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update overwrites the four mutable fields in a single statement and derives
// not-found from the statement itself, so there is no read-then-write gap.
func (r *eventRepository) Update(ctx context.Context, id int64, fields domain.EventFields) (*domain.Event, error) {
	query := `
		UPDATE events
		SET title = $1, description = $2, date = $3, location = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, title, description, date, location, created_at, updated_at
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, fields.Title, fields.Description, fields.Date, fields.Location, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
