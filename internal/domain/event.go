package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no event exists with the requested ID.
	ErrNotFound = errors.New("event not found")
	// ErrInvalidInput is returned for input that fails validation.
	ErrInvalidInput = errors.New("invalid input")
)

// Event is a scheduled occurrence persisted in the events table.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Status derives the event's lifecycle status relative to now.
func (e *Event) Status(now time.Time) EventStatus {
	return ClassifyEvent(e.Date, now)
}

// EventFields holds the four mutable fields of an event, already validated
// and with the date parsed. ID and timestamps are assigned by the repository.
type EventFields struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, fields EventFields) (*Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	ListAll(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, id int64, fields EventFields) (*Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventService defines the interface for event business logic
type EventService interface {
	CreateEvent(ctx context.Context, fields EventFields) (*Event, error)
	GetEventByID(ctx context.Context, id int64) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	UpdateEvent(ctx context.Context, id int64, fields EventFields) (*Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}
