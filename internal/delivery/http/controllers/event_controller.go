package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// dateLayouts are the accepted formats for the date field, tried in order.
// Covers RFC3339, datetime-local form input, and a bare calendar date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseEventDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrInvalidInput
}

// EventRequest is the request body for POST /events and PUT /events/{id}.
// date is accepted as text and converted to a timestamp by Fields.
type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}

// Validate implements helpers.Validator. It collects every violated rule in
// field order; the first entry is what callers surface.
func (e EventRequest) Validate() []string {
	var errs []string
	if e.Title == "" {
		errs = append(errs, "Title is required")
	}
	if e.Description == "" {
		errs = append(errs, "Description is required")
	}
	if _, err := parseEventDate(e.Date); err != nil {
		errs = append(errs, "Invalid date")
	}
	if e.Location == "" {
		errs = append(errs, "Location is required")
	}
	return errs
}

// Fields converts a validated request into domain.EventFields, parsing the
// date text into a timestamp. Call only after Validate returned no errors.
func (e EventRequest) Fields() (domain.EventFields, error) {
	date, err := parseEventDate(e.Date)
	if err != nil {
		return domain.EventFields{}, err
	}
	return domain.EventFields{
		Title:       e.Title,
		Description: e.Description,
		Date:        date,
		Location:    e.Location,
	}, nil
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// parseID reads the {id} path value and parses it as an integer. On failure it
// writes the 400 envelope and returns false, before any storage call is made.
func (c *EventController) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.MsgInvalidID)
		return 0, false
	}
	return id, true
}

func (c *EventController) writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.MsgInternalError)
}

// ListEvents godoc
// @Summary List all events
// @Description Returns every event, most recently created first.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the event list"
// @Failure 500 {object} helpers.APIResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.writeInternalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "non-numeric id"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.MsgEventNotFound)
			return
		}
		c.writeInternalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event record; id and timestamps are server-generated.
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event fields"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "first failing validation rule"
// @Failure 500 {object} helpers.APIResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	fields, err := req.Fields()
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid date")
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), fields)
	if err != nil {
		c.writeInternalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Overwrites title, description, date, and location. id and createdAt are immutable.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body EventRequest true "Event fields"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "invalid id or body"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	fields, err := req.Fields()
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid date")
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.MsgEventNotFound)
			return
		}
		c.writeInternalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes the event permanently. There is no recovery.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "message confirms the deletion"
// @Failure 400 {object} helpers.APIResponse "non-numeric id"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.MsgEventNotFound)
			return
		}
		c.writeInternalError(w, r, err)
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, helpers.MsgEventDeleted)
}
