package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shiftline/shiftline/pkg/db"
)

// NewEvent is the input for creating a calendar event
type NewEvent struct {
	Name        string `validate:"required"`
	Description *string
	Location    *string
	TimeBegin   time.Time `validate:"required"`
	TimeEnd     *time.Time
	CreatedBy   *string `validate:"omitempty,uuid"`
}

// CreateEvent creates a calendar event and returns its id
func CreateEvent(ctx context.Context, store db.EventStore, logger *zap.Logger, input NewEvent) (string, error) {
	if err := validate.Struct(input); err != nil {
		return "", fmt.Errorf("event: %w: %v", ErrValidation, err)
	}

	eventID, err := store.InsertEvent(ctx, &db.Event{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		TimeBegin:   input.TimeBegin,
		TimeEnd:     input.TimeEnd,
		CreatedBy:   input.CreatedBy,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}

	logger.Info("Event created",
		zap.String("event_id", eventID),
		zap.String("name", input.Name),
		zap.Time("time_begin", input.TimeBegin))

	return eventID, nil
}

// EventByID fetches one event
func EventByID(ctx context.Context, store db.EventStore, logger *zap.Logger, eventID string) (*db.Event, error) {
	if err := requireUUID("event id", eventID); err != nil {
		return nil, err
	}
	return store.EventByID(ctx, eventID)
}

// EventsByMonth fetches the events whose start falls within the given
// calendar month, evaluated in loc. The window is [first instant of the
// month, first instant of the next month).
func EventsByMonth(ctx context.Context, store db.EventStore, logger *zap.Logger, month, year int, loc *time.Location) ([]db.Event, error) {
	if month < 1 || month > 12 {
		return nil, validationErr("month", "must be between 1 and 12")
	}
	if year < 1 {
		return nil, validationErr("year", "must be positive")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	logger.Debug("Fetching events by month",
		zap.Int("month", month),
		zap.Int("year", year),
		zap.Time("start", start),
		zap.Time("end", end))

	events, err := store.EventsInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return events, nil
}

// UpdateEvent applies a partial update to an event's details. At least one
// field must be present.
func UpdateEvent(ctx context.Context, store db.EventStore, logger *zap.Logger, eventID string, patch db.EventPatch) (string, error) {
	if err := requireUUID("event id", eventID); err != nil {
		return "", err
	}
	if patch.IsEmpty() {
		return "", validationErr("event update", "must change at least one field")
	}
	if patch.Name != nil && *patch.Name == "" {
		return "", validationErr("event name", "must not be empty")
	}
	if patch.Description != nil && patch.ClearDescription {
		return "", validationErr("event description", "cannot be set and cleared at once")
	}
	if patch.Location != nil && patch.ClearLocation {
		return "", validationErr("event location", "cannot be set and cleared at once")
	}
	if patch.TimeEnd != nil && patch.ClearTimeEnd {
		return "", validationErr("event time end", "cannot be set and cleared at once")
	}

	id, err := store.UpdateEvent(ctx, eventID, patch)
	if err != nil {
		return "", fmt.Errorf("failed to update event: %w", err)
	}

	logger.Info("Event updated", zap.String("event_id", id))
	return id, nil
}
