package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline/pkg/db"
)

// InsertEvent inserts a new event and returns its id
func (d *DB) InsertEvent(ctx context.Context, event *db.Event) (string, error) {
	id := newID()
	_, err := d.conn(ctx).Exec(ctx, `
		INSERT INTO events (id, name, description, location, time_begin, time_end, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, event.Name, event.Description, event.Location, event.TimeBegin, event.TimeEnd, event.CreatedBy)
	if err != nil {
		return "", fmt.Errorf("failed to insert event: %w", err)
	}
	return id, nil
}

// EventByID retrieves one event by id
func (d *DB) EventByID(ctx context.Context, eventID string) (*db.Event, error) {
	var e db.Event
	err := d.conn(ctx).QueryRow(ctx, `
		SELECT id, name, description, location, time_begin, time_end, created_by
		FROM events
		WHERE id = $1
	`, eventID).Scan(&e.ID, &e.Name, &e.Description, &e.Location, &e.TimeBegin, &e.TimeEnd, &e.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("event %s: %w", eventID, db.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query event: %w", err)
	}
	return &e, nil
}

// EventsInRange retrieves events with start <= time_begin < end,
// ordered by time_begin
func (d *DB) EventsInRange(ctx context.Context, start, end time.Time) ([]db.Event, error) {
	rows, err := d.conn(ctx).Query(ctx, `
		SELECT id, name, description, location, time_begin, time_end, created_by
		FROM events
		WHERE time_begin >= $1 AND time_begin < $2
		ORDER BY time_begin
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query events in range: %w", err)
	}
	defer rows.Close()

	var events []db.Event
	for rows.Next() {
		var e db.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Location, &e.TimeBegin, &e.TimeEnd, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// UpdateEvent applies a partial update to an event and returns its id
func (d *DB) UpdateEvent(ctx context.Context, eventID string, patch db.EventPatch) (string, error) {
	var set []string
	args := []any{eventID}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.TimeBegin != nil {
		add("time_begin", *patch.TimeBegin)
	}
	if patch.TimeEnd != nil {
		add("time_end", *patch.TimeEnd)
	}
	if patch.ClearDescription {
		add("description", nil)
	}
	if patch.ClearLocation {
		add("location", nil)
	}
	if patch.ClearTimeEnd {
		add("time_end", nil)
	}

	if len(set) == 0 {
		return "", fmt.Errorf("no event fields to update")
	}

	tag, err := d.conn(ctx).Exec(ctx,
		`UPDATE events SET `+strings.Join(set, ", ")+` WHERE id = $1`, args...)
	if err != nil {
		return "", fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", fmt.Errorf("event %s: %w", eventID, db.ErrNotFound)
	}
	return eventID, nil
}
