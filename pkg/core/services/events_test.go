package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shiftline/shiftline/pkg/db"
)

// mockEventStore implements db.EventStore
type mockEventStore struct {
	events         []db.Event
	insertedEvents []db.Event
	insertErr      error
	updatedPatches map[string]db.EventPatch
	rangeStart     time.Time
	rangeEnd       time.Time
	rangeErr       error
}

func (m *mockEventStore) InsertEvent(ctx context.Context, event *db.Event) (string, error) {
	if m.insertErr != nil {
		return "", m.insertErr
	}
	stored := *event
	stored.ID = fmt.Sprintf("event-%d", len(m.insertedEvents)+1)
	m.insertedEvents = append(m.insertedEvents, stored)
	return stored.ID, nil
}

func (m *mockEventStore) EventByID(ctx context.Context, eventID string) (*db.Event, error) {
	for i := range m.events {
		if m.events[i].ID == eventID {
			return &m.events[i], nil
		}
	}
	return nil, fmt.Errorf("event %s: %w", eventID, db.ErrNotFound)
}

func (m *mockEventStore) EventsInRange(ctx context.Context, start, end time.Time) ([]db.Event, error) {
	if m.rangeErr != nil {
		return nil, m.rangeErr
	}
	m.rangeStart = start
	m.rangeEnd = end
	var matched []db.Event
	for _, event := range m.events {
		if !event.TimeBegin.Before(start) && event.TimeBegin.Before(end) {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

func (m *mockEventStore) UpdateEvent(ctx context.Context, eventID string, patch db.EventPatch) (string, error) {
	if m.updatedPatches == nil {
		m.updatedPatches = make(map[string]db.EventPatch)
	}
	m.updatedPatches[eventID] = patch
	return eventID, nil
}

func TestCreateEvent(t *testing.T) {
	store := &mockEventStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	begin := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	id, err := CreateEvent(ctx, store, logger, NewEvent{Name: "Spring clinic", TimeBegin: begin})
	require.NoError(t, err)
	assert.Equal(t, "event-1", id)
	require.Len(t, store.insertedEvents, 1)
	assert.Equal(t, "Spring clinic", store.insertedEvents[0].Name)
	assert.Equal(t, begin, store.insertedEvents[0].TimeBegin)
}

func TestCreateEvent_Validation(t *testing.T) {
	store := &mockEventStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	_, err := CreateEvent(ctx, store, logger, NewEvent{TimeBegin: time.Now()})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CreateEvent(ctx, store, logger, NewEvent{Name: "Clinic"})
	assert.ErrorIs(t, err, ErrValidation)

	bad := "not-a-uuid"
	_, err = CreateEvent(ctx, store, logger, NewEvent{Name: "Clinic", TimeBegin: time.Now(), CreatedBy: &bad})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, store.insertedEvents)
}

func TestEventsByMonth_WindowEndpoints(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	store := &mockEventStore{
		events: []db.Event{
			{ID: "before", Name: "before", TimeBegin: time.Date(2026, 2, 28, 23, 59, 59, 0, loc)},
			{ID: "first-instant", Name: "first instant", TimeBegin: time.Date(2026, 3, 1, 0, 0, 0, 0, loc)},
			{ID: "mid", Name: "mid", TimeBegin: time.Date(2026, 3, 15, 12, 0, 0, 0, loc)},
			{ID: "last-instant", Name: "last instant", TimeBegin: time.Date(2026, 3, 31, 23, 59, 59, 0, loc)},
			{ID: "next-month", Name: "next month", TimeBegin: time.Date(2026, 4, 1, 0, 0, 0, 0, loc)},
		},
	}
	ctx := context.Background()
	logger := zap.NewNop()

	events, err := EventsByMonth(ctx, store, logger, 3, 2026, loc)
	require.NoError(t, err)

	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"first-instant", "mid", "last-instant"}, ids)

	// The window is computed in the configured zone
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), store.rangeStart)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, loc), store.rangeEnd)
}

func TestEventsByMonth_DecemberRollsOver(t *testing.T) {
	store := &mockEventStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	_, err := EventsByMonth(ctx, store, logger, 12, 2026, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), store.rangeEnd)
}

func TestEventsByMonth_RejectsBadMonth(t *testing.T) {
	store := &mockEventStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	for _, month := range []int{0, 13, -1} {
		_, err := EventsByMonth(ctx, store, logger, month, 2026, time.UTC)
		assert.ErrorIs(t, err, ErrValidation, "month %d", month)
	}

	_, err := EventsByMonth(ctx, store, logger, 6, 0, time.UTC)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEventByID(t *testing.T) {
	eventID := uuid.NewString()
	store := &mockEventStore{events: []db.Event{{ID: eventID, Name: "Clinic"}}}
	ctx := context.Background()
	logger := zap.NewNop()

	event, err := EventByID(ctx, store, logger, eventID)
	require.NoError(t, err)
	assert.Equal(t, "Clinic", event.Name)

	_, err = EventByID(ctx, store, logger, uuid.NewString())
	assert.ErrorIs(t, err, db.ErrNotFound)

	_, err = EventByID(ctx, store, logger, "nope")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateEvent(t *testing.T) {
	store := &mockEventStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	eventID := uuid.NewString()
	name := "Renamed clinic"
	_, err := UpdateEvent(ctx, store, logger, eventID, db.EventPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, &name, store.updatedPatches[eventID].Name)

	_, err = UpdateEvent(ctx, store, logger, eventID, db.EventPatch{})
	assert.ErrorIs(t, err, ErrValidation)

	empty := ""
	_, err = UpdateEvent(ctx, store, logger, eventID, db.EventPatch{Name: &empty})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateEvent_ClearsNullableFields(t *testing.T) {
	store := &mockEventStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	// A clear-only patch counts as a change and reaches the store intact
	eventID := uuid.NewString()
	_, err := UpdateEvent(ctx, store, logger, eventID, db.EventPatch{ClearDescription: true, ClearTimeEnd: true})
	require.NoError(t, err)

	patch := store.updatedPatches[eventID]
	assert.True(t, patch.ClearDescription)
	assert.True(t, patch.ClearTimeEnd)
	assert.False(t, patch.ClearLocation)
}

func TestUpdateEvent_SetAndClearSameFieldRejected(t *testing.T) {
	store := &mockEventStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	description := "still here"
	_, err := UpdateEvent(ctx, store, logger, uuid.NewString(),
		db.EventPatch{Description: &description, ClearDescription: true})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, store.updatedPatches)
}
