package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shiftline/shiftline/pkg/db"
)

func TestCreateEventSeries_WeeklyExpansion(t *testing.T) {
	templateID := uuid.NewString()
	store := &mockTemplateStore{
		template: &db.Template{ID: templateID, Display: "Clinic", TimeBegin: "09:00:00"},
	}
	ctx := context.Background()
	logger := zap.NewNop()

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	until := time.Date(2026, 3, 23, 23, 59, 59, 0, time.UTC)

	result, err := CreateEventSeries(ctx, store, logger, templateID,
		"DTSTART:20260302T090000Z\nRRULE:FREQ=WEEKLY;BYDAY=MO", from, until, nil, time.UTC)
	require.NoError(t, err)

	// Mondays 2, 9, 16, 23 March
	require.Len(t, result.EventIDs, 4)
	require.Len(t, store.insertedEvents, 4)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), store.insertedEvents[0].TimeBegin)
	assert.Equal(t, time.Date(2026, 3, 23, 9, 0, 0, 0, time.UTC), store.insertedEvents[3].TimeBegin)
}

func TestCreateEventSeries_InvalidRule(t *testing.T) {
	store := &mockTemplateStore{
		template: &db.Template{Display: "Clinic", TimeBegin: "09:00:00"},
	}
	ctx := context.Background()
	logger := zap.NewNop()

	_, err := CreateEventSeries(ctx, store, logger, uuid.NewString(),
		"FREQ=SOMETIMES", time.Now(), time.Now().AddDate(0, 1, 0), nil, time.UTC)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, store.insertedEvents)
}

func TestCreateEventSeries_WindowEndBeforeStart(t *testing.T) {
	store := &mockTemplateStore{
		template: &db.Template{Display: "Clinic", TimeBegin: "09:00:00"},
	}
	ctx := context.Background()
	logger := zap.NewNop()

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err := CreateEventSeries(ctx, store, logger, uuid.NewString(),
		"DTSTART:20260302T090000Z\nRRULE:FREQ=WEEKLY", from, from.AddDate(0, 0, -7), nil, time.UTC)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateEventSeries_EmptyWindowIsNoOp(t *testing.T) {
	store := &mockTemplateStore{
		template: &db.Template{Display: "Clinic", TimeBegin: "09:00:00"},
	}
	ctx := context.Background()
	logger := zap.NewNop()

	// Weekly on Mondays, but the window covers a Wednesday and Thursday only
	from := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 3, 5, 23, 59, 59, 0, time.UTC)
	result, err := CreateEventSeries(ctx, store, logger, uuid.NewString(),
		"DTSTART:20260302T090000Z\nRRULE:FREQ=WEEKLY;BYDAY=MO", from, until, nil, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, result.EventIDs)
	assert.Empty(t, store.insertedEvents)
}

func TestCreateEventSeries_CapsOccurrences(t *testing.T) {
	store := &mockTemplateStore{
		template: &db.Template{Display: "Clinic", TimeBegin: "09:00:00"},
	}
	ctx := context.Background()
	logger := zap.NewNop()

	// Daily for a year blows past the cap
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(1, 0, 0)
	_, err := CreateEventSeries(ctx, store, logger, uuid.NewString(),
		"DTSTART:20260101T090000Z\nRRULE:FREQ=DAILY", from, until, nil, time.UTC)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, store.insertedEvents)
}

func TestCreateEventSeries_PartialFailureKeepsCreatedEvents(t *testing.T) {
	templateID := uuid.NewString()
	store := &mockTemplateStore{
		template:         &db.Template{ID: templateID, Display: "Clinic", TimeBegin: "09:00:00"},
		insertEventLimit: 2,
	}
	ctx := context.Background()
	logger := zap.NewNop()

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 3, 23, 23, 59, 59, 0, time.UTC)

	result, err := CreateEventSeries(ctx, store, logger, templateID,
		"DTSTART:20260302T090000Z\nRRULE:FREQ=WEEKLY;BYDAY=MO", from, until, nil, time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2026-03-16")

	// The first two events survive the failure on the third date
	require.NotNil(t, result)
	assert.Len(t, result.EventIDs, 2)
	assert.Len(t, store.insertedEvents, 2)
}
