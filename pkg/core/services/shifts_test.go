package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shiftline/shiftline/pkg/db"
)

// mockShiftStore implements db.ShiftStore
type mockShiftStore struct {
	insertedShifts  map[string][]db.ShiftEntry
	insertErr       error
	deletedShifts   []string
	quantityUpdates map[string]int
	quantity        int
	activeSlots     int
}

func (m *mockShiftStore) InsertShifts(ctx context.Context, eventID string, entries []db.ShiftEntry) ([]string, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	if m.insertedShifts == nil {
		m.insertedShifts = make(map[string][]db.ShiftEntry)
	}
	m.insertedShifts[eventID] = entries
	ids := make([]string, len(entries))
	for i := range entries {
		ids[i] = fmt.Sprintf("shift-%d", i+1)
	}
	return ids, nil
}

func (m *mockShiftStore) SoftDeleteShift(ctx context.Context, shiftID string) (string, error) {
	m.deletedShifts = append(m.deletedShifts, shiftID)
	return shiftID, nil
}

func (m *mockShiftStore) UpdateShiftQuantity(ctx context.Context, shiftID string, quantity int) (string, error) {
	if m.quantityUpdates == nil {
		m.quantityUpdates = make(map[string]int)
	}
	m.quantityUpdates[shiftID] = quantity
	return shiftID, nil
}

func (m *mockShiftStore) ShiftQuantity(ctx context.Context, shiftID string) (int, error) {
	return m.quantity, nil
}

func (m *mockShiftStore) CountActiveSlots(ctx context.Context, shiftID string) (int, error) {
	return m.activeSlots, nil
}

func TestCreateShifts(t *testing.T) {
	store := &mockShiftStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	eventID := uuid.NewString()
	p1 := uuid.NewString()
	p2 := uuid.NewString()
	ids, err := CreateShifts(ctx, store, logger, eventID, []db.ShiftEntry{
		{PositionID: p1, Quantity: 2},
		{PositionID: p2, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.Equal(t, p1, store.insertedShifts[eventID][0].PositionID)
}

func TestCreateShifts_Validation(t *testing.T) {
	store := &mockShiftStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	_, err := CreateShifts(ctx, store, logger, uuid.NewString(), nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CreateShifts(ctx, store, logger, uuid.NewString(), []db.ShiftEntry{
		{PositionID: uuid.NewString(), Quantity: 0},
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CreateShifts(ctx, store, logger, "bad", []db.ShiftEntry{
		{PositionID: uuid.NewString(), Quantity: 1},
	})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Empty(t, store.insertedShifts)
}

func TestDeleteShift(t *testing.T) {
	store := &mockShiftStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	shiftID := uuid.NewString()
	id, err := DeleteShift(ctx, store, logger, shiftID)
	require.NoError(t, err)
	assert.Equal(t, shiftID, id)
	assert.Equal(t, []string{shiftID}, store.deletedShifts)
}

func TestUpdateShiftQuantity_NoFloorAgainstFilledSlots(t *testing.T) {
	// Three filled slots, but an explicit update to 1 goes through; the
	// operator is expected to remove slots next
	store := &mockShiftStore{quantity: 5, activeSlots: 3}
	ctx := context.Background()
	logger := zap.NewNop()

	shiftID := uuid.NewString()
	_, err := UpdateShiftQuantity(ctx, store, logger, shiftID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, store.quantityUpdates[shiftID])
}

func TestUpdateShiftQuantity_RejectsNonPositive(t *testing.T) {
	store := &mockShiftStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	for _, quantity := range []int{0, -1} {
		_, err := UpdateShiftQuantity(ctx, store, logger, uuid.NewString(), quantity)
		assert.ErrorIs(t, err, ErrValidation, "quantity %d", quantity)
	}
}

func TestMinimumQuantity(t *testing.T) {
	assert.Equal(t, 1, MinimumQuantity(0))
	assert.Equal(t, 1, MinimumQuantity(-2))
	assert.Equal(t, 1, MinimumQuantity(1))
	assert.Equal(t, 4, MinimumQuantity(4))
}
