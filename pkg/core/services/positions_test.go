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

// mockPositionStore implements db.PositionStore
type mockPositionStore struct {
	positions      []db.Position
	inserted       []db.Position
	insertErr      error
	updatedPatches map[string]db.PositionPatch
}

func (m *mockPositionStore) Positions(ctx context.Context) ([]db.Position, error) {
	return m.positions, nil
}

func (m *mockPositionStore) PositionByID(ctx context.Context, positionID string) (*db.Position, error) {
	for i := range m.positions {
		if m.positions[i].ID == positionID {
			return &m.positions[i], nil
		}
	}
	return nil, fmt.Errorf("position %s: %w", positionID, db.ErrNotFound)
}

func (m *mockPositionStore) InsertPosition(ctx context.Context, position *db.Position) (string, error) {
	if m.insertErr != nil {
		return "", m.insertErr
	}
	stored := *position
	stored.ID = fmt.Sprintf("position-%d", len(m.inserted)+1)
	m.inserted = append(m.inserted, stored)
	return stored.ID, nil
}

func (m *mockPositionStore) UpdatePosition(ctx context.Context, positionID string, patch db.PositionPatch) (string, error) {
	if m.updatedPatches == nil {
		m.updatedPatches = make(map[string]db.PositionPatch)
	}
	m.updatedPatches[positionID] = patch
	return positionID, nil
}

func TestCreatePosition(t *testing.T) {
	store := &mockPositionStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	id, err := CreatePosition(ctx, store, logger, NewPosition{Name: "medic", Display: "Medic"})
	require.NoError(t, err)
	assert.Equal(t, "position-1", id)

	_, err = CreatePosition(ctx, store, logger, NewPosition{Display: "Medic"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CreatePosition(ctx, store, logger, NewPosition{Name: "medic"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreatePosition_DuplicateNameSurfacesConflict(t *testing.T) {
	store := &mockPositionStore{
		insertErr: fmt.Errorf("position medic: %w", db.ErrConflict),
	}
	ctx := context.Background()
	logger := zap.NewNop()

	_, err := CreatePosition(ctx, store, logger, NewPosition{Name: "medic", Display: "Medic"})
	assert.ErrorIs(t, err, db.ErrConflict)
}

func TestPositionByID(t *testing.T) {
	positionID := uuid.NewString()
	store := &mockPositionStore{positions: []db.Position{{ID: positionID, Name: "medic", Display: "Medic"}}}
	ctx := context.Background()
	logger := zap.NewNop()

	position, err := PositionByID(ctx, store, logger, positionID)
	require.NoError(t, err)
	assert.Equal(t, "Medic", position.Display)

	_, err = PositionByID(ctx, store, logger, uuid.NewString())
	assert.ErrorIs(t, err, db.ErrNotFound)

	_, err = PositionByID(ctx, store, logger, "bad")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePosition(t *testing.T) {
	store := &mockPositionStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	positionID := uuid.NewString()
	display := "Lead Medic"
	_, err := UpdatePosition(ctx, store, logger, positionID, db.PositionPatch{Display: &display})
	require.NoError(t, err)
	assert.Equal(t, &display, store.updatedPatches[positionID].Display)

	_, err = UpdatePosition(ctx, store, logger, positionID, db.PositionPatch{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdatePosition_ClearsDescription(t *testing.T) {
	store := &mockPositionStore{}
	ctx := context.Background()
	logger := zap.NewNop()

	positionID := uuid.NewString()
	_, err := UpdatePosition(ctx, store, logger, positionID, db.PositionPatch{ClearDescription: true})
	require.NoError(t, err)
	assert.True(t, store.updatedPatches[positionID].ClearDescription)

	description := "kept"
	_, err = UpdatePosition(ctx, store, logger, positionID,
		db.PositionPatch{Description: &description, ClearDescription: true})
	assert.ErrorIs(t, err, ErrValidation)
}
