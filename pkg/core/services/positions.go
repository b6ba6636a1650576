package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shiftline/shiftline/pkg/db"
)

// NewPosition is the input for creating a position
type NewPosition struct {
	Name        string `validate:"required"`
	Display     string `validate:"required"`
	Description *string
}

// Positions fetches all positions
func Positions(ctx context.Context, store db.PositionStore, logger *zap.Logger) ([]db.Position, error) {
	positions, err := store.Positions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch positions: %w", err)
	}
	return positions, nil
}

// PositionByID fetches one position
func PositionByID(ctx context.Context, store db.PositionStore, logger *zap.Logger, positionID string) (*db.Position, error) {
	if err := requireUUID("position id", positionID); err != nil {
		return nil, err
	}
	return store.PositionByID(ctx, positionID)
}

// CreatePosition creates a position and returns its id. Position names are
// unique; a duplicate surfaces as db.ErrConflict.
func CreatePosition(ctx context.Context, store db.PositionStore, logger *zap.Logger, input NewPosition) (string, error) {
	if err := validate.Struct(input); err != nil {
		return "", fmt.Errorf("position: %w: %v", ErrValidation, err)
	}

	positionID, err := store.InsertPosition(ctx, &db.Position{
		Name:        input.Name,
		Display:     input.Display,
		Description: input.Description,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create position: %w", err)
	}

	logger.Info("Position created", zap.String("position_id", positionID), zap.String("name", input.Name))
	return positionID, nil
}

// UpdatePosition applies a partial update to a position. At least one field
// must be present.
func UpdatePosition(ctx context.Context, store db.PositionStore, logger *zap.Logger, positionID string, patch db.PositionPatch) (string, error) {
	if err := requireUUID("position id", positionID); err != nil {
		return "", err
	}
	if patch.IsEmpty() {
		return "", validationErr("position update", "must change at least one field")
	}
	if patch.Description != nil && patch.ClearDescription {
		return "", validationErr("position description", "cannot be set and cleared at once")
	}

	id, err := store.UpdatePosition(ctx, positionID, patch)
	if err != nil {
		return "", fmt.Errorf("failed to update position: %w", err)
	}

	logger.Info("Position updated", zap.String("position_id", id))
	return id, nil
}
