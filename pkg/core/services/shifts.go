package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shiftline/shiftline/pkg/db"
)

// CreateShifts attaches one active shift per entry to an event and returns
// the new shift ids in entry order
func CreateShifts(ctx context.Context, store db.ShiftStore, logger *zap.Logger, eventID string, entries []db.ShiftEntry) ([]string, error) {
	if err := requireUUID("event id", eventID); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, validationErr("shifts", "must include at least one entry")
	}
	for i, entry := range entries {
		if err := requireUUID(fmt.Sprintf("shifts[%d] position id", i), entry.PositionID); err != nil {
			return nil, err
		}
		if entry.Quantity < 1 {
			return nil, validationErr(fmt.Sprintf("shifts[%d] quantity", i), "must be a positive integer")
		}
	}

	ids, err := store.InsertShifts(ctx, eventID, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to create shifts: %w", err)
	}

	logger.Info("Shifts created", zap.String("event_id", eventID), zap.Int("count", len(ids)))
	return ids, nil
}

// DeleteShift soft-deletes a shift. The row stays for audit; every read
// filters it out from then on.
func DeleteShift(ctx context.Context, store db.ShiftStore, logger *zap.Logger, shiftID string) (string, error) {
	if err := requireUUID("shift id", shiftID); err != nil {
		return "", err
	}

	id, err := store.SoftDeleteShift(ctx, shiftID)
	if err != nil {
		return "", fmt.Errorf("failed to delete shift: %w", err)
	}

	logger.Info("Shift deleted", zap.String("shift_id", id))
	return id, nil
}

// UpdateShiftQuantity sets a shift's desired headcount directly. No floor
// is enforced here: an operator may shrink quantity below the live slot
// count when they intend to remove slots next. Callers wanting a guard
// should use MinimumQuantity.
func UpdateShiftQuantity(ctx context.Context, store db.ShiftStore, logger *zap.Logger, shiftID string, quantity int) (string, error) {
	if err := requireUUID("shift id", shiftID); err != nil {
		return "", err
	}
	if quantity < 1 {
		return "", validationErr("quantity", "must be a positive integer")
	}

	id, err := store.UpdateShiftQuantity(ctx, shiftID, quantity)
	if err != nil {
		return "", fmt.Errorf("failed to update shift quantity: %w", err)
	}

	logger.Info("Shift quantity updated", zap.String("shift_id", id), zap.Int("quantity", quantity))
	return id, nil
}

// MinimumQuantity returns the smallest quantity a caller should offer for
// a shift: the number of currently filled slots, but never below one
func MinimumQuantity(activeSlotCount int) int {
	if activeSlotCount < 1 {
		return 1
	}
	return activeSlotCount
}
