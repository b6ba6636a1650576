package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shiftline/shiftline/pkg/core/model"
	"github.com/shiftline/shiftline/pkg/db"
)

// AssignUser fills a seat on a shift and reconciles the shift's desired
// headcount with demand: after the slot is inserted, if the number of
// active slots now exceeds the shift's quantity, quantity is raised to
// match. Quantity is only ever raised here, never lowered. The whole
// sequence runs in one transaction so a failed raise cannot leave an
// orphaned slot, and so concurrent assignments cannot both observe a stale
// quantity.
func AssignUser(ctx context.Context, store db.SlotStore, logger *zap.Logger, shiftID, userID string) (string, error) {
	if err := requireUUID("shift id", shiftID); err != nil {
		return "", err
	}
	if err := requireUUID("user id", userID); err != nil {
		return "", err
	}

	logger.Debug("Assigning user to shift", zap.String("shift_id", shiftID), zap.String("user_id", userID))

	var slotID string
	err := store.InTx(ctx, func(ctx context.Context) error {
		id, err := store.InsertSlot(ctx, shiftID, userID)
		if err != nil {
			return fmt.Errorf("failed to insert slot: %w", err)
		}
		slotID = id

		activeSlots, err := store.CountActiveSlots(ctx, shiftID)
		if err != nil {
			return fmt.Errorf("failed to count active slots: %w", err)
		}

		quantity, err := store.ShiftQuantity(ctx, shiftID)
		if err != nil {
			return fmt.Errorf("failed to read shift quantity: %w", err)
		}

		if activeSlots > quantity {
			logger.Info("Raising shift quantity to match filled slots",
				zap.String("shift_id", shiftID),
				zap.Int("quantity", quantity),
				zap.Int("active_slots", activeSlots))
			if _, err := store.UpdateShiftQuantity(ctx, shiftID, activeSlots); err != nil {
				return fmt.Errorf("failed to raise shift quantity: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	logger.Info("User assigned to shift",
		zap.String("slot_id", slotID),
		zap.String("shift_id", shiftID),
		zap.String("user_id", userID))

	return slotID, nil
}

// EventRoster folds the flat shift × position × slot × user join for an
// event into one entry per shift, each carrying its position details and
// the filled slots in row order. Shifts keep first-seen order. A shift
// with no active slots yields a single row with null slot columns, which
// creates the group but appends nothing, so it comes back with an empty
// slot list.
func EventRoster(ctx context.Context, store db.SlotStore, logger *zap.Logger, eventID string) ([]model.ShiftWithSlots, error) {
	if err := requireUUID("event id", eventID); err != nil {
		return nil, err
	}

	rows, err := store.EventRosterRows(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event roster: %w", err)
	}

	logger.Debug("Aggregating event roster", zap.String("event_id", eventID), zap.Int("rows", len(rows)))

	order := make([]string, 0, len(rows))
	groups := make(map[string]*model.ShiftWithSlots, len(rows))

	for _, row := range rows {
		shift, ok := groups[row.ShiftID]
		if !ok {
			shift = &model.ShiftWithSlots{
				ID:         row.ShiftID,
				EventID:    row.EventID,
				PositionID: row.PositionID,
				Quantity:   row.Quantity,
				Position: model.PositionView{
					ID:          row.PositionID,
					Name:        row.PositionName,
					Display:     row.PositionDisplay,
					Description: row.PositionDescription,
				},
				Slots: []model.FilledSlot{},
			}
			groups[row.ShiftID] = shift
			order = append(order, row.ShiftID)
		}

		if row.SlotID != nil && row.UserID != nil && row.UserDisplayName != nil {
			shift.Slots = append(shift.Slots, model.FilledSlot{
				ID: *row.SlotID,
				User: model.RosterUser{
					ID:          *row.UserID,
					DisplayName: *row.UserDisplayName,
					Image:       row.UserImage,
					NameFirst:   row.UserNameFirst,
					NameLast:    row.UserNameLast,
				},
			})
		}
	}

	roster := make([]model.ShiftWithSlots, 0, len(order))
	for _, shiftID := range order {
		shift := groups[shiftID]
		if err := validate.Struct(shift); err != nil {
			return nil, fmt.Errorf("roster entry for shift %s: %w: %v", shiftID, ErrValidation, err)
		}
		roster = append(roster, *shift)
	}

	return roster, nil
}

// CreateSlot fills a seat without reconciling the shift's quantity.
// AssignUser is the operation callers normally want.
func CreateSlot(ctx context.Context, store db.SlotStore, logger *zap.Logger, shiftID, userID string) (string, error) {
	if err := requireUUID("shift id", shiftID); err != nil {
		return "", err
	}
	if err := requireUUID("user id", userID); err != nil {
		return "", err
	}

	slotID, err := store.InsertSlot(ctx, shiftID, userID)
	if err != nil {
		return "", fmt.Errorf("failed to create slot: %w", err)
	}

	logger.Info("Slot created", zap.String("slot_id", slotID), zap.String("shift_id", shiftID))
	return slotID, nil
}

// DeleteSlot soft-deletes a slot; the row stays and is excluded from reads
func DeleteSlot(ctx context.Context, store db.SlotStore, logger *zap.Logger, slotID string) (string, error) {
	if err := requireUUID("slot id", slotID); err != nil {
		return "", err
	}

	id, err := store.SoftDeleteSlot(ctx, slotID)
	if err != nil {
		return "", fmt.Errorf("failed to delete slot: %w", err)
	}

	logger.Info("Slot deleted", zap.String("slot_id", id))
	return id, nil
}

// ReassignUser moves a slot to a different user and returns the slot id
func ReassignUser(ctx context.Context, store db.SlotStore, logger *zap.Logger, slotID, userID string) (string, error) {
	if err := requireUUID("slot id", slotID); err != nil {
		return "", err
	}
	if err := requireUUID("user id", userID); err != nil {
		return "", err
	}

	id, err := store.ReassignSlot(ctx, slotID, userID)
	if err != nil {
		return "", fmt.Errorf("failed to reassign slot: %w", err)
	}

	logger.Info("Slot reassigned", zap.String("slot_id", id), zap.String("user_id", userID))
	return id, nil
}
