package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline/pkg/db"
)

// InsertShifts bulk-inserts active shifts for an event and returns the new
// ids in entry order
func (d *DB) InsertShifts(ctx context.Context, eventID string, entries []db.ShiftEntry) ([]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	batch := &pgx.Batch{}
	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = newID()
		batch.Queue(`
			INSERT INTO shifts (id, event_id, position_id, quantity, status)
			VALUES ($1, $2, $3, $4, $5)
		`, ids[i], eventID, entry.PositionID, entry.Quantity, db.StatusActive)
	}

	results := d.conn(ctx).SendBatch(ctx, batch)
	defer results.Close()
	for range entries {
		if _, err := results.Exec(); err != nil {
			if isForeignKeyViolation(err) {
				return nil, fmt.Errorf("event %s or position: %w", eventID, db.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to insert shift: %w", err)
		}
	}

	return ids, nil
}

// SoftDeleteShift marks a shift deleted; the row is kept and excluded from reads
func (d *DB) SoftDeleteShift(ctx context.Context, shiftID string) (string, error) {
	tag, err := d.conn(ctx).Exec(ctx, `
		UPDATE shifts SET status = $2 WHERE id = $1 AND status = $3
	`, shiftID, db.StatusDeleted, db.StatusActive)
	if err != nil {
		return "", fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", fmt.Errorf("shift %s: %w", shiftID, db.ErrNotFound)
	}
	return shiftID, nil
}

// UpdateShiftQuantity sets a shift's desired headcount and returns its id
func (d *DB) UpdateShiftQuantity(ctx context.Context, shiftID string, quantity int) (string, error) {
	tag, err := d.conn(ctx).Exec(ctx, `
		UPDATE shifts SET quantity = $2 WHERE id = $1 AND status = $3
	`, shiftID, quantity, db.StatusActive)
	if err != nil {
		return "", fmt.Errorf("failed to update shift quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", fmt.Errorf("shift %s: %w", shiftID, db.ErrNotFound)
	}
	return shiftID, nil
}

// ShiftQuantity reads a shift's current desired headcount
func (d *DB) ShiftQuantity(ctx context.Context, shiftID string) (int, error) {
	var quantity int
	err := d.conn(ctx).QueryRow(ctx, `
		SELECT quantity FROM shifts WHERE id = $1 AND status = $2
	`, shiftID, db.StatusActive).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("shift %s: %w", shiftID, db.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to query shift quantity: %w", err)
	}
	return quantity, nil
}

// CountActiveSlots counts the active slots attached to a shift
func (d *DB) CountActiveSlots(ctx context.Context, shiftID string) (int, error) {
	var count int
	err := d.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM slots WHERE shift_id = $1 AND status = $2
	`, shiftID, db.StatusActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active slots: %w", err)
	}
	return count, nil
}
