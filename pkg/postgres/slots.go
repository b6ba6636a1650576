package postgres

import (
	"context"
	"fmt"

	"github.com/shiftline/shiftline/pkg/db"
)

// InsertSlot inserts a new active slot for (shiftID, userID) and returns
// its id. Nothing prevents the same user holding two slots on one shift.
func (d *DB) InsertSlot(ctx context.Context, shiftID, userID string) (string, error) {
	id := newID()
	_, err := d.conn(ctx).Exec(ctx, `
		INSERT INTO slots (id, shift_id, user_id, status)
		VALUES ($1, $2, $3, $4)
	`, id, shiftID, userID, db.StatusActive)
	if err != nil {
		if isForeignKeyViolation(err) {
			return "", fmt.Errorf("shift %s or user %s: %w", shiftID, userID, db.ErrNotFound)
		}
		return "", fmt.Errorf("failed to insert slot: %w", err)
	}
	return id, nil
}

// EventRosterRows returns the flat shift × position × slot × user join for
// an event: one row per (active shift, active slot) pair, with a single
// null-slot row for shifts that have no active slots.
func (d *DB) EventRosterRows(ctx context.Context, eventID string) ([]db.EventRosterRow, error) {
	rows, err := d.conn(ctx).Query(ctx, `
		SELECT
			sh.id, sh.event_id, sh.quantity,
			p.id, p.name, p.display, p.description,
			sl.id, u.id, u.display_name, u.image, u.name_first, u.name_last
		FROM shifts sh
		INNER JOIN positions p ON sh.position_id = p.id
		LEFT JOIN slots sl ON sh.id = sl.shift_id AND sl.status = $2
		LEFT JOIN users u ON sl.user_id = u.id
		WHERE sh.event_id = $1 AND sh.status = $3
		ORDER BY sh.id, sl.id
	`, eventID, db.StatusActive, db.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query event roster: %w", err)
	}
	defer rows.Close()

	var roster []db.EventRosterRow
	for rows.Next() {
		var r db.EventRosterRow
		if err := rows.Scan(
			&r.ShiftID, &r.EventID, &r.Quantity,
			&r.PositionID, &r.PositionName, &r.PositionDisplay, &r.PositionDescription,
			&r.SlotID, &r.UserID, &r.UserDisplayName, &r.UserImage, &r.UserNameFirst, &r.UserNameLast,
		); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		roster = append(roster, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roster rows: %w", err)
	}

	return roster, nil
}

// SoftDeleteSlot marks a slot deleted; the row is kept and excluded from reads
func (d *DB) SoftDeleteSlot(ctx context.Context, slotID string) (string, error) {
	tag, err := d.conn(ctx).Exec(ctx, `
		UPDATE slots SET status = $2 WHERE id = $1 AND status = $3
	`, slotID, db.StatusDeleted, db.StatusActive)
	if err != nil {
		return "", fmt.Errorf("failed to delete slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", fmt.Errorf("slot %s: %w", slotID, db.ErrNotFound)
	}
	return slotID, nil
}

// ReassignSlot moves an active slot to a different user and returns the slot id
func (d *DB) ReassignSlot(ctx context.Context, slotID, userID string) (string, error) {
	tag, err := d.conn(ctx).Exec(ctx, `
		UPDATE slots SET user_id = $2 WHERE id = $1 AND status = $3
	`, slotID, userID, db.StatusActive)
	if err != nil {
		return "", fmt.Errorf("failed to reassign slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", fmt.Errorf("slot %s: %w", slotID, db.ErrNotFound)
	}
	return slotID, nil
}
