package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline/pkg/db"
)

// Positions retrieves all positions
func (d *DB) Positions(ctx context.Context) ([]db.Position, error) {
	rows, err := d.conn(ctx).Query(ctx, `
		SELECT id, name, display, description
		FROM positions
		ORDER BY display
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	var positions []db.Position
	for rows.Next() {
		var p db.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.Display, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating positions: %w", err)
	}

	return positions, nil
}

// PositionByID retrieves one position by id
func (d *DB) PositionByID(ctx context.Context, positionID string) (*db.Position, error) {
	var p db.Position
	err := d.conn(ctx).QueryRow(ctx, `
		SELECT id, name, display, description
		FROM positions
		WHERE id = $1
	`, positionID).Scan(&p.ID, &p.Name, &p.Display, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("position %s: %w", positionID, db.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query position: %w", err)
	}
	return &p, nil
}

// InsertPosition inserts a new position and returns its id
func (d *DB) InsertPosition(ctx context.Context, position *db.Position) (string, error) {
	id := newID()
	_, err := d.conn(ctx).Exec(ctx, `
		INSERT INTO positions (id, name, display, description)
		VALUES ($1, $2, $3, $4)
	`, id, position.Name, position.Display, position.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("position name %q: %w", position.Name, db.ErrConflict)
		}
		return "", fmt.Errorf("failed to insert position: %w", err)
	}
	return id, nil
}

// UpdatePosition applies a partial update to a position and returns its id
func (d *DB) UpdatePosition(ctx context.Context, positionID string, patch db.PositionPatch) (string, error) {
	var set []string
	args := []any{positionID}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Display != nil {
		add("display", *patch.Display)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.ClearDescription {
		add("description", nil)
	}

	if len(set) == 0 {
		return "", fmt.Errorf("no position fields to update")
	}

	tag, err := d.conn(ctx).Exec(ctx,
		`UPDATE positions SET `+strings.Join(set, ", ")+` WHERE id = $1`, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("position name: %w", db.ErrConflict)
		}
		return "", fmt.Errorf("failed to update position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", fmt.Errorf("position %s: %w", positionID, db.ErrNotFound)
	}
	return positionID, nil
}
