package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline/pkg/db"
)

// Users retrieves all user accounts, ordered by display name. Accounts are
// written by the external auth provider; this side only reads them.
func (d *DB) Users(ctx context.Context) ([]db.User, error) {
	rows, err := d.conn(ctx).Query(ctx, `
		SELECT id, display_name, email, image, name_first, name_last
		FROM users
		ORDER BY display_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []db.User
	for rows.Next() {
		var u db.User
		if err := rows.Scan(&u.ID, &u.DisplayName, &u.Email, &u.Image, &u.NameFirst, &u.NameLast); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// UserByID retrieves one user by id
func (d *DB) UserByID(ctx context.Context, userID string) (*db.User, error) {
	var u db.User
	err := d.conn(ctx).QueryRow(ctx, `
		SELECT id, display_name, email, image, name_first, name_last
		FROM users
		WHERE id = $1
	`, userID).Scan(&u.ID, &u.DisplayName, &u.Email, &u.Image, &u.NameFirst, &u.NameLast)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, db.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &u, nil
}
