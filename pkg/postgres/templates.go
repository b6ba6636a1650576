package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/shiftline/shiftline/pkg/db"
)

// Templates retrieves all templates
func (d *DB) Templates(ctx context.Context) ([]db.Template, error) {
	rows, err := d.conn(ctx).Query(ctx, `
		SELECT id, name, display, description, location, time_begin::text, time_end::text
		FROM templates
		ORDER BY display
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []db.Template
	for rows.Next() {
		var t db.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Display, &t.Description, &t.Location, &t.TimeBegin, &t.TimeEnd); err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating templates: %w", err)
	}

	return templates, nil
}

// TemplateByID retrieves one template by id
func (d *DB) TemplateByID(ctx context.Context, templateID string) (*db.Template, error) {
	var t db.Template
	err := d.conn(ctx).QueryRow(ctx, `
		SELECT id, name, display, description, location, time_begin::text, time_end::text
		FROM templates
		WHERE id = $1
	`, templateID).Scan(&t.ID, &t.Name, &t.Display, &t.Description, &t.Location, &t.TimeBegin, &t.TimeEnd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("template %s: %w", templateID, db.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query template: %w", err)
	}
	return &t, nil
}

// InsertTemplate inserts a new template and returns its id
func (d *DB) InsertTemplate(ctx context.Context, template *db.Template) (string, error) {
	id := newID()
	_, err := d.conn(ctx).Exec(ctx, `
		INSERT INTO templates (id, name, display, description, location, time_begin, time_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, template.Name, template.Display, template.Description, template.Location, template.TimeBegin, template.TimeEnd)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("template name %q: %w", template.Name, db.ErrConflict)
		}
		return "", fmt.Errorf("failed to insert template: %w", err)
	}
	return id, nil
}

// UpdateTemplate applies a partial update to a template's details and
// returns its id
func (d *DB) UpdateTemplate(ctx context.Context, templateID string, patch db.TemplatePatch) (string, error) {
	var set []string
	args := []any{templateID}

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
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if patch.TimeBegin != nil {
		add("time_begin", *patch.TimeBegin)
	}
	if patch.TimeEnd != nil {
		add("time_end", *patch.TimeEnd)
	}
	if patch.ClearDescription {
		add("description", nil)
	}
	if patch.ClearLocation {
		add("location", nil)
	}
	if patch.ClearTimeEnd {
		add("time_end", nil)
	}

	if len(set) == 0 {
		return "", fmt.Errorf("no template fields to update")
	}

	tag, err := d.conn(ctx).Exec(ctx,
		`UPDATE templates SET `+strings.Join(set, ", ")+` WHERE id = $1`, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("template name: %w", db.ErrConflict)
		}
		return "", fmt.Errorf("failed to update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", fmt.Errorf("template %s: %w", templateID, db.ErrNotFound)
	}
	return templateID, nil
}

// TemplatePositions retrieves the raw roster rows for a template
func (d *DB) TemplatePositions(ctx context.Context, templateID string) ([]db.TemplatePosition, error) {
	rows, err := d.conn(ctx).Query(ctx, `
		SELECT id, template_id, position_id, quantity
		FROM template_positions
		WHERE template_id = $1
		ORDER BY id
	`, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query template positions: %w", err)
	}
	defer rows.Close()

	var entries []db.TemplatePosition
	for rows.Next() {
		var tp db.TemplatePosition
		if err := rows.Scan(&tp.ID, &tp.TemplateID, &tp.PositionID, &tp.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan template position: %w", err)
		}
		entries = append(entries, tp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating template positions: %w", err)
	}

	return entries, nil
}

// TemplatePositionDetails retrieves a template's roster joined with
// position details
func (d *DB) TemplatePositionDetails(ctx context.Context, templateID string) ([]db.TemplatePositionDetail, error) {
	rows, err := d.conn(ctx).Query(ctx, `
		SELECT tp.id, tp.quantity, p.id, p.name, p.display, p.description
		FROM template_positions tp
		INNER JOIN positions p ON tp.position_id = p.id
		WHERE tp.template_id = $1
		ORDER BY tp.id
	`, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query template position details: %w", err)
	}
	defer rows.Close()

	var details []db.TemplatePositionDetail
	for rows.Next() {
		var detail db.TemplatePositionDetail
		if err := rows.Scan(
			&detail.ID, &detail.Quantity,
			&detail.Position.ID, &detail.Position.Name, &detail.Position.Display, &detail.Position.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan template position detail: %w", err)
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating template position details: %w", err)
	}

	return details, nil
}

// InsertTemplatePositions bulk-inserts roster entries for a template and
// returns the new ids in entry order. Duplicate filtering happens in the
// service layer.
func (d *DB) InsertTemplatePositions(ctx context.Context, templateID string, entries []db.TemplatePositionEntry) ([]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	batch := &pgx.Batch{}
	ids := make([]string, len(entries))
	for i, entry := range entries {
		ids[i] = newID()
		batch.Queue(`
			INSERT INTO template_positions (id, template_id, position_id, quantity)
			VALUES ($1, $2, $3, $4)
		`, ids[i], templateID, entry.PositionID, entry.Quantity)
	}

	results := d.conn(ctx).SendBatch(ctx, batch)
	defer results.Close()
	for range entries {
		if _, err := results.Exec(); err != nil {
			return nil, fmt.Errorf("failed to insert template position: %w", err)
		}
	}

	return ids, nil
}

// UpdateTemplatePositionQuantity sets a roster entry's quantity and returns its id
func (d *DB) UpdateTemplatePositionQuantity(ctx context.Context, templatePositionID string, quantity int) (string, error) {
	tag, err := d.conn(ctx).Exec(ctx, `
		UPDATE template_positions SET quantity = $2 WHERE id = $1
	`, templatePositionID, quantity)
	if err != nil {
		return "", fmt.Errorf("failed to update template position quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", fmt.Errorf("template position %s: %w", templatePositionID, db.ErrNotFound)
	}
	return templatePositionID, nil
}

// DeleteTemplatePosition hard-deletes a roster entry. Shifts copy roster
// values at instantiation time, so removal never affects existing events.
func (d *DB) DeleteTemplatePosition(ctx context.Context, templatePositionID string) (string, error) {
	tag, err := d.conn(ctx).Exec(ctx, `
		DELETE FROM template_positions WHERE id = $1
	`, templatePositionID)
	if err != nil {
		return "", fmt.Errorf("failed to delete template position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", fmt.Errorf("template position %s: %w", templatePositionID, db.ErrNotFound)
	}
	return templatePositionID, nil
}
