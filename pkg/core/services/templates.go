package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shiftline/shiftline/pkg/core/model"
	"github.com/shiftline/shiftline/pkg/db"
)

// NewTemplate is the input for creating an event template from details.
// Times of day accept HH:MM or HH:MM:SS.
type NewTemplate struct {
	Display     string `validate:"required"`
	Description *string
	Location    *string
	TimeBegin   string `validate:"required"`
	TimeEnd     *string
}

// Templates fetches all templates
func Templates(ctx context.Context, store db.TemplateStore, logger *zap.Logger) ([]db.Template, error) {
	templates, err := store.Templates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch templates: %w", err)
	}
	return templates, nil
}

// TemplateByID fetches a template together with its position roster
func TemplateByID(ctx context.Context, store db.TemplateStore, logger *zap.Logger, templateID string) (*model.TemplateWithPositions, error) {
	if err := requireUUID("template id", templateID); err != nil {
		return nil, err
	}

	template, err := store.TemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	positions, err := store.TemplatePositionDetails(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch template positions: %w", err)
	}

	return &model.TemplateWithPositions{
		Template:  *template,
		Positions: positions,
	}, nil
}

// CreateTemplate creates a template from its details. The unique name slug
// is derived from the display name plus a random suffix; times of day are
// normalized to HH:MM:SS before storage.
func CreateTemplate(ctx context.Context, store db.TemplateStore, logger *zap.Logger, input NewTemplate) (string, error) {
	if err := validate.Struct(input); err != nil {
		return "", fmt.Errorf("template: %w: %v", ErrValidation, err)
	}
	if !validTimeOfDay(input.TimeBegin) {
		return "", validationErr("time begin", "must be HH:MM or HH:MM:SS")
	}
	if input.TimeEnd != nil && !validTimeOfDay(*input.TimeEnd) {
		return "", validationErr("time end", "must be HH:MM or HH:MM:SS")
	}

	template := &db.Template{
		Name:        slugify(input.Display),
		Display:     strings.TrimSpace(input.Display),
		Description: input.Description,
		Location:    input.Location,
		TimeBegin:   normalizeTimeOfDay(input.TimeBegin),
	}
	if input.TimeEnd != nil {
		end := normalizeTimeOfDay(*input.TimeEnd)
		template.TimeEnd = &end
	}

	templateID, err := store.InsertTemplate(ctx, template)
	if err != nil {
		return "", fmt.Errorf("failed to create template: %w", err)
	}

	logger.Info("Template created", zap.String("template_id", templateID), zap.String("name", template.Name))
	return templateID, nil
}

// UpdateTemplateDetails applies a partial update to a template. At least
// one field must be present; times of day are normalized exactly as on the
// creation path.
func UpdateTemplateDetails(ctx context.Context, store db.TemplateStore, logger *zap.Logger, templateID string, patch db.TemplatePatch) (string, error) {
	if err := requireUUID("template id", templateID); err != nil {
		return "", err
	}
	if patch.IsEmpty() {
		return "", validationErr("template update", "must change at least one field")
	}
	if patch.Description != nil && patch.ClearDescription {
		return "", validationErr("template description", "cannot be set and cleared at once")
	}
	if patch.Location != nil && patch.ClearLocation {
		return "", validationErr("template location", "cannot be set and cleared at once")
	}
	if patch.TimeEnd != nil && patch.ClearTimeEnd {
		return "", validationErr("template time end", "cannot be set and cleared at once")
	}
	if patch.TimeBegin != nil {
		if !validTimeOfDay(*patch.TimeBegin) {
			return "", validationErr("time begin", "must be HH:MM or HH:MM:SS")
		}
		normalized := normalizeTimeOfDay(*patch.TimeBegin)
		patch.TimeBegin = &normalized
	}
	if patch.TimeEnd != nil {
		if !validTimeOfDay(*patch.TimeEnd) {
			return "", validationErr("time end", "must be HH:MM or HH:MM:SS")
		}
		normalized := normalizeTimeOfDay(*patch.TimeEnd)
		patch.TimeEnd = &normalized
	}

	id, err := store.UpdateTemplate(ctx, templateID, patch)
	if err != nil {
		return "", fmt.Errorf("failed to update template: %w", err)
	}

	logger.Info("Template updated", zap.String("template_id", id))
	return id, nil
}

// CreateTemplatePositions attaches roster entries to a template. Positions
// already on the roster are silently skipped, so re-submitting an
// overlapping roster is safe and adds only the new positions. Returns the
// ids of the rows actually inserted; an all-duplicates request returns an
// empty result, not an error.
func CreateTemplatePositions(ctx context.Context, store db.TemplateStore, logger *zap.Logger, templateID string, entries []db.TemplatePositionEntry) ([]string, error) {
	if err := requireUUID("template id", templateID); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, validationErr("template positions", "must include at least one entry")
	}
	for i, entry := range entries {
		if err := requireUUID(fmt.Sprintf("templatePositions[%d] position id", i), entry.PositionID); err != nil {
			return nil, err
		}
		if entry.Quantity < 1 {
			return nil, validationErr(fmt.Sprintf("templatePositions[%d] quantity", i), "must be a positive integer")
		}
	}

	existing, err := store.TemplatePositions(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing template positions: %w", err)
	}

	attached := make(map[string]bool, len(existing))
	for _, tp := range existing {
		attached[tp.PositionID] = true
	}

	var toInsert []db.TemplatePositionEntry
	for _, entry := range entries {
		if attached[entry.PositionID] {
			continue
		}
		toInsert = append(toInsert, entry)
	}

	if len(toInsert) == 0 {
		logger.Debug("All requested positions already attached", zap.String("template_id", templateID))
		return []string{}, nil
	}

	ids, err := store.InsertTemplatePositions(ctx, templateID, toInsert)
	if err != nil {
		return nil, fmt.Errorf("failed to insert template positions: %w", err)
	}

	logger.Info("Template positions added",
		zap.String("template_id", templateID),
		zap.Int("requested", len(entries)),
		zap.Int("inserted", len(ids)))

	return ids, nil
}

// UpdateTemplatePositionQuantity sets a roster entry's quantity
func UpdateTemplatePositionQuantity(ctx context.Context, store db.TemplateStore, logger *zap.Logger, templatePositionID string, quantity int) (string, error) {
	if err := requireUUID("template position id", templatePositionID); err != nil {
		return "", err
	}
	if quantity < 1 {
		return "", validationErr("quantity", "must be a positive integer")
	}

	id, err := store.UpdateTemplatePositionQuantity(ctx, templatePositionID, quantity)
	if err != nil {
		return "", fmt.Errorf("failed to update template position quantity: %w", err)
	}

	logger.Info("Template position quantity updated", zap.String("template_position_id", id), zap.Int("quantity", quantity))
	return id, nil
}

// DeleteTemplatePosition hard-deletes a roster entry. Existing events are
// unaffected: their shifts copied the roster values at instantiation.
func DeleteTemplatePosition(ctx context.Context, store db.TemplateStore, logger *zap.Logger, templatePositionID string) (string, error) {
	if err := requireUUID("template position id", templatePositionID); err != nil {
		return "", err
	}

	id, err := store.DeleteTemplatePosition(ctx, templatePositionID)
	if err != nil {
		return "", fmt.Errorf("failed to delete template position: %w", err)
	}

	logger.Info("Template position deleted", zap.String("template_position_id", id))
	return id, nil
}

// CreateEventFromTemplate materializes a new event from a template and a
// calendar date (2006-01-02). The event copies the template's display
// name, description and location; its instants combine the supplied date
// with the template's times of day in loc. The template's position roster
// is duplicated into active shifts with the same quantities. The event and
// its shifts are written in one transaction so a failure cannot leave an
// event with half a roster.
func CreateEventFromTemplate(ctx context.Context, store db.TemplateStore, logger *zap.Logger, templateID, date string, createdBy *string, loc *time.Location) (string, error) {
	if err := requireUUID("template id", templateID); err != nil {
		return "", err
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", validationErr("date", "must be YYYY-MM-DD")
	}
	if createdBy != nil {
		if err := requireUUID("created by", *createdBy); err != nil {
			return "", err
		}
	}

	template, err := store.TemplateByID(ctx, templateID)
	if err != nil {
		return "", err
	}

	timeBegin, err := combineDateAndTime(date, template.TimeBegin, loc)
	if err != nil {
		return "", fmt.Errorf("failed to compose event start: %w", err)
	}

	var timeEnd *time.Time
	if template.TimeEnd != nil {
		end, err := combineDateAndTime(date, *template.TimeEnd, loc)
		if err != nil {
			return "", fmt.Errorf("failed to compose event end: %w", err)
		}
		timeEnd = &end
	}

	var eventID string
	err = store.InTx(ctx, func(ctx context.Context) error {
		id, err := store.InsertEvent(ctx, &db.Event{
			Name:        template.Display,
			Description: template.Description,
			Location:    template.Location,
			TimeBegin:   timeBegin,
			TimeEnd:     timeEnd,
			CreatedBy:   createdBy,
		})
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
		eventID = id

		roster, err := store.TemplatePositions(ctx, templateID)
		if err != nil {
			return fmt.Errorf("failed to fetch template positions: %w", err)
		}

		if len(roster) == 0 {
			return nil
		}

		entries := make([]db.ShiftEntry, len(roster))
		for i, tp := range roster {
			entries[i] = db.ShiftEntry{PositionID: tp.PositionID, Quantity: tp.Quantity}
		}

		if _, err := store.InsertShifts(ctx, eventID, entries); err != nil {
			return fmt.Errorf("failed to insert shifts: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	logger.Info("Event created from template",
		zap.String("event_id", eventID),
		zap.String("template_id", templateID),
		zap.String("date", date))

	return eventID, nil
}
