package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/shiftline/shiftline/pkg/db"
)

// maxSeriesOccurrences caps how many events one series request may create
const maxSeriesOccurrences = 52

// SeriesResult reports the events created for a recurring series. On a
// partial failure, EventIDs holds the events created before the failing
// date and the returned error names that date.
type SeriesResult struct {
	EventIDs []string
	Dates    []time.Time
}

// CreateEventSeries expands a recurrence rule within [from, until] and
// instantiates the template once per occurrence date, in date order. Each
// instantiation is its own transaction: a mid-series failure keeps the
// events already created and reports where expansion stopped.
func CreateEventSeries(ctx context.Context, store db.TemplateStore, logger *zap.Logger, templateID, rule string, from, until time.Time, createdBy *string, loc *time.Location) (*SeriesResult, error) {
	if err := requireUUID("template id", templateID); err != nil {
		return nil, err
	}

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("recurrence rule %q: %w: %v", rule, ErrValidation, err)
	}

	if until.Before(from) {
		return nil, validationErr("series window", "must end on or after its start")
	}

	occurrences := r.Between(from, until, true)
	if len(occurrences) == 0 {
		logger.Info("Recurrence rule yields no occurrences in window",
			zap.String("template_id", templateID),
			zap.String("rule", rule))
		return &SeriesResult{}, nil
	}
	if len(occurrences) > maxSeriesOccurrences {
		return nil, validationErr("series window",
			fmt.Sprintf("expands to %d occurrences, maximum is %d", len(occurrences), maxSeriesOccurrences))
	}

	logger.Debug("Expanding event series",
		zap.String("template_id", templateID),
		zap.String("rule", rule),
		zap.Int("occurrences", len(occurrences)))

	result := &SeriesResult{
		EventIDs: make([]string, 0, len(occurrences)),
		Dates:    make([]time.Time, 0, len(occurrences)),
	}

	for _, occurrence := range occurrences {
		date := occurrence.In(loc).Format("2006-01-02")
		eventID, err := CreateEventFromTemplate(ctx, store, logger, templateID, date, createdBy, loc)
		if err != nil {
			return result, fmt.Errorf("failed to create event for %s: %w", date, err)
		}
		result.EventIDs = append(result.EventIDs, eventID)
		result.Dates = append(result.Dates, occurrence)
	}

	logger.Info("Event series created",
		zap.String("template_id", templateID),
		zap.Int("events", len(result.EventIDs)))

	return result, nil
}
