package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// slugify derives a template name slug from its display name: lowercase,
// runs of non-alphanumerics collapsed to dashes, plus a random 8-hex
// suffix to keep the unique name constraint satisfiable across templates
// sharing a display name.
func slugify(display string) string {
	base := strings.ToLower(strings.TrimSpace(display))
	base = slugSeparators.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	suffix := uuid.NewString()[:8]
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

// normalizeTimeOfDay pads an HH:MM time of day to HH:MM:SS. The underlying
// time representation requires seconds precision, so this runs on every
// path that accepts a time of day, not only at instantiation.
func normalizeTimeOfDay(value string) string {
	if len(value) == len("15:04") {
		return value + ":00"
	}
	return value
}

// validTimeOfDay reports whether value parses as HH:MM or HH:MM:SS
func validTimeOfDay(value string) bool {
	_, err := time.Parse("15:04:05", normalizeTimeOfDay(value))
	return err == nil
}

// combineDateAndTime merges a calendar date (2006-01-02) with a template's
// time of day into a single instant in loc
func combineDateAndTime(date, timeOfDay string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04:05", date+" "+normalizeTimeOfDay(timeOfDay), loc)
}
