package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		display string
		prefix  string
	}{
		{"Weekly Clinic", "weekly-clinic-"},
		{"  Soup   Kitchen  ", "soup-kitchen-"},
		{"Drop-In (Evening)", "drop-in-evening-"},
		{"CLINIC", "clinic-"},
		{"éé!!", ""},
	}
	for _, tt := range tests {
		got := slugify(tt.display)
		assert.Regexp(t, "^"+tt.prefix+"[0-9a-f]{8}$", got, "display %q", tt.display)
	}
}

func TestNormalizeTimeOfDay(t *testing.T) {
	assert.Equal(t, "09:00:00", normalizeTimeOfDay("09:00"))
	assert.Equal(t, "09:00:30", normalizeTimeOfDay("09:00:30"))
	assert.Equal(t, "not-a-time", normalizeTimeOfDay("not-a-time"))
}

func TestValidTimeOfDay(t *testing.T) {
	for _, valid := range []string{"00:00", "09:30", "23:59", "09:30:15"} {
		assert.True(t, validTimeOfDay(valid), "%q", valid)
	}
	for _, invalid := range []string{"24:00", "9:30", "09:60", "morning", ""} {
		assert.False(t, validTimeOfDay(invalid), "%q", invalid)
	}
}

func TestCombineDateAndTime(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	got, err := combineDateAndTime("2026-03-14", "09:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, loc), got)

	got, err = combineDateAndTime("2026-03-14", "17:00:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 17, 0, 30, 0, loc), got)

	_, err = combineDateAndTime("14/03/2026", "09:30", loc)
	assert.Error(t, err)
}
