package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/fitness-tracker/internal/domain"
)

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		value    string
		expected time.Time
		ok       bool
	}{
		{value: "2024-01-10T08:15:00Z", expected: time.Date(2024, 1, 10, 8, 15, 0, 0, time.UTC), ok: true},
		{value: "2024-01-10T08:15:00.123Z", expected: time.Date(2024, 1, 10, 8, 15, 0, 123000000, time.UTC), ok: true},
		{value: "2024-01-10T10:15:00+02:00", expected: time.Date(2024, 1, 10, 8, 15, 0, 0, time.UTC), ok: true},
		{value: "2024-01-10T08:15:00", expected: time.Date(2024, 1, 10, 8, 15, 0, 0, time.UTC), ok: true},
		{value: "2024-01-10T08:15:00.500000", expected: time.Date(2024, 1, 10, 8, 15, 0, 500000000, time.UTC), ok: true},
		{value: "2024-01-10", expected: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), ok: true},
		{value: "", ok: false},
		{value: "yesterday", ok: false},
		{value: "10/01/2024", ok: false},
	}

	for _, tc := range testCases {
		parsed, ok := ParseTimestamp(tc.value)
		assert.Equal(t, tc.ok, ok, tc.value)
		if tc.ok {
			assert.True(t, tc.expected.Equal(parsed), "%s parsed as %s", tc.value, parsed)
		}
	}
}

func TestNormalize(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	workouts := []domain.Workout{
		{ID: "old", Timestamp: "2024-01-01T09:00:00Z"},
		{ID: "broken", Timestamp: "not-a-date"},
		{ID: "missing"},
		{ID: "mid", Timestamp: "2024-01-05T09:00:00Z"},
	}

	entries := Normalize(workouts, now)
	require.Len(t, entries, 4)

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	// broken and missing both fall back to now and keep their input order.
	assert.Equal(t, []string{"broken", "missing", "mid", "old"}, ids)
	assert.Equal(t, now, entries[0].At)
	assert.Equal(t, "not-a-date", entries[0].Timestamp, "stored timestamp must stay untouched")
	assert.Equal(t, "", entries[1].Timestamp)

	ws := Workouts(entries)
	require.Len(t, ws, 4)
	assert.Equal(t, "broken", ws[0].ID)
	assert.Equal(t, "old", ws[3].ID)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, Normalize(nil, time.Now()))
}
