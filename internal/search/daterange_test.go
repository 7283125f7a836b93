package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateRange_NamedWindows(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		spec      string
		wantStart time.Time
	}{
		{"today", RANGE_TODAY, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"last week", RANGE_LAST_WEEK, now.AddDate(0, 0, -7)},
		{"last 30 days", RANGE_LAST_30_DAYS, now.AddDate(0, 0, -30)},
		{"last 60 days", RANGE_LAST_60_DAYS, now.AddDate(0, 0, -60)},
		{"last 90 days", RANGE_LAST_90_DAYS, now.AddDate(0, 0, -90)},
		{"year to date", RANGE_YEAR_TO_DATE, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := resolveDateRange(tt.spec, now)
			require.NoError(t, err)
			require.NotNil(t, window)
			assert.Equal(t, tt.wantStart, window.Start)
			assert.Equal(t, now, window.End)
		})
	}
}

func TestResolveDateRange_RollingWindowTracksWallClock(t *testing.T) {
	window, err := resolveDateRange(RANGE_LAST_30_DAYS, time.Now())
	require.NoError(t, err)
	require.NotNil(t, window)

	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), window.Start, 5*time.Second)
	assert.WithinDuration(t, time.Now(), window.End, 5*time.Second)
}

func TestResolveDateRange_ExplicitPair(t *testing.T) {
	window, err := resolveDateRange("2024-01-01,2024-12-31", time.Now())
	require.NoError(t, err)
	require.NotNil(t, window)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), window.Start)

	// The end date itself stays inside the closed interval
	assert.Equal(t, 2024, window.End.Year())
	assert.Equal(t, time.December, window.End.Month())
	assert.Equal(t, 31, window.End.Day())
	assert.True(t, window.End.After(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)))
}

func TestResolveDateRange_Empty(t *testing.T) {
	window, err := resolveDateRange("", time.Now())
	require.NoError(t, err)
	assert.Nil(t, window)
}

func TestResolveDateRange_Invalid(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"unknown named window", "last_eon"},
		{"start after end", "2024-12-31,2024-01-01"},
		{"bad start format", "Jan 1 2024,2024-12-31"},
		{"bad end format", "2024-01-01,tomorrow"},
		{"missing comma treated as named window", "2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveDateRange(tt.spec, time.Now())

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "date_range", vErr.Field)
		})
	}
}
