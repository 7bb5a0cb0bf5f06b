package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarDateComparisons(t *testing.T) {
	earlier := NewCalendarDate(2026, time.September, 1)
	later := NewCalendarDate(2026, time.September, 2)

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.Equal(later))

	// Time-of-day never influences comparisons
	withClock := CalendarDate{Time: time.Date(2026, time.September, 1, 23, 59, 0, 0, time.UTC)}
	assert.True(t, withClock.Equal(earlier))
	assert.False(t, withClock.Before(earlier))
}

func TestCalendarDateJSON(t *testing.T) {
	t.Run("marshals as bare date", func(t *testing.T) {
		d := NewCalendarDate(2026, time.September, 15)
		raw, err := json.Marshal(d)

		require.NoError(t, err)
		assert.Equal(t, `"2026-09-15"`, string(raw))
	})

	t.Run("marshals through struct embedding", func(t *testing.T) {
		p := Position{ShiftDate: NewCalendarDate(2026, time.September, 15)}
		raw, err := json.Marshal(p)

		require.NoError(t, err)
		assert.Contains(t, string(raw), `"shift_date":"2026-09-15"`)
	})

	t.Run("round trips", func(t *testing.T) {
		var d CalendarDate
		require.NoError(t, json.Unmarshal([]byte(`"2026-01-31"`), &d))
		assert.Equal(t, "2026-01-31", d.String())
	})

	t.Run("rejects non-date strings", func(t *testing.T) {
		var d CalendarDate
		assert.Error(t, json.Unmarshal([]byte(`"tomorrow"`), &d))
	})
}

func TestCalendarDateScan(t *testing.T) {
	t.Run("scans time.Time", func(t *testing.T) {
		var d CalendarDate
		require.NoError(t, d.Scan(time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, "2026-03-03", d.String())
	})

	t.Run("scans byte slice", func(t *testing.T) {
		var d CalendarDate
		require.NoError(t, d.Scan([]byte("2026-03-04")))
		assert.Equal(t, "2026-03-04", d.String())
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		var d CalendarDate
		assert.Error(t, d.Scan(42))
	})
}
