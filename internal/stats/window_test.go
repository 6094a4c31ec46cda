package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		period    string
		wantStart time.Time
	}{
		{PeriodWeek, time.Date(2025, 6, 9, 0, 0, 0, 0, time.Local)},
		{PeriodMonth, time.Date(2025, 5, 17, 0, 0, 0, 0, time.Local)},
		{PeriodYear, time.Date(2024, 6, 16, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			start, end, err := PeriodWindow(tt.period, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, time.Date(2025, 6, 15, 23, 59, 59, 0, time.Local), end)
		})
	}
}

func TestPeriodWindowUnknown(t *testing.T) {
	_, _, err := PeriodWindow("decade", time.Now())
	require.Error(t, err)
}

func TestDayWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 45, 0, time.Local)
	start, end := DayWindow(now)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 6, 15, 23, 59, 59, 0, time.Local), end)
}

func TestRangeWindow(t *testing.T) {
	start, end, err := RangeWindow("2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 1, 31, 23, 59, 59, 0, time.Local), end)
}

func TestRangeWindowSingleDay(t *testing.T) {
	start, end, err := RangeWindow("2025-03-10", "2025-03-10")
	require.NoError(t, err)
	assert.True(t, end.After(start))
}

func TestRangeWindowRejects(t *testing.T) {
	_, _, err := RangeWindow("2025-02-01", "2025-01-01")
	require.Error(t, err, "end before start")

	_, _, err = RangeWindow("01.02.2025", "2025-03-01")
	require.Error(t, err, "bad start format")

	_, _, err = RangeWindow("2025-02-01", "tomorrow")
	require.Error(t, err, "bad end format")
}
