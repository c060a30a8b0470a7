package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StudioBellaCilios/studio-scheduler/internal/timezone"
)

func TestParseDate(t *testing.T) {
	d, err := timezone.ParseDate("2025-07-01")
	require.NoError(t, err)

	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.July, d.Month())
	assert.Equal(t, 1, d.Day())

	_, offset := d.Zone()
	assert.Equal(t, -3*60*60, offset)

	_, err = timezone.ParseDate("01/07/2025")
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	dt, err := timezone.ParseDateTime("2025-07-01T10:30")
	require.NoError(t, err)

	assert.Equal(t, 10, dt.Hour())
	assert.Equal(t, 30, dt.Minute())
	assert.Equal(t, "2025-07-01T10:30:00-03:00", dt.Format(time.RFC3339))
}

func TestDayBounds(t *testing.T) {
	d, err := timezone.ParseDate("2025-07-01")
	require.NoError(t, err)

	start, end := timezone.DayBounds(d)

	assert.Equal(t, "2025-07-01T00:00:00-03:00", start.Format(time.RFC3339))
	assert.Equal(t, "2025-07-01T23:59:59-03:00", end.Format(time.RFC3339))
}
