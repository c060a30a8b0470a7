package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StudioBellaCilios/studio-scheduler/internal/domain/booking"
)

func TestClock(t *testing.T) {
	cases := []struct {
		value  float64
		hour   int
		minute int
	}{
		{9, 9, 0},
		{8, 8, 0},
		{14, 14, 0},
		{18.5, 18, 30},
		{10.25, 10, 15},
	}

	for _, tc := range cases {
		hour, minute := booking.Clock(tc.value)
		assert.Equal(t, tc.hour, hour)
		assert.Equal(t, tc.minute, minute)
	}
}

func TestWindowFor(t *testing.T) {
	hours := booking.DefaultHours()

	t.Run("domingo fechado", func(t *testing.T) {
		_, open := hours.WindowFor(time.Sunday)
		assert.False(t, open)
	})

	t.Run("sábado", func(t *testing.T) {
		w, open := hours.WindowFor(time.Saturday)
		require.True(t, open)
		assert.Equal(t, booking.Window{Open: 8, Close: 14}, w)
	})

	t.Run("dias úteis", func(t *testing.T) {
		for _, d := range []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		} {
			w, open := hours.WindowFor(d)
			require.True(t, open)
			assert.Equal(t, booking.Window{Open: 9, Close: 18.5}, w)
		}
	})
}
