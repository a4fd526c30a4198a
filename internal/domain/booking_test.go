package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rkovka/LS-BookingService/pkg/types"
)

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name      string
		aStart    types.TimeString
		aDuration int
		bStart    types.TimeString
		bDuration int
		want      bool
	}{
		{
			name:   "identical intervals",
			aStart: "10:00", aDuration: 2,
			bStart: "10:00", bDuration: 2,
			want: true,
		},
		{
			name:   "second starts inside first",
			aStart: "10:00", aDuration: 2,
			bStart: "11:00", bDuration: 1,
			want: true,
		},
		{
			name:   "first starts inside second",
			aStart: "11:00", aDuration: 1,
			bStart: "10:00", bDuration: 2,
			want: true,
		},
		{
			name:   "second contains first",
			aStart: "11:00", aDuration: 1,
			bStart: "10:00", bDuration: 4,
			want: true,
		},
		{
			name:   "touching endpoints are adjacent, not overlapping",
			aStart: "10:00", aDuration: 2,
			bStart: "12:00", bDuration: 1,
			want: false,
		},
		{
			name:   "touching endpoints reversed",
			aStart: "12:00", aDuration: 1,
			bStart: "10:00", bDuration: 2,
			want: false,
		},
		{
			name:   "fully disjoint",
			aStart: "09:00", aDuration: 1,
			bStart: "15:00", bDuration: 2,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IntervalsOverlap(tt.aStart, tt.aDuration, tt.bStart, tt.bDuration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично
			reversed, err := IntervalsOverlap(tt.bStart, tt.bDuration, tt.aStart, tt.aDuration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, reversed)
		})
	}
}

func TestIntervalsOverlap_PastEndOfDay(t *testing.T) {
	_, err := IntervalsOverlap("23:00", 2, "10:00", 1)
	require.ErrorIs(t, err, types.ErrTimeOutOfRange)
}

func TestBooking_EndTime(t *testing.T) {
	b := Booking{StartTime: "15:00", DurationHours: 3}

	end, err := b.EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:00"), end)
}

func TestBooking_SameDate(t *testing.T) {
	date := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	b := Booking{Date: date}

	assert.True(t, b.SameDate(time.Date(2025, 2, 10, 18, 30, 0, 0, time.UTC)))
	assert.False(t, b.SameDate(time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC)))
}
