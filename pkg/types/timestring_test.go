package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr error
	}{
		{name: "valid morning", input: "09:00", want: TimeString("09:00")},
		{name: "valid evening", input: "21:30", want: TimeString("21:30")},
		{name: "midnight", input: "00:00", want: TimeString("00:00")},
		{name: "missing leading zero", input: "9:00", wantErr: ErrInvalidTimeFormat},
		{name: "non-canonical but parseable", input: "9:30", wantErr: ErrInvalidTimeFormat},
		{name: "out of range hour", input: "25:00", wantErr: ErrInvalidTimeFormat},
		{name: "out of range minute", input: "10:61", wantErr: ErrInvalidTimeFormat},
		{name: "garbage", input: "not-a-time", wantErr: ErrInvalidTimeFormat},
		{name: "empty", input: "", wantErr: ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 2, 10, 15, 4, 59, 0, time.UTC)
	assert.Equal(t, TimeString("15:04"), NewTimeString(moment))
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:30")

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 10*60+30, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		delta   int
		want    TimeString
		wantErr error
	}{
		{name: "add hours", start: "10:00", delta: 120, want: "12:00"},
		{name: "add minutes with carry", start: "10:45", delta: 30, want: "11:15"},
		{name: "end of day boundary", start: "22:00", delta: 120, want: "24:00"},
		{name: "past end of day", start: "22:00", delta: 121, wantErr: ErrTimeOutOfRange},
		{name: "negative result", start: "00:30", delta: -60, wantErr: ErrTimeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.delta)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))

	// "24:00" как граница конца дня позже любого обычного времени
	assert.True(t, TimeString("24:00").IsAfter("23:59"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
