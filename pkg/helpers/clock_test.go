package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"14:30", "02:30 PM"},
		{"00:05", "12:05 AM"},
		{"12:00", "12:00 PM"},
		{"09:15:42", "09:15 AM"},
		{"23:59:59.999", "11:59 PM"},
		{"14:30Z", "02:30 PM"},
		{"14:30:00+02:00", "12:30 PM"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FormatTime(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTimeInLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	f, err := New(WithLocation(tokyo))
	require.NoError(t, err)

	got, err := f.FormatTime("14:30")
	require.NoError(t, err)
	assert.Equal(t, "02:30 PM", got)

	got, err = f.FormatTime("00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "09:00 AM", got)
}

func TestFormatTimeInvalid(t *testing.T) {
	for _, in := range []string{"", "2pm", "25:00", "14", "14:61", "noon"} {
		_, err := FormatTime(in)
		assert.ErrorIs(t, err, ErrInvalidClockTime, in)
	}
}
