package helpers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"1/2/24", "01/02/2024", "1/02/2024", "01/2/24"} {
		t.Run(in, func(t *testing.T) {
			got, err := ParseDate(in)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %v", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"1-2-24",
		"1/2",
		"1/2/24/5",
		"a/2/24",
		"1/13/24",
		"30/2/24",
		"0/1/24",
		"1/2/-5",
		"1/2/12345",
		"001/2/24",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDate(in)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestParseDateLeapDay(t *testing.T) {
	got, err := ParseDate("29/2/24")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got.Format(time.DateOnly))

	_, err = ParseDate("29/2/23")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseDateRoundTrip(t *testing.T) {
	for _, year := range []int{2000, 2024, 2099, 1999, 2150} {
		for month := time.January; month <= time.December; month++ {
			days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
			for day := 1; day <= days; day++ {
				in := fmt.Sprintf("%02d/%02d/%04d", day, int(month), year)
				got, err := ParseDate(in)
				require.NoError(t, err, in)
				assert.Equal(t, in, got.Format("02/01/2006"))
			}
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2/1/2024", FormatDate(d))

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	f, err := New(WithLocation(ny))
	require.NoError(t, err)
	// 03:00 UTC is still the previous evening in New York.
	assert.Equal(t, "1/31/2024", f.FormatDate(d.Add(3*time.Hour)))
}

func TestFormatDateStringKeepsCalendarDateWestOfUTC(t *testing.T) {
	for _, zone := range []string{"America/New_York", "Pacific/Honolulu", "Asia/Tokyo", "UTC"} {
		loc, err := time.LoadLocation(zone)
		require.NoError(t, err)
		f, err := New(WithLocation(loc))
		require.NoError(t, err)

		for _, in := range []string{"1/2/24", "01/02/2024", "2024-02-01"} {
			got, err := f.FormatDateString(in)
			require.NoError(t, err)
			assert.Equal(t, "2/1/2024", got, "%s in %s", in, zone)
		}

		got, err := f.FormatDateString("2024-02-01T10:00")
		require.NoError(t, err)
		assert.Equal(t, "2/1/2024", got, zone)
	}
}

func TestFormatDateString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-02-01", "2/1/2024"},
		{"2024-02-01T23:30:00Z", "2/1/2024"},
		{"2024-02-01T23:30:00-05:00", "2/2/2024"},
		{"2024-12-25T08:00", "12/25/2024"},
		{"2024-12-25T08:00:15", "12/25/2024"},
		{"1/2/24", "2/1/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FormatDateString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, in := range []string{"", "yesterday", "31/2/24", "2024-13-01"} {
		_, err := FormatDateString(in)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
	}
}
