package helpers

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	msPerMinute int64 = 60 * 1000
	msPerHour   int64 = 60 * msPerMinute
)

// ParseTime converts a duration string such as "2h 30m", "45m" or "3h"
// into milliseconds. A missing hours or minutes component counts as zero.
func ParseTime(duration string) (int64, error) {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, duration)
	}

	var hours, minutes int64
	var seenH, seenM bool
	for _, f := range fields {
		marker := f[len(f)-1]
		n, err := parseUint(f[:len(f)-1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, duration)
		}
		switch {
		case marker == 'h' && !seenH:
			hours, seenH = n, true
		case marker == 'm' && !seenM:
			minutes, seenM = n, true
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, duration)
		}
	}

	if minutes > math.MaxInt64/msPerMinute || hours > (math.MaxInt64-minutes*msPerMinute)/msPerHour {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidDuration, duration)
	}
	return hours*msPerHour + minutes*msPerMinute, nil
}

// SumTimes adds up the given duration strings and returns the total in
// canonical "<H>h <M>m" form.
func SumTimes(durations []string) (string, error) {
	var total int64
	for i, d := range durations {
		ms, err := ParseTime(d)
		if err != nil {
			return "", fmt.Errorf("duration %d: %w", i, err)
		}
		if total > math.MaxInt64-ms {
			return "", fmt.Errorf("duration %d: %w: total overflows", i, ErrInvalidDuration)
		}
		total += ms
	}
	return FormatDuration(total), nil
}

// FormatDuration renders milliseconds as "<H>h <M>m". Hours are unbounded,
// minutes are always in [0,59] and leftover seconds are dropped.
func FormatDuration(ms int64) string {
	hours := ms / msPerHour
	minutes := (ms / msPerMinute) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// parseUint accepts ASCII digits only; signs and spaces are rejected.
func parseUint(s string) (int64, error) {
	if !isDigits(s) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(s, 10, 64)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
