package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses a day-first "D/M/Y" date into midnight UTC. Day and month
// need not be padded; a year below 100 is read as 20YY.
func ParseDate(date string) (time.Time, error) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 || !isDigits(parts[0]) || !isDigits(parts[1]) || !isDigits(parts[2]) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if year < 100 {
		year += 2000
	}

	iso := fmt.Sprintf("%04d-%s-%s", year, pad2(parts[1]), pad2(parts[0]))
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, date, err)
	}
	return t, nil
}

const shortDateLayout = "1/2/2006"

// FormatDate renders the calendar date of the instant t in the formatter's
// location as M/D/YYYY.
func (f *Formatter) FormatDate(t time.Time) string {
	return t.In(f.loc).Format(shortDateLayout)
}

// FormatDateString parses s and renders it as M/D/YYYY. Accepted inputs are
// RFC 3339 timestamps, YYYY-MM-DDTHH:MM[:SS] (formatter's location),
// YYYY-MM-DD and day-first D/M/Y. Inputs with a time of day are shown in the
// formatter's location; date-only inputs keep their calendar date.
func (f *Formatter) FormatDateString(s string) (string, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return f.FormatDate(t), nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Format(shortDateLayout), nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, s, f.loc); err == nil {
			return f.FormatDate(t), nil
		}
	}
	if strings.Contains(s, "/") {
		t, err := ParseDate(s)
		if err != nil {
			return "", err
		}
		return t.Format(shortDateLayout), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
