// Package helpers parses and formats the human-entered values that show up
// in timesheets and expense lists: durations like "2h 30m", day-first dates
// like "1/2/24", clock times, currency amounts and plain sums.
//
// Parsing functions are pure and return wrapped sentinel errors
// (ErrInvalidDuration, ErrInvalidClockTime, ErrInvalidDate) instead of
// sentinel values. Formatting goes through a Formatter, which carries an
// explicit language, display location and currency so output does not
// depend on the host environment. The package-level Format* functions use
// Default().
package helpers
