package helpers

import "errors"

var (
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidClockTime = errors.New("invalid clock time")
	ErrInvalidDate      = errors.New("invalid date")
)
