package helpers

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// TrailingZeros controls whether whole currency amounts keep their fraction.
type TrailingZeros int

const (
	// TrailingZerosStripIfInteger renders 12 as "$12" and 12.5 as "$12.50".
	TrailingZerosStripIfInteger TrailingZeros = iota
	// TrailingZerosAuto always renders the currency's standard scale.
	TrailingZerosAuto
)

// ParseTrailingZeros maps "strip" and "auto" to their modes.
func ParseTrailingZeros(s string) (TrailingZeros, error) {
	switch s {
	case "strip", "stripIfInteger":
		return TrailingZerosStripIfInteger, nil
	case "auto":
		return TrailingZerosAuto, nil
	}
	return 0, fmt.Errorf("unknown trailing zero mode %q", s)
}

// Formatter renders times, dates and amounts for one fixed locale.
// It is immutable and safe for concurrent use.
type Formatter struct {
	lang          language.Tag
	loc           *time.Location
	unit          currency.Unit
	trailingZeros TrailingZeros
}

// Option configures a Formatter built by New.
type Option func(*Formatter) error

// WithLanguage sets the language used for currency symbols and digit
// grouping. Date and clock layouts stay en-US.
func WithLanguage(tag language.Tag) Option {
	return func(f *Formatter) error {
		f.lang = tag
		return nil
	}
}

// WithLocation sets the zone times and dates are displayed in.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) error {
		if loc == nil {
			return errors.New("nil location")
		}
		f.loc = loc
		return nil
	}
}

// WithCurrency sets the unit whose symbol and standard scale are used.
func WithCurrency(unit currency.Unit) Option {
	return func(f *Formatter) error {
		f.unit = unit
		return nil
	}
}

// WithTrailingZeros picks how whole currency amounts are rendered.
func WithTrailingZeros(mode TrailingZeros) Option {
	return func(f *Formatter) error {
		if mode != TrailingZerosStripIfInteger && mode != TrailingZerosAuto {
			return fmt.Errorf("unknown trailing zero mode %d", mode)
		}
		f.trailingZeros = mode
		return nil
	}
}

// New returns a Formatter for en-US, UTC and USD with the given overrides applied.
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		lang:          language.AmericanEnglish,
		loc:           time.UTC,
		unit:          currency.USD,
		trailingZeros: TrailingZerosStripIfInteger,
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

var defaultFormatter, _ = New()

// Default returns the en-US, UTC, USD formatter used by the package-level functions.
func Default() *Formatter { return defaultFormatter }

// Language returns the tag used for currency symbols and grouping.
func (f *Formatter) Language() language.Tag { return f.lang }

// Location returns the zone instants are displayed in.
func (f *Formatter) Location() *time.Location { return f.loc }

// Currency returns the unit FormatCurrency renders.
func (f *Formatter) Currency() currency.Unit { return f.unit }

// FormatTime is Default().FormatTime.
func FormatTime(clock string) (string, error) { return defaultFormatter.FormatTime(clock) }

// FormatDate is Default().FormatDate.
func FormatDate(t time.Time) string { return defaultFormatter.FormatDate(t) }

// FormatDateString is Default().FormatDateString.
func FormatDateString(s string) (string, error) { return defaultFormatter.FormatDateString(s) }

// FormatCurrency is Default().FormatCurrency.
func FormatCurrency(amount float64) string { return defaultFormatter.FormatCurrency(amount) }
