package helpers

import (
	"fmt"
	"time"
)

// Accepted clock layouts, each as it would follow "1970-01-01T".
var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"15:04:05.999999999",
	"15:04Z07:00",
	"15:04:05Z07:00",
	"15:04:05.999999999Z07:00",
}

// FormatTime renders a clock time such as "14:30" or "14:30:00Z" as a
// zero-padded 12-hour time ("02:30 PM") in the formatter's location.
// Times without an offset are read in that location too.
func (f *Formatter) FormatTime(clock string) (string, error) {
	for _, layout := range clockLayouts {
		t, err := time.ParseInLocation("2006-01-02T"+layout, "1970-01-01T"+clock, f.loc)
		if err == nil {
			return t.In(f.loc).Format("03:04 PM"), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidClockTime, clock)
}
