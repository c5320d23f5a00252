package ports

type FormatterPort interface {
	// Clock time like "14:30" rendered as "02:30 PM".
	FormatTime(clock string) (string, error)
	// Accepts ISO dates, RFC 3339 timestamps and day-first D/M/Y.
	FormatDateString(date string) (string, error)
	FormatCurrency(amount float64) string
}
