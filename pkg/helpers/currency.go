package helpers

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatCurrency renders amount with the currency symbol and digit grouping
// of the formatter's language: 1234.5 becomes "$1,234.50". Whole amounts drop
// the fraction unless TrailingZerosAuto is set.
func (f *Formatter) FormatCurrency(amount float64) string {
	p := message.NewPrinter(f.lang)

	scale, _ := currency.Standard.Rounding(f.unit)
	if f.trailingZeros == TrailingZerosStripIfInteger && isWhole(amount, scale) {
		scale = 0
	}

	// an amount that rounds to zero prints unsigned
	if math.Round(math.Abs(amount)*math.Pow10(scale)) == 0 {
		amount = 0
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + p.Sprint(currency.Symbol(f.unit)) + p.Sprint(number.Decimal(amount, number.Scale(scale)))
}

// isWhole reports whether amount has no fraction once rounded to scale digits.
func isWhole(amount float64, scale int) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	pow := math.Pow10(scale)
	rounded := math.Round(amount*pow) / pow
	return rounded == math.Trunc(rounded)
}
