package export

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	currencySymbol = "$"
	zeroCurrency   = "$0.00"
	longDateLayout = "January 2, 2006"
)

// FormatCurrency renders an amount as US dollars with thousands separators
// and two decimals, rounding half to even. Anything that does not render as
// a plain fixed-point number falls back to "$0.00".
func FormatCurrency(amount decimal.Decimal) string {
	raw := amount.StringFixedBank(2)

	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	intPart, fracPart, ok := strings.Cut(raw, ".")
	if !ok || len(fracPart) != 2 || intPart == "" || !isDigits(intPart) || !isDigits(fracPart) {
		return zeroCurrency
	}

	result := currencySymbol + groupThousands(intPart) + "." + fracPart
	if negative && strings.Trim(intPart+fracPart, "0") != "" {
		result = "-" + result
	}
	return result
}

// FormatCurrencyFloat is FormatCurrency for float inputs; NaN and infinities
// render as "$0.00".
func FormatCurrencyFloat(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return zeroCurrency
	}
	return FormatCurrency(decimal.NewFromFloat(amount))
}

// FormatPercent prints one decimal, rounding half to even like the currency
// amounts.
func FormatPercent(percentage decimal.Decimal) string {
	return percentage.StringFixedBank(1)
}

func FormatLongDate(t time.Time) string {
	return t.Format(longDateLayout)
}

// FormatHours prints whole hours with one decimal ("4.0") and fractional
// hours in their shortest form ("2.25").
func FormatHours(hours float64) string {
	if hours == math.Trunc(hours) {
		return strconv.FormatFloat(hours, 'f', 1, 64)
	}
	return strconv.FormatFloat(hours, 'f', -1, 64)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
