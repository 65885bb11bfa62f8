// Package money provides precise decimal parsing and rounding for expense
// amounts. Statement exports carry amounts in wildly inconsistent shapes
// ("$1,234.56", "-45.00", "CAD 12.00"); everything funnels through here
// before any arithmetic happens.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotANumber is returned when a token has no parseable numeric content.
var ErrNotANumber = errors.New("token is not a number")

// ParseAmount extracts a decimal amount from a currency-like token.
// Every character except digits, the decimal point and a leading minus sign
// is stripped before parsing. The sign is not meaningful for expenses, so
// the result is always the absolute value. Zero and unparseable tokens are
// rejected with ErrNotANumber.
func ParseAmount(token string) (decimal.Decimal, error) {
	cleaned := clean(token)
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return decimal.Zero, ErrNotANumber
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	if d.IsZero() {
		return decimal.Zero, ErrNotANumber
	}

	return d.Abs(), nil
}

// Round2 rounds to two decimal places, half away from zero. All persisted
// monetary fields (amount, tax, net) go through this.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Float converts a decimal to a float64 after rounding to two places.
// Records are plain JSON-serializable data, so the boundary carries floats.
func Float(d decimal.Decimal) float64 {
	f, _ := Round2(d).Float64()
	return f
}

// clean keeps digits, at most a leading minus, and decimal points.
func clean(token string) string {
	var b strings.Builder
	first := true
	for _, r := range token {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
			first = false
		case r == '-' && first && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	s := b.String()

	// Multiple decimal points happen when a thousands separator survives
	// ("1.234.56"). Keep only the last one as the decimal separator.
	if strings.Count(s, ".") > 1 {
		last := strings.LastIndex(s, ".")
		s = strings.ReplaceAll(s[:last], ".", "") + s[last:]
	}
	return s
}
