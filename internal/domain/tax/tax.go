// Package tax applies jurisdiction-specific sales tax (HST/GST/PST) to
// extracted expense amounts. The rate table is immutable process-wide
// configuration; unknown jurisdictions fall back to the Ontario rate.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/expense-engine/pkg/money"
)

// DefaultRate is applied when the jurisdiction is not in the table (Ontario HST).
var DefaultRate = decimal.NewFromFloat(0.13)

// provinceRates maps Canadian provinces and territories to their combined
// sales tax rate.
var provinceRates = map[string]decimal.Decimal{
	"Alberta":                   decimal.NewFromFloat(0.05),
	"British Columbia":          decimal.NewFromFloat(0.12),
	"Manitoba":                  decimal.NewFromFloat(0.12),
	"New Brunswick":             decimal.NewFromFloat(0.15),
	"Newfoundland and Labrador": decimal.NewFromFloat(0.15),
	"Northwest Territories":     decimal.NewFromFloat(0.05),
	"Nova Scotia":               decimal.NewFromFloat(0.15),
	"Nunavut":                   decimal.NewFromFloat(0.05),
	"Ontario":                   decimal.NewFromFloat(0.13),
	"Prince Edward Island":      decimal.NewFromFloat(0.15),
	"Quebec":                    decimal.NewFromFloat(0.14975),
	"Saskatchewan":              decimal.NewFromFloat(0.11),
	"Yukon":                     decimal.NewFromFloat(0.05),
}

// RateFor returns the tax rate for a jurisdiction, or DefaultRate when the
// jurisdiction is unrecognized. Unrecognized jurisdictions are not an error.
func RateFor(jurisdiction string) decimal.Decimal {
	if rate, ok := provinceRates[jurisdiction]; ok {
		return rate
	}
	return DefaultRate
}

// Jurisdictions returns the known jurisdiction names. The returned slice is
// a copy; the table itself never changes after init.
func Jurisdictions() []string {
	names := make([]string, 0, len(provinceRates))
	for name := range provinceRates {
		names = append(names, name)
	}
	return names
}

// Annotate computes the tax and net-of-tax portions of an amount.
// Both results are rounded to two decimal places, and net is derived from
// the rounded tax so that tax + net always reproduces the amount exactly.
func Annotate(amount decimal.Decimal, jurisdiction string) (taxPart, net decimal.Decimal) {
	taxPart = money.Round2(amount.Mul(RateFor(jurisdiction)))
	net = money.Round2(amount.Sub(taxPart))
	return taxPart, net
}
