package service

import (
	"math"
	"strings"
)

// amountTolerance absorbs rounding drift between extraction strategies that
// read the same transaction: one cent either way still counts as the same
// expense.
const amountTolerance = 0.01

type dedupeEntry struct {
	date        string
	description string
	amount      float64
}

// deduper suppresses repeated (date, description, amount) triples across a
// whole batch. It is applied incrementally so later documents and later
// strategies cannot re-introduce an expense an earlier one already produced.
type deduper struct {
	seen []dedupeEntry
}

// Admit records the triple and reports whether it was new. Descriptions
// compare case-insensitively, amounts within the tolerance.
func (d *deduper) Admit(date, description string, amount float64) bool {
	description = strings.ToLower(strings.TrimSpace(description))
	for _, e := range d.seen {
		if e.date == date && e.description == description &&
			math.Abs(e.amount-amount) <= amountTolerance {
			return false
		}
	}
	d.seen = append(d.seen, dedupeEntry{date: date, description: description, amount: amount})
	return true
}
