// Package expense defines the canonical expense record produced by the
// extraction engine, plus the summary helpers the export layer consumes.
package expense

// Record is one extracted, categorized, tax-annotated expense.
// Amounts are positive two-decimal values; tax + net reconstructs amount.
// The surrounding application may overwrite category, amount, tax and net
// through its editing workflow; the engine itself never mutates a record
// after assembly.
type Record struct {
	Date        string  `json:"date"` // ISO-8601 calendar date
	PaidBy      string  `json:"paidBy"`
	Description string  `json:"description"`
	GLAccount   string  `json:"glAccount"`
	Amount      float64 `json:"amount"`
	HST         float64 `json:"hst"`
	Net         float64 `json:"net"`
	NeedsReview bool    `json:"needsReview"`
}

// Uncategorized is the sentinel category, always implicitly valid regardless
// of the caller's category set.
const Uncategorized = "Uncategorized"

// DefaultCategories is the category set the original product ships with.
// Callers may supply their own; the first entry is the terminal
// classification fallback.
var DefaultCategories = []string{
	"Personal", "Food", "Gas", "Car Service", "Car Cleaning",
	"Office", "Insurance", "Telephone", "Parking",
	"Professional Development", "Health", "Entertainment", "Admin",
}

// Totals aggregates amount, tax and net over a record sequence.
type Totals struct {
	Amount float64
	HST    float64
	Net    float64
}

// CalculateTotals sums the monetary fields of all records.
func CalculateTotals(records []Record) Totals {
	var t Totals
	for _, r := range records {
		t.Amount += r.Amount
		t.HST += r.HST
		t.Net += r.Net
	}
	return t
}

// ByCategory sums amounts per category. Categories are returned in
// first-appearance order alongside the totals map so the export layer can
// render a stable sequence.
func ByCategory(records []Record) (map[string]float64, []string) {
	totals := make(map[string]float64)
	var order []string
	for _, r := range records {
		if _, seen := totals[r.GLAccount]; !seen {
			order = append(order, r.GLAccount)
		}
		totals[r.GLAccount] += r.Amount
	}
	return totals, order
}

// Mileage holds vehicle usage figures for the export's mileage block.
type Mileage struct {
	TotalKms       float64
	WorkKms        float64
	WorkPercentage float64
}

// NewMileage derives the work percentage from total and work kilometers.
func NewMileage(totalKms, workKms float64) Mileage {
	m := Mileage{TotalKms: totalKms, WorkKms: workKms}
	if totalKms > 0 {
		m.WorkPercentage = workKms / totalKms * 100
	}
	return m
}
