// Package export renders accepted expense records into the accounting CSV
// layout downstream bookkeeping tools ingest. The layout is a compatibility
// contract: header row, one row per record with a quote-escaped description,
// then Summary, By Category and optional Mileage Information blocks
// separated by blank lines. Do not reorder or reformat fields.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/FACorreiaa/expense-engine/internal/domain/expense"
)

const header = "Date,Paid By,Description,GL Account,Amount,HST,Net,Needs Review"

// transportationCategory is the category the mileage block reports against.
const transportationCategory = "Transportation"

// CSV renders the full export document. A nil mileage drops the mileage
// block and leaves a single trailing newline in its place.
func CSV(records []expense.Record, mileage *expense.Mileage) string {
	totals := expense.CalculateTotals(records)
	byCategory, order := expense.ByCategory(records)

	lines := []string{header}

	for _, r := range records {
		review := "No"
		if r.NeedsReview {
			review = "Yes"
		}
		lines = append(lines, strings.Join([]string{
			r.Date,
			r.PaidBy,
			`"` + strings.ReplaceAll(r.Description, `"`, `""`) + `"`,
			r.GLAccount,
			fixed2(r.Amount),
			fixed2(r.HST),
			fixed2(r.Net),
			review,
		}, ","))
	}

	lines = append(lines,
		"",
		"Summary",
		fmt.Sprintf("Total Expenses,,$%s", fixed2(totals.Amount)),
		"",
		"By Category",
	)
	for _, category := range order {
		lines = append(lines, fmt.Sprintf("%s,,$%s", category, fixed2(byCategory[category])))
	}
	lines = append(lines, "")

	if mileage != nil {
		transport := byCategory[transportationCategory]
		work := transport * mileage.WorkPercentage / 100
		lines = append(lines, strings.Join([]string{
			"Mileage Information",
			fmt.Sprintf("Total Kilometers,,%s", plain(mileage.TotalKms)),
			fmt.Sprintf("Work Kilometers,,%s", plain(mileage.WorkKms)),
			fmt.Sprintf("Work Percentage,,%s%%", fixed2(mileage.WorkPercentage)),
			fmt.Sprintf("Total Transportation Expenses,,$%s", plain(transport)),
			fmt.Sprintf("Work Transportation Expenses,,$%s", fixed2(work)),
		}, "\n"))
	} else {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// fixed2 always shows two decimals, matching the historical export.
func fixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// plain is the shortest decimal form, used where the historical export
// wrote bare numbers.
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
