// Package sniffer maps statement CSV columns to the fields the extraction
// pipeline needs. Header names are tried first; when a file carries no
// usable header the columns are inferred positionally from sample rows.
package sniffer

import (
	"regexp"
	"strings"
)

// Columns holds resolved column indices. -1 means the column is absent.
type Columns struct {
	Date        int
	Description int
	Amount      int
	Category    int
}

// Resolved reports whether the minimum viable mapping exists: a
// description and an amount. Date and category are optional.
func (c Columns) Resolved() bool {
	return c.Description >= 0 && c.Amount >= 0
}

var (
	dateHints     = []string{"date", "time", "when"}
	descHints     = []string{"desc", "detail", "merchant", "transaction", "narration", "particulars"}
	amountHints   = []string{"amount", "sum", "total", "value", "debit", "credit"}
	categoryHints = []string{"category", "type", "classification", "group"}
)

// SuggestColumns matches header names against known keyword fragments.
// The first header containing a fragment wins its column; later headers
// never displace an earlier match.
func SuggestColumns(headers []string) Columns {
	cols := Columns{Date: -1, Description: -1, Amount: -1, Category: -1}

	for i, header := range headers {
		h := strings.ToLower(strings.TrimSpace(header))
		if h == "" {
			continue
		}

		if cols.Date == -1 && containsAny(h, dateHints) {
			cols.Date = i
			continue
		}
		if cols.Description == -1 && containsAny(h, descHints) {
			cols.Description = i
			continue
		}
		if cols.Amount == -1 && containsAny(h, amountHints) {
			cols.Amount = i
			continue
		}
		if cols.Category == -1 && containsAny(h, categoryHints) {
			cols.Category = i
		}
	}

	return cols
}

var (
	cellDateRe    = regexp.MustCompile(`^\s*(\d{1,2}[-/.]\d{1,2}(?:[-/.]\d{2,4})?|\d{4}[-/.]\d{1,2}[-/.]\d{1,2})\s*$`)
	cellNumericRe = regexp.MustCompile(`^\s*-?[$€£]?\s*\d[\d,]*(?:\.\d{1,2})?\s*$`)
)

// InferColumns derives a mapping from data rows alone: the first cell that
// looks like a date, the first cell that parses as a bare number, and the
// longest remaining text cell. Votes are tallied across all sample rows so
// one malformed row cannot skew the result.
func InferColumns(rows [][]string) Columns {
	cols := Columns{Date: -1, Description: -1, Amount: -1, Category: -1}
	if len(rows) == 0 {
		return cols
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return cols
	}

	dateVotes := make([]int, width)
	amountVotes := make([]int, width)
	textLen := make([]int, width)

	for _, row := range rows {
		for i, cell := range row {
			switch {
			case cellDateRe.MatchString(cell):
				dateVotes[i]++
			case cellNumericRe.MatchString(cell):
				amountVotes[i]++
			default:
				textLen[i] += len(strings.TrimSpace(cell))
			}
		}
	}

	cols.Date = argmax(dateVotes)
	cols.Amount = argmax(amountVotes)
	if cols.Amount == cols.Date {
		cols.Amount = -1
	}

	best := -1
	for i, total := range textLen {
		if i == cols.Date || i == cols.Amount {
			continue
		}
		if total > 0 && (best == -1 || total > textLen[best]) {
			best = i
		}
	}
	cols.Description = best

	return cols
}

// Resolve tries headers first and falls back to positional inference for
// whatever the headers did not pin down.
func Resolve(headers []string, rows [][]string) Columns {
	cols := SuggestColumns(headers)
	if cols.Resolved() {
		return cols
	}

	inferred := InferColumns(rows)
	if cols.Date == -1 {
		cols.Date = inferred.Date
	}
	if cols.Description == -1 {
		cols.Description = inferred.Description
	}
	if cols.Amount == -1 {
		cols.Amount = inferred.Amount
	}
	if cols.Category == -1 {
		cols.Category = inferred.Category
	}
	return cols
}

func containsAny(h string, hints []string) bool {
	for _, hint := range hints {
		if strings.Contains(h, hint) {
			return true
		}
	}
	return false
}

func argmax(votes []int) int {
	best, bestVotes := -1, 0
	for i, v := range votes {
		if v > bestVotes {
			best, bestVotes = i, v
		}
	}
	return best
}
