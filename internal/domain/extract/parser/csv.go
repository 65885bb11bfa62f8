package parser

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/FACorreiaa/expense-engine/internal/domain/extract/normalize"
	"github.com/FACorreiaa/expense-engine/internal/domain/extract/sniffer"
)

// statementRow is the strict schema: exports whose header row already uses
// the canonical column names.
type statementRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
}

// ExtractCSV parses delimited statement text. The strict header schema is
// tried first; anything else falls through to sniffed columns. The flexible
// return value tells the caller the row order is not trustworthy and the
// results should be sorted by date.
func ExtractCSV(text string) (candidates []RawCandidate, flexible bool, err error) {
	rows := normalize.SplitRows(strings.TrimSpace(text))
	if len(rows) < 2 {
		return nil, false, fmt.Errorf("csv: no data rows")
	}
	sep := normalize.DetectSeparator(rows[0])

	if candidates = extractStrictCSV(rows, sep); len(candidates) > 0 {
		return candidates, false, nil
	}

	candidates = extractFlexibleCSV(rows, sep)
	if len(candidates) == 0 {
		return nil, false, fmt.Errorf("csv: no usable columns")
	}
	return candidates, true, nil
}

// extractStrictCSV unmarshals against the canonical schema. Headers are
// lowercased so "Date" and "DATE" still match; renamed columns do not, and
// the flexible path takes over.
func extractStrictCSV(rows []string, sep rune) []RawCandidate {
	lowered := append([]string{strings.ToLower(rows[0])}, rows[1:]...)

	r := csv.NewReader(strings.NewReader(strings.Join(lowered, "\n")))
	r.Comma = sep
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	var parsed []*statementRow
	if err := gocsv.UnmarshalCSV(r, &parsed); err != nil {
		return nil
	}

	var out []RawCandidate
	for _, row := range parsed {
		desc := strings.TrimSpace(row.Description)
		amount := strings.TrimSpace(row.Amount)
		if desc == "" || amount == "" {
			continue
		}
		out = append(out, RawCandidate{
			DateText:     strings.TrimSpace(row.Date),
			Description:  desc,
			AmountText:   amount,
			CategoryText: strings.TrimSpace(row.Category),
		})
	}
	return out
}

// extractFlexibleCSV resolves columns through the sniffer and re-splits each
// row with quote-parity repair.
func extractFlexibleCSV(rows []string, sep rune) []RawCandidate {
	headers := normalize.Fields(rows[0], sep)

	var samples [][]string
	for _, row := range rows[1:] {
		if strings.TrimSpace(row) == "" {
			continue
		}
		samples = append(samples, normalize.Fields(row, sep))
		if len(samples) == 5 {
			break
		}
	}

	cols := sniffer.Resolve(headers, samples)
	if !cols.Resolved() {
		return nil
	}

	var out []RawCandidate
	for _, row := range rows[1:] {
		if strings.TrimSpace(row) == "" {
			continue
		}
		fields := normalize.Fields(row, sep)
		if cols.Description >= len(fields) || cols.Amount >= len(fields) {
			continue
		}

		desc := strings.TrimSpace(fields[cols.Description])
		amount := strings.TrimSpace(fields[cols.Amount])
		if desc == "" || amount == "" {
			continue
		}

		c := RawCandidate{Description: desc, AmountText: amount}
		if cols.Date >= 0 && cols.Date < len(fields) {
			c.DateText = strings.TrimSpace(fields[cols.Date])
		}
		if cols.Category >= 0 && cols.Category < len(fields) {
			c.CategoryText = strings.TrimSpace(fields[cols.Category])
		}
		out = append(out, c)
	}
	return out
}
