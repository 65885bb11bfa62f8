// Package normalize turns raw document text into a shape the pattern
// matchers can work with: a flat line stream for statements, and
// separator-aware rows for CSV exports.
package normalize

import (
	"regexp"
	"strings"
)

var (
	datePrefixRe = regexp.MustCompile(`^\s*(\d{1,2}[-/.]\d{1,2}([-/.]\d{2,4})?|\d{4}[-/.]\d{1,2}[-/.]\d{1,2})`)
	amountRe     = regexp.MustCompile(`[$€£]\s*\d|\d+\.\d{2}\b`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// Flatten prepares statement text for line-oriented pattern matching.
// Line endings are normalized and a wrapped transaction line (a line that
// opens with a date but carries no amount) is joined with its continuation
// lines until an amount shows up, so single-line triple matchers still see
// the whole transaction.
func Flatten(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	lines := strings.Split(raw, "\n")
	var out []string

	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}

		// Join continuations while the line opens a transaction but the
		// amount is still missing and the next line does not start one.
		for datePrefixRe.MatchString(line) && !amountRe.MatchString(line) &&
			i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next == "" || datePrefixRe.MatchString(next) {
				break
			}
			line = line + " " + next
			i++
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

// CollapseSpaces normalizes runs of whitespace inside a description to a
// single space and trims the ends.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
}

// TruncateDescription caps a description, appending an ellipsis when cut.
func TruncateDescription(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// DetectSeparator picks the CSV field separator by testing which candidate
// appears in the header line. Comma is the default, a tab beats it, and a
// semicolon beats both.
func DetectSeparator(header string) rune {
	sep := ','
	if strings.ContainsRune(header, '\t') {
		sep = '\t'
	}
	if strings.ContainsRune(header, ';') {
		sep = ';'
	}
	return sep
}

// SplitRows splits CSV text into its non-empty lines.
func SplitRows(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Fields splits one CSV row on the separator and then repairs quoted fields
// that contained the separator, by tracking quote parity across the split
// tokens and recombining them.
func Fields(line string, sep rune) []string {
	values := strings.Split(line, string(sep))

	var result []string
	var combined string
	inQuotes := false

	for _, value := range values {
		value = strings.TrimSpace(value)
		quoteCount := strings.Count(value, `"`)

		switch {
		case !inQuotes && strings.HasPrefix(value, `"`) && quoteCount%2 != 0:
			inQuotes = true
			combined = strings.TrimPrefix(value, `"`)
		case inQuotes && strings.HasSuffix(value, `"`) && !strings.HasSuffix(value, `\"`):
			combined += string(sep) + strings.TrimSuffix(value, `"`)
			result = append(result, combined)
			combined = ""
			inQuotes = false
		case inQuotes:
			combined += string(sep) + value
		default:
			result = append(result, strings.Trim(value, `"`))
		}
	}

	if combined != "" {
		result = append(result, combined)
	}

	return result
}
