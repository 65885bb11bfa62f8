package parser

import (
	"regexp"
	"strings"

	"github.com/FACorreiaa/expense-engine/internal/domain/extract/normalize"
)

// RawCandidate is an extraction hypothesis prior to validation. Candidates
// are ephemeral: each one is immediately parsed, classified and either
// accepted as a record or discarded.
type RawCandidate struct {
	DateText     string // empty means "no date locatable, use today"
	Description  string
	AmountText   string
	CategoryText string // raw statement category, only on the CSV path
}

// Strategy attempts one extraction approach against normalized text. A
// strategy returning no candidates simply passes control down the cascade.
type Strategy interface {
	Name() string
	Extract(text string) []RawCandidate
}

const maxDescriptionLen = 50

var (
	// Two adjacent dates (posting date, transaction date): the second is
	// authoritative. Years are deliberately not captured; a yearless
	// transaction date resolves to the current year downstream.
	dualDateRe = regexp.MustCompile(
		`(\d{2}/\d{2})(?:/\d{2})?[^\S\n]+(\d{2}/\d{2})(?:/\d{2})?[^\S\n]+` +
			`([\w &'.,/()#*-]{3,}?)[^\S\n]+\$?[^\S\n]*([\d,]+(?:\.\d{2})?)(?:[^\S\n]|$)`)

	// One full date, a run of description text, an amount.
	labeledDateRe = regexp.MustCompile(
		`(?m)(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}|\d{4}[-/.]\d{1,2}[-/.]\d{1,2})[^\S\n]+` +
			`([\w &'.,/()#*-]{3,}?)[^\S\n]+([$€£]?[^\S\n]*\d[\d,]*(?:\.\d{2})?)(?:[^\S\n]|$)`)

	// Vendor-specific labels ahead of the date ("POSTED", "Transaction date").
	keywordPrefixedRe = regexp.MustCompile(
		`(?im)(?:POSTED(?:[^\S\n]+ON)?|Transaction[^\S\n]+date)[:\s]+` +
			`(\d{1,2}[-/.]\d{1,2}(?:[-/.]\d{2,4})?)[^\S\n]+` +
			`([\w &'.,/()#*-]{3,}?)[^\S\n]+([$€£]?[^\S\n]*\d[\d,]*(?:\.\d{2})?)(?:[^\S\n]|$)`)

	// Currency-symbol-prefixed amount followed by a run of text. No date is
	// locatable on this path.
	aggressiveRe = regexp.MustCompile(
		`[$€£][^\S\n]*(\d+(?:\.\d{2})?)[^\S\n]*([A-Za-z][^$€£\n]{4,})`)
)

type dualDateStrategy struct{}

func (dualDateStrategy) Name() string { return "dual-date" }

func (dualDateStrategy) Extract(text string) []RawCandidate {
	var out []RawCandidate
	for _, m := range dualDateRe.FindAllStringSubmatch(text, -1) {
		out = append(out, RawCandidate{
			DateText:    m[2],
			Description: normalize.CollapseSpaces(m[3]),
			AmountText:  m[4],
		})
	}
	return out
}

type labeledDateStrategy struct{}

func (labeledDateStrategy) Name() string { return "labeled-date" }

func (labeledDateStrategy) Extract(text string) []RawCandidate {
	var out []RawCandidate
	for _, m := range labeledDateRe.FindAllStringSubmatch(text, -1) {
		out = append(out, RawCandidate{
			DateText:    m[1],
			Description: normalize.CollapseSpaces(m[2]),
			AmountText:  m[3],
		})
	}
	return out
}

type keywordPrefixedStrategy struct{}

func (keywordPrefixedStrategy) Name() string { return "keyword-prefixed" }

func (keywordPrefixedStrategy) Extract(text string) []RawCandidate {
	var out []RawCandidate
	for _, m := range keywordPrefixedRe.FindAllStringSubmatch(text, -1) {
		out = append(out, RawCandidate{
			DateText:    m[1],
			Description: normalize.CollapseSpaces(m[2]),
			AmountText:  m[3],
		})
	}
	return out
}

type aggressiveStrategy struct{}

func (aggressiveStrategy) Name() string { return "aggressive" }

func (aggressiveStrategy) Extract(text string) []RawCandidate {
	var out []RawCandidate
	for _, m := range aggressiveRe.FindAllStringSubmatch(text, -1) {
		desc := normalize.TruncateDescription(normalize.CollapseSpaces(m[2]), maxDescriptionLen)
		out = append(out, RawCandidate{
			Description: desc,
			AmountText:  m[1],
		})
	}
	return out
}

var (
	totalLabelRe = regexp.MustCompile(
		`(?i)(?:total|amount|sum|payment|charge|price)(?:\s*:)?\s*([$€£]?\s*\d[\d,]*(?:\.\d{2})?)`)
	receiptDateRe = regexp.MustCompile(
		`(?i)(?:date|issued|receipt)(?:\s*:)?\s*(\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}|\d{4}[-/.]\d{1,2}[-/.]\d{1,2})`)
	receiptItemRe = regexp.MustCompile(
		`(?i)(?:item|product|service|description)(?:\s*:)?\s*([A-Za-z][^\n]*)`)
	boilerplateRe = regexp.MustCompile(`(?i)page|pdf|statement|invoice|receipt`)
)

// extractSingleTotal handles documents that are not transaction-list shaped
// (plain receipts, invoices): it looks for one labeled total plus optional
// labeled date and item text, producing at most one candidate.
func extractSingleTotal(text string) []RawCandidate {
	totalMatch := totalLabelRe.FindStringSubmatch(text)
	if totalMatch == nil {
		return nil
	}

	c := RawCandidate{AmountText: totalMatch[1]}

	if m := receiptDateRe.FindStringSubmatch(text); m != nil {
		c.DateText = m[1]
	}

	if m := receiptItemRe.FindStringSubmatch(text); m != nil {
		c.Description = strings.TrimSpace(m[1])
	} else {
		c.Description = firstContentLine(text)
	}
	if c.Description == "" {
		c.Description = "Unknown purchase"
	}
	c.Description = normalize.TruncateDescription(c.Description, 100)

	return []RawCandidate{c}
}

// firstContentLine returns the first line that is not obvious boilerplate.
func firstContentLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !boilerplateRe.MatchString(trimmed) && !totalLabelRe.MatchString(trimmed) {
			return trimmed
		}
	}
	return ""
}
