// Package parser extracts raw (date, description, amount) candidates from
// normalized statement text. It is a cascade of regex strategies evaluated
// in priority order: the first strategy producing candidates wins, and one
// designated aggressive fallback only runs when everything else came up
// empty.
package parser

import "regexp"

var (
	statementKeywordsRe = regexp.MustCompile(`(?i)credit card|statement|transaction|payment due|balance|purchase`)
	// Dotted dates only count with all three components so that decimal
	// amounts ("42.00") do not read as dates.
	anyDateTokenRe = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}(?:[-/]\d{2,4})?|\d{4}[-/]\d{1,2}[-/]\d{1,2}|\d{1,2}\.\d{1,2}\.\d{2,4}`)
)

// IsStatementShaped reports whether the text looks like a transaction list.
// Documents with neither transaction keywords nor any date-like token take
// the single-total receipt path instead.
func IsStatementShaped(text string) bool {
	return statementKeywordsRe.MatchString(text) || anyDateTokenRe.MatchString(text)
}

// Cascade is the ordered strategy chain for transaction-list documents.
type Cascade struct {
	strategies []Strategy
	fallback   Strategy
}

// NewCascade builds the default chain. Dual-date runs ahead of the generic
// labeled-date matcher because a posting/transaction date pair would
// otherwise be half-swallowed into the description.
func NewCascade() *Cascade {
	return &Cascade{
		strategies: []Strategy{
			dualDateStrategy{},
			labeledDateStrategy{},
			keywordPrefixedStrategy{},
		},
		fallback: aggressiveStrategy{},
	}
}

// Extract runs the cascade and returns the winning strategy's candidates
// together with its name. The fallback only fires when every structured
// strategy produced nothing; its candidates carry no date.
func (c *Cascade) Extract(text string) ([]RawCandidate, string) {
	for _, s := range c.strategies {
		if candidates := s.Extract(text); len(candidates) > 0 {
			return candidates, s.Name()
		}
	}
	if candidates := c.fallback.Extract(text); len(candidates) > 0 {
		return candidates, c.fallback.Name()
	}
	return nil, ""
}

// ExtractReceipt is the non-statement path: at most one candidate from a
// labeled total.
func ExtractReceipt(text string) []RawCandidate {
	return extractSingleTotal(text)
}
