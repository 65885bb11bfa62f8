package categorize

import (
	"context"
	"strings"
)

// Result is the outcome of classifying one description.
type Result struct {
	Category string
	// Unsure marks low-confidence fallback classifications that should be
	// surfaced as needing human review.
	Unsure bool
}

// Classifier assigns a category from the caller's set to a description.
// Implementations must be safe for concurrent use. The rule-based and the
// Gemini-backed classifiers both satisfy this; callers must not assume which
// one is wired in.
type Classifier interface {
	Classify(ctx context.Context, description, occupation string, categories []string) (Result, error)
}

// Uncategorized mirrors the sentinel used by the expense model; kept local
// so this package stays dependency-free within the module.
const Uncategorized = "Uncategorized"

// RuleClassifier is the deterministic, offline classifier. Same inputs always
// produce the same output; it performs no I/O and never returns an error.
type RuleClassifier struct {
	engine *Engine
}

// NewRuleClassifier returns a classifier over the fixed keyword-rule table.
func NewRuleClassifier() *RuleClassifier {
	return &RuleClassifier{engine: defaultEngine}
}

// Classify resolves a category in three steps: the fixed keyword groups, a
// literal substring scan of the caller's category set, then the first entry
// of the set. Only the first step is considered confident.
//
// occupation is accepted for contract compatibility with context-sensitive
// backends; it does not alter rule outcomes today.
func (c *RuleClassifier) Classify(_ context.Context, description, _ string, categories []string) (Result, error) {
	if category, ok := c.engine.Match(description); ok {
		return Result{Category: category}, nil
	}

	lower := strings.ToLower(description)
	for _, category := range categories {
		if category != "" && strings.Contains(lower, strings.ToLower(category)) {
			return Result{Category: category, Unsure: true}, nil
		}
	}

	if len(categories) > 0 {
		return Result{Category: categories[0], Unsure: true}, nil
	}
	return Result{Category: Uncategorized, Unsure: true}, nil
}
