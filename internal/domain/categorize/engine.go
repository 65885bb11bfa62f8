// Package categorize maps free-text expense descriptions onto spending
// categories. The deterministic rule engine here is a complete classifier in
// its own right; a network-backed implementation with the same contract can
// be substituted at composition time.
package categorize

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Engine matches the fixed keyword-rule table against descriptions using the
// Aho-Corasick algorithm: every keyword of every group is checked in a single
// pass through the text, independent of table size.
type Engine struct {
	matcher *ahocorasick.Matcher
	// groupOf maps a pattern index to its rule-group index. Lower group
	// index means higher precedence.
	groupOf []int
	groups  []ruleGroup
}

// NewEngine compiles the rule groups into a matcher. Groups keep their
// declaration order: the earliest group with any matching keyword wins.
func NewEngine(groups []ruleGroup) *Engine {
	var patterns [][]byte
	var groupOf []int
	for gi, g := range groups {
		for _, kw := range g.Keywords {
			patterns = append(patterns, []byte(strings.ToLower(kw)))
			groupOf = append(groupOf, gi)
		}
	}

	return &Engine{
		matcher: ahocorasick.NewMatcher(patterns),
		groupOf: groupOf,
		groups:  groups,
	}
}

// Match returns the category of the first rule group containing a keyword
// that occurs in the description. The boolean reports whether any group
// matched at all.
func (e *Engine) Match(description string) (string, bool) {
	hits := e.matcher.Match([]byte(strings.ToLower(description)))
	if len(hits) == 0 {
		return "", false
	}

	best := -1
	for _, idx := range hits {
		if idx < 0 || idx >= len(e.groupOf) {
			continue
		}
		if gi := e.groupOf[idx]; best == -1 || gi < best {
			best = gi
		}
	}
	if best == -1 {
		return "", false
	}
	return e.groups[best].Category, true
}

// defaultEngine is built once; the rule table is immutable.
var defaultEngine = NewEngine(fixedRules)
