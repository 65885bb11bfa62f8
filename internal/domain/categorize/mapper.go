package categorize

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// statementCategoryMap translates category labels that banks put in their own
// export column onto the product's category names.
var statementCategoryMap = []struct {
	substr   string
	category string
}{
	{"transport", "Gas"},
	{"food", "Food"},
	{"grocery", "Food"},
	{"restaurant", "Food"},
	{"office", "Office"},
	{"supplies", "Office"},
	{"entertain", "Entertainment"},
	{"health", "Health"},
	{"medical", "Health"},
	{"professional", "Professional Development"},
	{"insurance", "Professional Development"},
	{"personal", "Personal"},
}

// MapStatementCategory maps a raw category cell from a statement export onto
// the caller's category set. Fixed substring mappings are tried first, then a
// fuzzy match against the set catches close variants ("Restaurents",
// "entertainmnt"). Anything unresolvable is Uncategorized.
func MapStatementCategory(raw string, categories []string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Uncategorized
	}

	lower := strings.ToLower(raw)
	for _, m := range statementCategoryMap {
		if strings.Contains(lower, m.substr) && inSet(m.category, categories) {
			return m.category
		}
	}

	if ranks := fuzzy.RankFindNormalizedFold(raw, categories); len(ranks) > 0 {
		best := ranks[0]
		for _, r := range ranks[1:] {
			if r.Distance < best.Distance {
				best = r
			}
		}
		return best.Target
	}

	return Uncategorized
}

func inSet(category string, categories []string) bool {
	for _, c := range categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}
