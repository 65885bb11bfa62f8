package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	isoDateRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	yearlessDateRe = regexp.MustCompile(`^(\d{1,2})([-/.])(\d{1,2})$`)
	textualDateRe  = regexp.MustCompile(`([A-Za-z]{3,9})\s+(\d{1,2})\s*,?\s*(\d{4})`)
)

// genericFormats are tried before any ordering heuristics. MM/DD comes ahead
// of DD/MM on purpose: statement formats are ambiguous without a locale hint
// and the historical behavior is to accept whichever ordering parses first.
var genericFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

var sepOrderings = []struct {
	sep     string
	layouts []string
}{
	{"/", []string{"01/02/2006", "02/01/2006", "01/02/06", "02/01/06"}},
	{"-", []string{"01-02-2006", "02-01-2006", "01-02-06", "02-01-06"}},
	{".", []string{"01.02.2006", "02.01.2006", "01.02.06", "02.01.06"}},
}

// FormatDate converts an arbitrary date-like token into an ISO calendar date.
// It never fails: when no interpretation succeeds, or the resolved year is
// implausible, the reference date is returned. Callers inject the reference
// date so extraction stays deterministic in tests.
func FormatDate(token string, now time.Time) string {
	token = strings.TrimSpace(token)

	// Already canonical.
	if isoDateRe.MatchString(token) {
		return token
	}

	for _, layout := range genericFormats {
		if t, err := time.Parse(layout, token); err == nil {
			return plausible(t, now)
		}
	}

	// Two-part numeric tokens ("03/14") carry no year; assume the current one.
	if m := yearlessDateRe.FindStringSubmatch(token); m != nil {
		token = fmt.Sprintf("%s%s%s%s%d", m[1], m[2], m[3], m[2], now.Year())
	}

	// Numeric triples: try month-day-year, then day-month-year, accepting
	// whichever resolves to a valid calendar date.
	for _, so := range sepOrderings {
		if strings.Count(token, so.sep) != 2 {
			continue
		}
		for _, layout := range so.layouts {
			if t, err := time.Parse(layout, token); err == nil {
				return plausible(t, now)
			}
		}
	}

	// Textual month with optional comma ("Mar 14, 2024" handled above;
	// this catches looser spacing like "Mar  14 ,2024").
	if m := textualDateRe.FindStringSubmatch(token); m != nil {
		candidate := fmt.Sprintf("%s %s, %s", m[1][:3], m[2], m[3])
		if t, err := time.Parse("Jan 2, 2006", candidate); err == nil {
			return plausible(t, now)
		}
	}

	return now.Format("2006-01-02")
}

// plausible rejects resolved years outside a sane statement range.
func plausible(t time.Time, now time.Time) string {
	if t.Year() < 1970 || t.Year() > now.Year()+1 {
		return now.Format("2006-01-02")
	}
	return t.Format("2006-01-02")
}
