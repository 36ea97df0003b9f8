package facts

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Each extraction rule below is a named pattern plus a small helper returning
// the matched value or the empty string. Extract composes them and applies
// defaults, so the never-raises contract is structural: a rule can only match
// or miss, and a miss never blocks another field.

const monthNames = `(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`

var (
	// Title, in priority order: an explicit label line, a promotion-name
	// line, then a brand or currency-amount phrase ending in "Prize Draw".
	titleLabelRe  = regexp.MustCompile(`(?i)(?:Subject|Headline|Title)\s*[:\-]\s*(.+)`)
	promoNameRe   = regexp.MustCompile(`(?i)Promotion\s*Name\s*[:\-]\s*(.+)`)
	titlePhraseRe = regexp.MustCompile(`(?i)\b(Pragmatic .*?Prize Draw|Evolution .*?Prize Draw|Games Global .*?Prize Draw|[\$€£]?\d+\s?K .*?Prize Draw)\b`)

	// Markets appear as domain suffixes like poker.COM or site.uk.
	marketRe = regexp.MustCompile(`(?i)\.(COM|EU|UK|ES|PT)\b`)

	// Mechanic shape (a): "Stake $5 on Live Casino to get 1 entry".
	stakeRe = regexp.MustCompile(`(?i)(?:Stake|Wager|Bet)\s+([€$£]?\d+)\s+.*?(?:on|in)\s+(.+?)\s+(?:to|get|for)\s+.*?(?:ticket|entry)`)
	// Mechanic shape (b): an "Earn 1 RP ..." sentence captured verbatim.
	earnRPRe = regexp.MustCompile(`(?i)Earn\s+1\s+RP.*?(?:ticket|entry)`)
	// Characters stripped from the captured game category.
	categoryNoiseRe = regexp.MustCompile(`[^A-Za-z0-9 &/+\-]`)

	capRe = regexp.MustCompile(`(?i)(?:Max(?:imum)?\s*)?(\d{1,4})\s+tickets?\s+per\s+week`)

	pragmaticRe   = regexp.MustCompile(`(?i)Pragmatic`)
	evolutionRe   = regexp.MustCompile(`(?i)Evolution`)
	gamesGlobalRe = regexp.MustCompile(`(?i)Games\s*Global`)

	// A weekly window starts at a month-name-plus-day anchor and runs to the
	// next such anchor or end of text.
	weeklyWindowRe = regexp.MustCompile(`(?is)` + monthNames + `\s+\d{1,2}.*?(?:` + monthNames + `\s+\d{1,2}|$)`)

	// Dates are display strings: 1-2 digit day, alphabetic month, 2-4 digit
	// year. Matched on the same line as the label.
	startDateRe = regexp.MustCompile(`(?i)Start\s*Date.*?(\d{1,2}\s*[A-Za-z]{3,9}\s*\d{2,4})`)
	endDateRe   = regexp.MustCompile(`(?i)End\s*Date.*?(\d{1,2}\s*[A-Za-z]{3,9}\s*\d{2,4})`)

	// A prize line pairs a currency-amount-and-unit phrase with a dash and a
	// count, e.g. "$1,000 Cash - 5" or "€50 Free Spins – 20".
	prizeLineRe = regexp.MustCompile(`(?i)([€$£]?\d[\d,]*\s*(?:Cash|Bonus|Free\s*Spins))\s*[-–]\s*(\d+)`)
)

func matchTitle(text string) string {
	if m := titleLabelRe.FindStringSubmatch(text); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	if m := promoNameRe.FindStringSubmatch(text); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	if m := titlePhraseRe.FindStringSubmatch(text); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// matchMarkets returns the de-duplicated, ascending market codes found in
// text, or nil when none matched.
func matchMarkets(text string) []string {
	seen := make(map[string]struct{})
	for _, m := range marketRe.FindAllStringSubmatch(text, -1) {
		seen[strings.ToUpper(m[1])] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func matchMechanic(text string) string {
	if m := stakeRe.FindStringSubmatch(text); len(m) == 3 {
		amount := m[1]
		category := strings.TrimSpace(categoryNoiseRe.ReplaceAllString(m[2], ""))
		return fmt.Sprintf("Stake %s on %s to receive 1 Prize Draw ticket.", amount, category)
	}
	return earnRPRe.FindString(text)
}

func matchEntryCap(text string) string {
	if m := capRe.FindStringSubmatch(text); len(m) == 2 {
		return m[1]
	}
	return ""
}

// matchFeatured is a coarse three-brand classifier, not an entity extractor.
// Priority order decides when a brief mentions several brands.
func matchFeatured(text string) string {
	switch {
	case pragmaticRe.MatchString(text):
		return "Pragmatic Play Slots"
	case evolutionRe.MatchString(text):
		return "Evolution live games"
	case gamesGlobalRe.MatchString(text):
		return "Games Global games"
	}
	return ""
}

func matchWeeklyWindows(text string) []string {
	found := weeklyWindowRe.FindAllString(text, -1)
	if len(found) > MaxWeeklyWindows {
		found = found[:MaxWeeklyWindows]
	}
	windows := make([]string, 0, len(found))
	for _, w := range found {
		windows = append(windows, strings.TrimSpace(w))
	}
	if len(windows) == 0 {
		return nil
	}
	return windows
}

func matchStartDate(text string) string {
	if m := startDateRe.FindStringSubmatch(text); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func matchEndDate(text string) string {
	if m := endDateRe.FindStringSubmatch(text); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	return ""
}
