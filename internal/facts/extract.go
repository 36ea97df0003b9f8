package facts

import (
	"bufio"
	"strconv"
	"strings"
)

// Extract derives a Record from normalized plain text. It is a pure function
// of its inputs: deterministic, total, and side-effect free. Fields are
// extracted independently; a miss on one never blocks another, and each miss
// falls back to its documented default.
//
// Overlapping matches across fields are accepted as-is: a prize line that also
// looks like a date range will feed both rules. The extractor optimises for a
// good-enough structured draft, not exactness.
func Extract(text, filename string) Record {
	rec := Record{
		SourceFilename:  filename,
		Title:           orDefault(matchTitle(text), DefaultTitle),
		Markets:         matchMarkets(text),
		Mechanic:        orDefault(matchMechanic(text), DefaultMechanic),
		EntryCapPerWeek: orDefault(matchEntryCap(text), DefaultEntryCap),
		Featured:        orDefault(matchFeatured(text), DefaultFeatured),
		WeeklyWindows:   matchWeeklyWindows(text),
		StartDate:       matchStartDate(text),
		EndDate:         matchEndDate(text),
		Prizes:          matchPrizes(text),
	}
	if len(rec.Markets) == 0 {
		rec.Markets = DefaultMarkets()
	}
	return rec
}

// matchPrizes scans line by line. A line qualifies only when the full
// amount-unit-dash-count shape matches and the count parses as an integer;
// anything less is discarded whole rather than partially accepted.
func matchPrizes(text string) []Prize {
	var prizes []Prize
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		m := prizeLineRe.FindStringSubmatch(scanner.Text())
		if len(m) != 3 {
			continue
		}
		qty, err := strconv.Atoi(m[2])
		if err != nil || qty < 0 {
			continue
		}
		prizes = append(prizes, Prize{Prize: strings.TrimSpace(m[1]), Quantity: qty})
	}
	return prizes
}

func orDefault(matched, fallback string) string {
	if matched != "" {
		return matched
	}
	return fallback
}
