package facts

// Record is the structured summary of a promotional brief. It is the sole
// contract between extraction and the content templater: every field is
// populated on return, either from a matched pattern or from its documented
// default, so downstream consumers never see a missing value.
type Record struct {
	// SourceFilename echoes the uploaded filename for traceability.
	SourceFilename string

	Title string

	// Markets holds 2-3 letter market codes, de-duplicated and sorted
	// ascending. Never empty; falls back to the default set.
	Markets []string

	// Mechanic is the qualifying action a participant must perform to earn
	// a ticket, as a full sentence.
	Mechanic string

	// EntryCapPerWeek keeps the matched digits as a string. The unit
	// ("tickets per week") is supplied by the templates, not stored here.
	EntryCapPerWeek string

	// Featured is a coarse game-category label derived from brand keywords.
	Featured string

	// WeeklyWindows keeps date-range strings in order of appearance,
	// truncated to MaxWeeklyWindows entries.
	WeeklyWindows []string

	// StartDate and EndDate are loosely matched display strings. No
	// calendar validation is performed; empty when absent.
	StartDate string
	EndDate   string

	Prizes []Prize
}

// Prize is one prize tier parsed from a brief line such as "$1,000 Cash - 5".
type Prize struct {
	Prize    string
	Quantity int
}

// Field defaults applied when a pattern does not match.
const (
	DefaultTitle    = "Prize Draw"
	DefaultMechanic = "Complete the weekly Casino challenge to receive 1 Prize Draw ticket."
	DefaultEntryCap = "100"
	DefaultFeatured = "Casino games"
)

// MaxWeeklyWindows caps how many date-range strings a record carries.
const MaxWeeklyWindows = 8

// DefaultMarkets returns a fresh copy of the fallback market set.
func DefaultMarkets() []string {
	return []string{"COM", "EU", "UK"}
}

// Defaults returns the record produced for an input with no recognisable
// signals. Useful as a reference point in tests and for operators checking
// whether anything was actually extracted.
func Defaults(filename string) Record {
	return Record{
		SourceFilename:  filename,
		Title:           DefaultTitle,
		Markets:         DefaultMarkets(),
		Mechanic:        DefaultMechanic,
		EntryCapPerWeek: DefaultEntryCap,
		Featured:        DefaultFeatured,
	}
}
