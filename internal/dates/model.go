package dates

import "time"

// Format tags how a date string was recognized.
type Format string

const (
	FormatMonthYear Format = "month_year"
	FormatYearOnly  Format = "year_only"
	FormatFullDate  Format = "full_date"
	FormatPresent   Format = "present"
	FormatCurrent   Format = "current"
)

// Confidence constants by match quality.
const (
	ConfidenceExact   = 1.0
	ConfidencePattern = 0.8
	ConfidenceFuzzy   = 0.6
	ConfidenceGuess   = 0.4
	ConfidenceUnknown = 0.2
)

// Parseable year range for resume dates. The upper bound is relative to the
// current year and enforced at parse time.
const (
	MinYear          = 1950
	MaxYearsAhead    = 10
	monthYearDefault = 1 // day-of-month assigned to month-year dates
)

// ParsedDate is a normalized calendar date recovered from a text fragment.
// IsOngoing implies Normalized is "now" and Format is FormatPresent.
type ParsedDate struct {
	Original   string    `json:"original"`
	Normalized time.Time `json:"normalized"`
	Format     Format    `json:"format"`
	IsOngoing  bool      `json:"isOngoing"`
	Confidence float64   `json:"confidence"`
}

// ExtractedDate is a dated span found in free text. Parsed is nil when the
// matched substring did not survive parsing.
type ExtractedDate struct {
	Text       string      `json:"text"`
	StartIndex int         `json:"startIndex"`
	EndIndex   int         `json:"endIndex"`
	Parsed     *ParsedDate `json:"parsedDate"`
	Context    string      `json:"context"`
}
