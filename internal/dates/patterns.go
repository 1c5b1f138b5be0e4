package dates

import (
	"regexp"
	"strings"
	"time"
)

// Hard cap on matches accepted per pattern, guarding against pathological
// input blowing up extraction.
const maxMatchesPerPattern = 200

// ongoingKeywords are accepted case-insensitively as "still active" markers.
var ongoingKeywords = []string{
	"present",
	"current",
	"ongoing",
	"now",
	"today",
	"till date",
	"to date",
	"continuing",
}

var monthsByName = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

const monthAlternatives = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

var (
	monthYearRe = regexp.MustCompile(`(?i)\b(` + monthAlternatives + `)\b\.?,?\s*(\d{4})\b`)
	fullDateRe  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	yearOnlyRe  = regexp.MustCompile(`\b(\d{4})\b`)
	presentRe   = regexp.MustCompile(`(?i)\b(present|current|ongoing|till date|to date|continuing)\b`)
	yearRangeRe = regexp.MustCompile(`(?i)\b(\d{4})\s*[-–—]\s*(\d{4}|present|current|ongoing)\b`)
)

// extractPattern is one named matcher in the extractor's fixed precedence
// order. Earlier patterns claim their span; later patterns cannot re-match
// text inside an already-claimed span.
type extractPattern struct {
	name    string
	re      *regexp.Regexp
	isRange bool
}

var extractPatterns = []extractPattern{
	{name: "month_year", re: monthYearRe},
	{name: "full_date", re: fullDateRe},
	{name: "year_only", re: yearOnlyRe},
	{name: "present_indicator", re: presentRe},
	{name: "year_range", re: yearRangeRe, isRange: true},
}

// HasDateToken reports whether the line contains any recognizable date
// token. Used by segmentation to find entry anchor lines.
func HasDateToken(line string) bool {
	return monthYearRe.MatchString(line) ||
		fullDateRe.MatchString(line) ||
		yearOnlyRe.MatchString(line) ||
		presentRe.MatchString(line)
}

// StripDateTokens removes recognizable date tokens from a line, leaving
// the surrounding label text for name extraction.
func StripDateTokens(s string) string {
	out := monthYearRe.ReplaceAllString(s, "")
	out = fullDateRe.ReplaceAllString(out, "")
	out = yearOnlyRe.ReplaceAllString(out, "")
	out = presentRe.ReplaceAllString(out, "")
	return out
}

func containsOngoingKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range ongoingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func monthFromToken(token string) (time.Month, bool) {
	m, ok := monthsByName[strings.ToLower(strings.TrimSpace(token))]
	return m, ok
}
