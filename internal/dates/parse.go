package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"datecheck-backend/internal/shared/telemetry"
)

// Parser turns matched date substrings into normalized calendar dates.
// Now is injectable for deterministic tests; Sink receives diagnostics and
// may be a no-op without changing results.
type Parser struct {
	Sink telemetry.Sink
	Now  func() time.Time
}

// NewParser constructs a Parser with the given sink. A nil sink is replaced
// with a no-op.
func NewParser(sink telemetry.Sink) *Parser {
	if sink == nil {
		sink = telemetry.NopSink{}
	}
	return &Parser{Sink: sink, Now: time.Now}
}

func (p *Parser) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Parse recognizes a single date substring. Matchers are tried in a fixed
// priority order: ongoing keyword, month-name + year, bare year, numeric
// M/D/YYYY. The first successful matcher wins; nil means no matcher accepted
// the input. Parse never panics to the caller.
func (p *Parser) Parse(text string) (parsed *ParsedDate) {
	defer func() {
		if rec := recover(); rec != nil {
			p.Sink.Emit(telemetry.Event{
				Level:     "error",
				Category:  "dates",
				Operation: "parse",
				Fields:    map[string]any{"text": text},
				Err:       fmt.Errorf("parse panic: %v", rec),
			})
			parsed = nil
		}
	}()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if containsOngoingKeyword(trimmed) {
		return &ParsedDate{
			Original:   text,
			Normalized: p.now(),
			Format:     FormatPresent,
			IsOngoing:  true,
			Confidence: ConfidenceExact,
		}
	}
	if d := p.parseMonthYear(text, trimmed); d != nil {
		return d
	}
	if d := p.parseYearOnly(text, trimmed); d != nil {
		return d
	}
	if d := p.parseFullDate(text, trimmed); d != nil {
		return d
	}
	return nil
}

func (p *Parser) parseMonthYear(original, trimmed string) *ParsedDate {
	m := monthYearRe.FindStringSubmatch(trimmed)
	if m == nil {
		return nil
	}
	month, ok := monthFromToken(m[1])
	if !ok {
		return nil
	}
	year, err := strconv.Atoi(m[2])
	if err != nil || !p.yearInRange(year) {
		return nil
	}
	return &ParsedDate{
		Original:   original,
		Normalized: time.Date(year, month, monthYearDefault, 0, 0, 0, 0, time.UTC),
		Format:     FormatMonthYear,
		Confidence: ConfidenceExact,
	}
}

// parseYearOnly normalizes a bare year to January 1 of that year, a
// deliberate precision loss. Years glued to a slash belong to numeric
// full dates and are left for parseFullDate.
func (p *Parser) parseYearOnly(original, trimmed string) *ParsedDate {
	loc := yearOnlyRe.FindStringSubmatchIndex(trimmed)
	if loc == nil {
		return nil
	}
	if slashAdjacent(trimmed, loc[2], loc[3]) {
		return nil
	}
	year, err := strconv.Atoi(trimmed[loc[2]:loc[3]])
	if err != nil || !p.yearInRange(year) {
		return nil
	}
	return &ParsedDate{
		Original:   original,
		Normalized: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Format:     FormatYearOnly,
		Confidence: ConfidencePattern,
	}
}

func (p *Parser) parseFullDate(original, trimmed string) *ParsedDate {
	m := fullDateRe.FindStringSubmatch(trimmed)
	if m == nil {
		return nil
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, err := strconv.Atoi(m[3])
	if err != nil || !p.yearInRange(year) {
		return nil
	}
	if month < 1 || month > 12 {
		return nil
	}
	if day < 1 || day > daysInMonth(time.Month(month), year) {
		return nil
	}
	return &ParsedDate{
		Original:   original,
		Normalized: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
		Format:     FormatFullDate,
		Confidence: ConfidencePattern,
	}
}

func (p *Parser) yearInRange(year int) bool {
	return year >= MinYear && year <= p.now().Year()+MaxYearsAhead
}

func slashAdjacent(s string, start, end int) bool {
	if start > 0 && s[start-1] == '/' {
		return true
	}
	if end < len(s) && s[end] == '/' {
		return true
	}
	return false
}

func daysInMonth(month time.Month, year int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
