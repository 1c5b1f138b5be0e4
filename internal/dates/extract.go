package dates

import (
	"fmt"
	"sort"

	"datecheck-backend/internal/shared/telemetry"
)

// contextRadius is how many characters of surrounding text are attached to
// each extracted date.
const contextRadius = 50

// ExtractFromText scans free text with the fixed pattern precedence
// (month-year, full numeric date, year-only, present indicator, year range),
// suppresses matches inside spans already claimed by an earlier pattern,
// deduplicates by (startIndex, text) and returns the spans sorted by
// startIndex. The result is never nil; internal failures yield an empty
// slice.
func (p *Parser) ExtractFromText(text string) (out []ExtractedDate) {
	out = []ExtractedDate{}
	defer func() {
		if rec := recover(); rec != nil {
			p.Sink.Emit(telemetry.Event{
				Level:     "error",
				Category:  "dates",
				Operation: "extract",
				Err:       fmt.Errorf("extract panic: %v", rec),
			})
			out = []ExtractedDate{}
		}
	}()

	var claimed [][2]int
	for _, pat := range extractPatterns {
		locs := pat.re.FindAllStringSubmatchIndex(text, maxMatchesPerPattern)
		for _, loc := range locs {
			start, end := loc[0], loc[1]
			if overlapsClaimed(claimed, start, end) {
				continue
			}
			if pat.name == "year_only" && slashAdjacent(text, start, end) {
				continue
			}
			if pat.isRange {
				out = append(out, p.rangeSides(text, loc)...)
			} else {
				out = append(out, p.spanAt(text, start, end))
			}
			claimed = append(claimed, [2]int{start, end})
		}
	}

	out = dedupeSpans(out)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartIndex < out[j].StartIndex
	})
	return out
}

// rangeSides splits a "YYYY - YYYY|present" match into two independent
// point-in-time entries so downstream code never stores ranges.
func (p *Parser) rangeSides(text string, loc []int) []ExtractedDate {
	sides := make([]ExtractedDate, 0, 2)
	for _, g := range [][2]int{{loc[2], loc[3]}, {loc[4], loc[5]}} {
		if g[0] < 0 || g[1] < 0 {
			continue
		}
		sides = append(sides, p.spanAt(text, g[0], g[1]))
	}
	return sides
}

func (p *Parser) spanAt(text string, start, end int) ExtractedDate {
	raw := text[start:end]
	return ExtractedDate{
		Text:       raw,
		StartIndex: start,
		EndIndex:   end,
		Parsed:     p.Parse(raw),
		Context:    contextAround(text, start, end),
	}
}

func contextAround(text string, start, end int) string {
	from := start - contextRadius
	if from < 0 {
		from = 0
	}
	to := end + contextRadius
	if to > len(text) {
		to = len(text)
	}
	return text[from:to]
}

func overlapsClaimed(claimed [][2]int, start, end int) bool {
	for _, c := range claimed {
		if start < c[1] && c[0] < end {
			return true
		}
	}
	return false
}

func dedupeSpans(spans []ExtractedDate) []ExtractedDate {
	type key struct {
		start int
		text  string
	}
	seen := make(map[key]struct{}, len(spans))
	out := make([]ExtractedDate, 0, len(spans))
	for _, s := range spans {
		k := key{start: s.StartIndex, text: s.Text}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}
