package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"datecheck-backend/internal/periods"
	"datecheck-backend/internal/settings"
)

// degreeDurations maps a degree family to typical program lengths in years,
// most common first. Used to propose realistic graduation dates.
var degreeDurations = map[string][]int{
	"bachelor":    {4, 3, 5},
	"master":      {2, 1, 3},
	"phd":         {5, 4, 6, 7},
	"doctorate":   {5, 4, 6, 7},
	"certificate": {1, 2},
	"diploma":     {1, 2},
}

var defaultDurations = []int{4}

// markPresentWindowMonths bounds how close to now a future work end date
// must be before "mark as Present" becomes a plausible fix (lower bound;
// the upper bound comes from cfg.MaxFutureWorkMonths).
const markPresentWindowMonths = -3.0

// GenerateSuggestions merges typo-detector output with targeted fixes for
// the issues the timeline validators raised. The result is deduplicated by
// (originalDate, suggestedDate), filtered by the confidence threshold and
// sorted by descending confidence.
func GenerateSuggestions(issues []Issue, edu []periods.EducationPeriod, work []periods.WorkExperience, cfg settings.ValidationConfig, now time.Time) []Suggestion {
	var out []Suggestion
	if cfg.EnableTypoDetection {
		out = append(out, DetectTypos(edu, work, cfg, now)...)
	}
	for _, issue := range issues {
		out = append(out, issueSuggestions(issue, edu, work, cfg, now)...)
	}
	out = filterByConfidence(out, cfg.ConfidenceThreshold)
	out = dedupeSuggestions(out)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

func issueSuggestions(issue Issue, edu []periods.EducationPeriod, work []periods.WorkExperience, cfg settings.ValidationConfig, now time.Time) []Suggestion {
	switch issue.kind {
	case kindEduEndFarFuture, kindEduEndNearFuture:
		if issue.periodIndex < len(edu) {
			return graduationSuggestions(edu[issue.periodIndex], now)
		}
	case kindWorkEndFarFuture, kindWorkEndNearFuture:
		if issue.periodIndex < len(work) {
			return workEndSuggestions(work[issue.periodIndex], cfg, now)
		}
	case kindEduOrder:
		if issue.periodIndex < len(edu) {
			p := edu[issue.periodIndex]
			return orderSuggestions(p.StartDate, p.EndDate, typicalDurations(p.Degree))
		}
	case kindWorkOrder:
		if issue.periodIndex < len(work) {
			w := work[issue.periodIndex]
			return orderSuggestions(w.StartDate, w.EndDate, []int{2})
		}
	}
	return nil
}

// graduationSuggestions proposes graduation dates derived from the start
// date plus typical program lengths for the degree.
func graduationSuggestions(p periods.EducationPeriod, now time.Time) []Suggestion {
	if p.StartDate == nil || p.EndDate == nil {
		return nil
	}
	durations := typicalDurations(p.Degree)
	out := make([]Suggestion, 0, len(durations))
	for rank, years := range durations {
		candidate := shiftYears(*p.StartDate, years)
		if candidate.After(now.AddDate(1, 0, 0)) {
			continue
		}
		out = append(out, Suggestion{
			OriginalDate:  formatDate(*p.EndDate),
			SuggestedDate: formatDate(candidate),
			Reason:        fmt.Sprintf("a %d-year program starting %s would end around %s", years, formatYear(*p.StartDate), formatYear(candidate)),
			Confidence:    0.75 - 0.1*float64(rank),
		})
	}
	return out
}

func typicalDurations(degree string) []int {
	lower := strings.ToLower(degree)
	for family, durations := range degreeDurations {
		if strings.Contains(lower, family) {
			return durations
		}
	}
	return defaultDurations
}

// workEndSuggestions proposes fixes for a work end date in the future:
// pull it back to now, and, when the date is near enough that the person
// may simply still hold the job, suggest marking the position as Present.
func workEndSuggestions(w periods.WorkExperience, cfg settings.ValidationConfig, now time.Time) []Suggestion {
	if w.EndDate == nil {
		return nil
	}
	out := []Suggestion{{
		OriginalDate:  formatDate(*w.EndDate),
		SuggestedDate: formatDate(now),
		Reason:        "work end date is in the future, the position may have already ended",
		Confidence:    0.7,
	}}
	monthsAhead := monthsBetween(now, *w.EndDate)
	if monthsAhead >= markPresentWindowMonths && monthsAhead <= float64(cfg.MaxFutureWorkMonths) {
		out = append(out, Suggestion{
			OriginalDate:  formatDate(*w.EndDate),
			SuggestedDate: "Present",
			Reason:        "if this position is still held, mark it as Present instead of a future end date",
			Confidence:    0.75,
		})
	}
	return out
}

// orderSuggestions handles a start date at or after its end date: swap the
// two, and independently propose an end date a typical duration after the
// start.
func orderSuggestions(start, end *time.Time, durations []int) []Suggestion {
	if start == nil || end == nil {
		return nil
	}
	out := []Suggestion{{
		OriginalDate:  fmt.Sprintf("%s - %s", formatDate(*start), formatDate(*end)),
		SuggestedDate: fmt.Sprintf("%s - %s", formatDate(*end), formatDate(*start)),
		Reason:        "start and end dates appear to be swapped",
		Confidence:    0.8,
	}}
	if len(durations) > 0 {
		candidate := shiftYears(*start, durations[0])
		out = append(out, Suggestion{
			OriginalDate:  formatDate(*end),
			SuggestedDate: formatDate(candidate),
			Reason:        fmt.Sprintf("an end date around %s would give this period a typical duration", formatYear(candidate)),
			Confidence:    0.6,
		})
	}
	return out
}
