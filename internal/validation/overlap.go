package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"datecheck-backend/internal/periods"
)

// Overlap/gap thresholds. These heuristics are unvalidated against real
// data; they are constants here rather than user-facing config.
const (
	eduOverlapExcuseMonths  = 6.0
	workOverlapExcuseMonths = 3.0
	workGapMonths           = 12.0
)

// flexibleWorkKeywords excuse a work overlap when present in either
// role or company text.
var flexibleWorkKeywords = []string{
	"part-time",
	"part time",
	"freelance",
	"consulting",
	"consultant",
	"contract",
	"intern",
	"volunteer",
	"seasonal",
	"temporary",
	"remote",
}

// certificateKeywords excuse an education overlap: short programs commonly
// run alongside a degree.
var certificateKeywords = []string{
	"certificate",
	"certification",
	"diploma",
}

// industryKeywords tag a role with a broad industry; overlapping roles in
// clearly different industries are excused.
var industryKeywords = map[string][]string{
	"teaching":   {"teacher", "teaching", "tutor", "lecturer", "professor"},
	"consulting": {"consultant", "consulting", "advisor", "advisory"},
	"research":   {"research", "researcher", "scientist"},
	"healthcare": {"nurse", "doctor", "medical", "clinic", "hospital"},
	"creative":   {"designer", "writer", "artist", "photographer"},
}

// overlapMonths computes the overlap between two periods, with ongoing
// periods extended to now. Returns 0 when either start is unknown.
func overlapMonths(startA, endA, startB, endB *time.Time, ongoingA, ongoingB bool, now time.Time) float64 {
	if startA == nil || startB == nil {
		return 0
	}
	ea := endOrNow(endA, ongoingA, now)
	eb := endOrNow(endB, ongoingB, now)
	if ea == nil || eb == nil {
		return 0
	}
	latestStart := *startA
	if startB.After(latestStart) {
		latestStart = *startB
	}
	earliestEnd := *ea
	if eb.Before(earliestEnd) {
		earliestEnd = *eb
	}
	if !latestStart.Before(earliestEnd) {
		return 0
	}
	return monthsBetween(latestStart, earliestEnd)
}

func endOrNow(end *time.Time, ongoing bool, now time.Time) *time.Time {
	if ongoing || end == nil {
		return &now
	}
	return end
}

func educationOverlapIssues(list []periods.EducationPeriod, now time.Time) []Issue {
	var issues []Issue
	for i := 0; i < len(list); i++ {
		for j := i + 1; j < len(list); j++ {
			a, b := list[i], list[j]
			months := overlapMonths(a.StartDate, a.EndDate, b.StartDate, b.EndDate, a.IsOngoing, b.IsOngoing, now)
			if months <= 0 {
				continue
			}
			if educationOverlapExcused(a, b, months) {
				continue
			}
			issues = append(issues, Issue{
				Type:         IssueSuggestion,
				Category:     CategoryEducation,
				Message:      fmt.Sprintf("education periods at %q and %q overlap", a.Institution, b.Institution),
				DetectedDate: overlapLabel(a.StartDate, b.StartDate),
				Confidence:   0.6,
				kind:         kindEduOverlap,
				periodIndex:  i,
			})
		}
	}
	return issues
}

func educationOverlapExcused(a, b periods.EducationPeriod, months float64) bool {
	if months < eduOverlapExcuseMonths {
		return true
	}
	instA := strings.TrimSpace(strings.ToLower(a.Institution))
	instB := strings.TrimSpace(strings.ToLower(b.Institution))
	if instA != "" && instA == instB {
		return true
	}
	return containsAnyKeyword(a.Degree, certificateKeywords) || containsAnyKeyword(b.Degree, certificateKeywords)
}

func workOverlapIssues(list []periods.WorkExperience, now time.Time) []Issue {
	var issues []Issue
	for i := 0; i < len(list); i++ {
		for j := i + 1; j < len(list); j++ {
			a, b := list[i], list[j]
			months := overlapMonths(a.StartDate, a.EndDate, b.StartDate, b.EndDate, a.IsOngoing, b.IsOngoing, now)
			if months <= 0 {
				continue
			}
			if workOverlapExcused(a, b, months) {
				continue
			}
			issues = append(issues, Issue{
				Type:         IssueWarning,
				Category:     CategoryWork,
				Message:      fmt.Sprintf("work periods at %q and %q overlap", a.Company, b.Company),
				DetectedDate: overlapLabel(a.StartDate, b.StartDate),
				Confidence:   0.7,
				kind:         kindWorkOverlap,
				periodIndex:  i,
			})
		}
	}
	return issues
}

func workOverlapExcused(a, b periods.WorkExperience, months float64) bool {
	if months < workOverlapExcuseMonths {
		return true
	}
	if flexibleRole(a) || flexibleRole(b) {
		return true
	}
	return industryTag(a) != industryTag(b)
}

func flexibleRole(w periods.WorkExperience) bool {
	return containsAnyKeyword(w.Position, flexibleWorkKeywords) ||
		containsAnyKeyword(w.Company, flexibleWorkKeywords) ||
		containsAnyKeyword(w.OriginalText, flexibleWorkKeywords)
}

func industryTag(w periods.WorkExperience) string {
	text := strings.ToLower(w.Position + " " + w.Company)
	for tag, kws := range industryKeywords {
		for _, kw := range kws {
			if strings.Contains(text, kw) {
				return tag
			}
		}
	}
	return ""
}

// workGapIssues flags gaps longer than 12 months between consecutive
// non-ongoing periods, in chronological order of start date.
func workGapIssues(list []periods.WorkExperience, now time.Time) []Issue {
	sorted := sortedByStart(list)
	var issues []Issue
	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]
		if prev.IsOngoing || prev.EndDate == nil || next.StartDate == nil {
			continue
		}
		gap := monthsBetween(*prev.EndDate, *next.StartDate)
		if gap > workGapMonths {
			issues = append(issues, Issue{
				Type:         IssueSuggestion,
				Category:     CategoryWork,
				Message:      fmt.Sprintf("employment gap of about %.0f months between %q and %q, consider explaining it", gap, prev.Company, next.Company),
				DetectedDate: fmt.Sprintf("%s - %s", formatDate(*prev.EndDate), formatDate(*next.StartDate)),
				Confidence:   0.5,
				kind:         kindWorkGap,
				periodIndex:  i,
			})
		}
	}
	return issues
}

func sortedByStart(list []periods.WorkExperience) []periods.WorkExperience {
	withStart := make([]periods.WorkExperience, 0, len(list))
	for _, w := range list {
		if w.StartDate != nil {
			withStart = append(withStart, w)
		}
	}
	sort.SliceStable(withStart, func(i, j int) bool {
		return withStart[i].StartDate.Before(*withStart[j].StartDate)
	})
	return withStart
}

func overlapLabel(a, b *time.Time) string {
	switch {
	case a != nil && b != nil:
		return fmt.Sprintf("%s / %s", formatDate(*a), formatDate(*b))
	case a != nil:
		return formatDate(*a)
	case b != nil:
		return formatDate(*b)
	default:
		return ""
	}
}

func containsAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
