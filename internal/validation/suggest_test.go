package validation

import (
	"testing"
	"time"

	"datecheck-backend/internal/periods"
	"datecheck-backend/internal/settings"
)

func noTypos() settings.ValidationConfig {
	cfg := settings.Defaults()
	cfg.EnableTypoDetection = false
	return cfg
}

func TestGenerateSuggestions_GraduationFromDegreeDuration(t *testing.T) {
	edu := []periods.EducationPeriod{{
		Institution: "University of Technology",
		Degree:      "Bachelor of Computer Science",
		StartDate:   d(2018, time.September, 1),
		EndDate:     d(2034, time.January, 1),
	}}
	issues := []Issue{{
		Type:        IssueCritical,
		Category:    CategoryEducation,
		kind:        kindEduEndFarFuture,
		periodIndex: 0,
	}}

	got := GenerateSuggestions(issues, edu, nil, noTypos(), testNow)

	if !hasSuggestion(got, "2034-01-01", "2022-09-01") {
		t.Fatalf("expected 4-year bachelor graduation proposal, got %+v", got)
	}
	if !hasSuggestion(got, "2034-01-01", "2021-09-01") {
		t.Fatalf("expected 3-year bachelor graduation proposal, got %+v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Confidence > got[i-1].Confidence {
			t.Fatalf("suggestions not sorted by descending confidence: %+v", got)
		}
	}
}

func TestGenerateSuggestions_MarkAsPresent(t *testing.T) {
	work := []periods.WorkExperience{{
		Company:   "Acme Corp",
		Position:  "Engineer",
		StartDate: d(2023, time.January, 1),
		EndDate:   d(2025, time.August, 15),
	}}
	issues := []Issue{{
		Type:        IssueWarning,
		Category:    CategoryWork,
		kind:        kindWorkEndNearFuture,
		periodIndex: 0,
	}}

	got := GenerateSuggestions(issues, nil, work, noTypos(), testNow)

	if !hasSuggestion(got, "2025-08-15", "Present") {
		t.Fatalf("expected mark-as-Present proposal, got %+v", got)
	}
	if !hasSuggestion(got, "2025-08-15", "2025-06-15") {
		t.Fatalf("expected pull-back-to-now proposal, got %+v", got)
	}
}

func TestGenerateSuggestions_NoPresentWhenTooFarAhead(t *testing.T) {
	work := []periods.WorkExperience{{
		StartDate: d(2023, time.January, 1),
		EndDate:   d(2026, time.June, 15),
	}}
	issues := []Issue{{
		Type:        IssueCritical,
		Category:    CategoryWork,
		kind:        kindWorkEndFarFuture,
		periodIndex: 0,
	}}

	got := GenerateSuggestions(issues, nil, work, noTypos(), testNow)
	if hasSuggestion(got, "2026-06-15", "Present") {
		t.Fatalf("Present must not be proposed 12 months ahead, got %+v", got)
	}
}

func TestGenerateSuggestions_SwappedDates(t *testing.T) {
	edu := []periods.EducationPeriod{{
		Degree:    "Master of Science",
		StartDate: d(2022, time.May, 1),
		EndDate:   d(2020, time.September, 1),
	}}
	issues := []Issue{{
		Type:        IssueCritical,
		Category:    CategoryEducation,
		kind:        kindEduOrder,
		periodIndex: 0,
	}}

	got := GenerateSuggestions(issues, edu, nil, noTypos(), testNow)
	if !hasSuggestion(got, "2022-05-01 - 2020-09-01", "2020-09-01 - 2022-05-01") {
		t.Fatalf("expected swap proposal, got %+v", got)
	}
}

func TestGenerateSuggestions_DedupesAcrossSources(t *testing.T) {
	edu := []periods.EducationPeriod{{
		Degree:    "Bachelor of Arts",
		StartDate: d(2018, time.September, 1),
		EndDate:   d(2034, time.January, 1),
	}}
	issues := []Issue{
		{Type: IssueCritical, Category: CategoryEducation, kind: kindEduEndFarFuture, periodIndex: 0},
		{Type: IssueWarning, Category: CategoryEducation, kind: kindEduEndNearFuture, periodIndex: 0},
	}

	got := GenerateSuggestions(issues, edu, nil, noTypos(), testNow)
	seen := map[string]int{}
	for _, s := range got {
		seen[s.OriginalDate+"|"+s.SuggestedDate]++
	}
	for key, count := range seen {
		if count > 1 {
			t.Fatalf("duplicate suggestion %q appears %d times", key, count)
		}
	}
}
