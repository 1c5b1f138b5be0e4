package validation

import (
	"fmt"
	"strings"
	"time"

	"datecheck-backend/internal/periods"
	"datecheck-backend/internal/settings"
)

// Per-period education rule thresholds.
const (
	eduStartFutureMonths  = 3.0
	eduLongDurationYears  = 10.0
	eduShortDurationYears = 0.5
	eduStaleOngoingYears  = 8.0
	eduNearFutureYears    = 2.0
)

// ValidateEducationTimeline applies the per-period and pairwise education
// rules. Pure function: no state, no I/O.
func ValidateEducationTimeline(list []periods.EducationPeriod, cfg settings.ValidationConfig, now time.Time) []Issue {
	issues := []Issue{}
	for i, p := range list {
		issues = append(issues, educationPeriodIssues(i, p, cfg, now)...)
	}
	issues = append(issues, educationOverlapIssues(list, now)...)
	return issues
}

func educationPeriodIssues(index int, p periods.EducationPeriod, cfg settings.ValidationConfig, now time.Time) []Issue {
	var issues []Issue
	maxAhead := float64(cfg.MaxFutureEducationYears)

	if p.EndDate != nil && !p.IsOngoing {
		yearsAhead := yearsBetween(now, *p.EndDate)
		if yearsAhead > maxAhead {
			issues = append(issues, Issue{
				Type:         IssueCritical,
				Category:     CategoryEducation,
				Message:      fmt.Sprintf("education end date is more than %d years in the future", cfg.MaxFutureEducationYears),
				DetectedDate: formatDate(*p.EndDate),
				SuggestedFix: formatDate(shiftYears(*p.EndDate, -10)),
				Confidence:   0.9,
				kind:         kindEduEndFarFuture,
				periodIndex:  index,
			})
		} else if yearsAhead >= eduNearFutureYears {
			issues = append(issues, Issue{
				Type:         IssueWarning,
				Category:     CategoryEducation,
				Message:      "education end date is unusually far in the future",
				DetectedDate: formatDate(*p.EndDate),
				Confidence:   0.7,
				kind:         kindEduEndNearFuture,
				periodIndex:  index,
			})
		}
	}

	if p.StartDate != nil && monthsBetween(now, *p.StartDate) > eduStartFutureMonths {
		issues = append(issues, Issue{
			Type:         IssueCritical,
			Category:     CategoryEducation,
			Message:      "education start date is more than 3 months in the future",
			DetectedDate: formatDate(*p.StartDate),
			Confidence:   0.85,
			kind:         kindEduStartFuture,
			periodIndex:  index,
		})
	}

	if p.StartDate != nil && p.EndDate != nil && !p.IsOngoing {
		if !p.StartDate.Before(*p.EndDate) {
			issues = append(issues, Issue{
				Type:         IssueCritical,
				Category:     CategoryEducation,
				Message:      "education start date is not before its end date, check date order",
				DetectedDate: fmt.Sprintf("%s - %s", formatDate(*p.StartDate), formatDate(*p.EndDate)),
				SuggestedFix: fmt.Sprintf("%s - %s", formatDate(*p.EndDate), formatDate(*p.StartDate)),
				Confidence:   0.95,
				kind:         kindEduOrder,
				periodIndex:  index,
			})
		} else {
			durationYears := yearsBetween(*p.StartDate, *p.EndDate)
			if durationYears > eduLongDurationYears {
				issues = append(issues, Issue{
					Type:         IssueWarning,
					Category:     CategoryEducation,
					Message:      "education period is unusually long",
					DetectedDate: fmt.Sprintf("%s - %s", formatDate(*p.StartDate), formatDate(*p.EndDate)),
					Confidence:   0.6,
					kind:         kindEduLongDuration,
					periodIndex:  index,
				})
			}
			if durationYears < eduShortDurationYears && strings.Contains(strings.ToLower(p.Degree), "degree") {
				issues = append(issues, Issue{
					Type:         IssueSuggestion,
					Category:     CategoryEducation,
					Message:      "education period seems short for a degree",
					DetectedDate: fmt.Sprintf("%s - %s", formatDate(*p.StartDate), formatDate(*p.EndDate)),
					Confidence:   0.5,
					kind:         kindEduShortDuration,
					periodIndex:  index,
				})
			}
		}
	}

	if p.IsOngoing && p.StartDate != nil && yearsBetween(*p.StartDate, now) > eduStaleOngoingYears {
		issues = append(issues, Issue{
			Type:         IssueWarning,
			Category:     CategoryEducation,
			Message:      "ongoing education started more than 8 years ago, verify it is still current",
			DetectedDate: formatDate(*p.StartDate),
			Confidence:   0.7,
			kind:         kindEduStaleOngoing,
			periodIndex:  index,
		})
	}

	return issues
}
