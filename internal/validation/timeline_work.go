package validation

import (
	"fmt"
	"time"

	"datecheck-backend/internal/periods"
	"datecheck-backend/internal/settings"
)

// Per-period work rule thresholds.
const (
	workNearFutureMonths  = 1.0
	workShortDurationDays = 7.0
	workStaleOngoingYears = 15.0
)

// ValidateWorkTimeline applies the per-period, pairwise overlap and gap
// rules for work experience. Pure function: no state, no I/O.
func ValidateWorkTimeline(list []periods.WorkExperience, cfg settings.ValidationConfig, now time.Time) []Issue {
	issues := []Issue{}
	for i, w := range list {
		issues = append(issues, workPeriodIssues(i, w, cfg, now)...)
	}
	issues = append(issues, workOverlapIssues(list, now)...)
	issues = append(issues, workGapIssues(list, now)...)
	return issues
}

func workPeriodIssues(index int, w periods.WorkExperience, cfg settings.ValidationConfig, now time.Time) []Issue {
	var issues []Issue
	maxAheadMonths := float64(cfg.MaxFutureWorkMonths)

	if w.EndDate != nil && !w.IsOngoing {
		monthsAhead := monthsBetween(now, *w.EndDate)
		if monthsAhead > maxAheadMonths {
			issues = append(issues, Issue{
				Type:         IssueCritical,
				Category:     CategoryWork,
				Message:      fmt.Sprintf("work end date is more than %d months in the future", cfg.MaxFutureWorkMonths),
				DetectedDate: formatDate(*w.EndDate),
				SuggestedFix: formatDate(now),
				Confidence:   0.9,
				kind:         kindWorkEndFarFuture,
				periodIndex:  index,
			})
		} else if monthsAhead >= workNearFutureMonths {
			issues = append(issues, Issue{
				Type:         IssueWarning,
				Category:     CategoryWork,
				Message:      "work end date is in the near future",
				DetectedDate: formatDate(*w.EndDate),
				Confidence:   0.7,
				kind:         kindWorkEndNearFuture,
				periodIndex:  index,
			})
		}
	}

	if w.StartDate != nil && monthsBetween(now, *w.StartDate) > maxAheadMonths {
		issues = append(issues, Issue{
			Type:         IssueCritical,
			Category:     CategoryWork,
			Message:      fmt.Sprintf("work start date is more than %d months in the future", cfg.MaxFutureWorkMonths),
			DetectedDate: formatDate(*w.StartDate),
			Confidence:   0.85,
			kind:         kindWorkStartFuture,
			periodIndex:  index,
		})
	}

	if w.StartDate != nil && w.EndDate != nil && !w.IsOngoing {
		switch {
		case !w.StartDate.Before(*w.EndDate):
			issues = append(issues, Issue{
				Type:         IssueCritical,
				Category:     CategoryWork,
				Message:      "work start date is not before its end date, check date order",
				DetectedDate: fmt.Sprintf("%s - %s", formatDate(*w.StartDate), formatDate(*w.EndDate)),
				SuggestedFix: fmt.Sprintf("%s - %s", formatDate(*w.EndDate), formatDate(*w.StartDate)),
				Confidence:   0.95,
				kind:         kindWorkOrder,
				periodIndex:  index,
			})
		case w.EndDate.Sub(*w.StartDate).Hours() < 24:
			issues = append(issues, Issue{
				Type:         IssueCritical,
				Category:     CategoryWork,
				Message:      "work period is shorter than one day, verify dates",
				DetectedDate: fmt.Sprintf("%s - %s", formatDate(*w.StartDate), formatDate(*w.EndDate)),
				Confidence:   0.9,
				kind:         kindWorkZeroDuration,
				periodIndex:  index,
			})
		case w.EndDate.Sub(*w.StartDate).Hours() < workShortDurationDays*24:
			issues = append(issues, Issue{
				Type:         IssueWarning,
				Category:     CategoryWork,
				Message:      "work period is very short",
				DetectedDate: fmt.Sprintf("%s - %s", formatDate(*w.StartDate), formatDate(*w.EndDate)),
				Confidence:   0.7,
				kind:         kindWorkShortDuration,
				periodIndex:  index,
			})
		}
	}

	if w.IsOngoing && w.StartDate != nil && yearsBetween(*w.StartDate, now) > workStaleOngoingYears {
		issues = append(issues, Issue{
			Type:         IssueSuggestion,
			Category:     CategoryWork,
			Message:      "ongoing position started more than 15 years ago, consider whether it is still accurate",
			DetectedDate: formatDate(*w.StartDate),
			Confidence:   0.6,
			kind:         kindWorkStaleOngoing,
			periodIndex:  index,
		})
	}

	return issues
}
