package validation

import (
	"fmt"
	"time"

	"datecheck-backend/internal/periods"
)

const (
	ancientYearCutoff     = 1980
	generalFarFutureYears = 10.0
)

// GeneralChecks applies the cross-section rules that do not belong to one
// timeline: implausibly old dates, dates far in the future regardless of
// section, and work that starts before the latest completed education ends.
func GeneralChecks(edu []periods.EducationPeriod, work []periods.WorkExperience, now time.Time) []Issue {
	var issues []Issue
	for _, d := range allDates(edu, work) {
		issues = append(issues, datePlausibilityIssues(d, now)...)
	}
	if issue, ok := workBeforeEducationIssue(edu, work); ok {
		issues = append(issues, issue)
	}
	return issues
}

func allDates(edu []periods.EducationPeriod, work []periods.WorkExperience) []time.Time {
	var dates []time.Time
	for _, p := range edu {
		if p.StartDate != nil {
			dates = append(dates, *p.StartDate)
		}
		if p.EndDate != nil {
			dates = append(dates, *p.EndDate)
		}
	}
	for _, w := range work {
		if w.StartDate != nil {
			dates = append(dates, *w.StartDate)
		}
		if w.EndDate != nil {
			dates = append(dates, *w.EndDate)
		}
	}
	return dates
}

func datePlausibilityIssues(d time.Time, now time.Time) []Issue {
	var issues []Issue
	if d.Year() < ancientYearCutoff {
		issues = append(issues, Issue{
			Type:         IssueWarning,
			Category:     CategoryGeneral,
			Message:      fmt.Sprintf("date before %d is unusual on a resume, verify the year", ancientYearCutoff),
			DetectedDate: formatDate(d),
			SuggestedFix: formatDate(shiftYears(d, 20)),
			Confidence:   0.6,
			kind:         kindGeneralAncient,
		})
	}
	if yearsBetween(now, d) > generalFarFutureYears {
		issues = append(issues, Issue{
			Type:         IssueCritical,
			Category:     CategoryGeneral,
			Message:      "date is more than 10 years in the future",
			DetectedDate: formatDate(d),
			SuggestedFix: formatDate(shiftYears(d, -10)),
			Confidence:   0.85,
			kind:         kindGeneralFarFuture,
		})
	}
	return issues
}

// workBeforeEducationIssue flags a work period that starts before the
// latest completed education ends. Overlap with an ongoing degree is
// common enough that ongoing education is ignored.
func workBeforeEducationIssue(edu []periods.EducationPeriod, work []periods.WorkExperience) (Issue, bool) {
	var latestEnd *time.Time
	for _, p := range edu {
		if p.IsOngoing || p.EndDate == nil {
			continue
		}
		if latestEnd == nil || p.EndDate.After(*latestEnd) {
			latestEnd = p.EndDate
		}
	}
	if latestEnd == nil {
		return Issue{}, false
	}
	for _, w := range work {
		if w.StartDate != nil && w.StartDate.Before(*latestEnd) {
			return Issue{
				Type:         IssueWarning,
				Category:     CategoryGeneral,
				Message:      "work experience starts before education ends, verify timeline consistency",
				DetectedDate: formatDate(*w.StartDate),
				Confidence:   0.5,
				kind:         kindGeneralInconsistent,
			}, true
		}
	}
	return Issue{}, false
}
