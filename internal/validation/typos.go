package validation

import (
	"fmt"
	"strconv"
	"time"

	"datecheck-backend/internal/periods"
	"datecheck-backend/internal/settings"
)

// Typo detection thresholds and confidence anchors.
const (
	typoFutureTriggerYears = 2
	decadeShiftMonths      = 60.0
	decadeShiftConfidence  = 0.8
	currentYearConfidence  = 0.6
	transposeMinConfidence = 0.4
	transposeMinYear       = 1970
)

// datePoint is one concrete date taken from a period, with enough context
// to score candidate corrections.
type datePoint struct {
	date     time.Time
	category Category
	// siblingYears are the years of every other date in the same section,
	// used to score off-by-one candidates.
	siblingYears []int
}

// DetectTypos scans every date attached to the parsed periods and proposes
// arithmetic corrections: year shifts toward the current year, decade-shift
// fixes for far-future dates, adjacent-digit transpositions, and off-by-one
// adjustments. Proposals below cfg.ConfidenceThreshold are discarded.
func DetectTypos(edu []periods.EducationPeriod, work []periods.WorkExperience, cfg settings.ValidationConfig, now time.Time) []Suggestion {
	points := collectDatePoints(edu, work)
	var out []Suggestion
	for _, p := range points {
		out = append(out, typoCandidates(p, cfg, now)...)
	}
	out = filterByConfidence(out, cfg.ConfidenceThreshold)
	return dedupeSuggestions(out)
}

func collectDatePoints(edu []periods.EducationPeriod, work []periods.WorkExperience) []datePoint {
	var eduDates, workDates []time.Time
	for _, p := range edu {
		if p.StartDate != nil {
			eduDates = append(eduDates, *p.StartDate)
		}
		if p.EndDate != nil {
			eduDates = append(eduDates, *p.EndDate)
		}
	}
	for _, w := range work {
		if w.StartDate != nil {
			workDates = append(workDates, *w.StartDate)
		}
		if w.EndDate != nil {
			workDates = append(workDates, *w.EndDate)
		}
	}

	var points []datePoint
	for i, d := range eduDates {
		points = append(points, datePoint{
			date:         d,
			category:     CategoryEducation,
			siblingYears: siblingYears(eduDates, i),
		})
	}
	for i, d := range workDates {
		points = append(points, datePoint{
			date:         d,
			category:     CategoryWork,
			siblingYears: siblingYears(workDates, i),
		})
	}
	return points
}

func siblingYears(dates []time.Time, skip int) []int {
	years := make([]int, 0, len(dates)-1)
	for i, d := range dates {
		if i != skip {
			years = append(years, d.Year())
		}
	}
	return years
}

func typoCandidates(p datePoint, cfg settings.ValidationConfig, now time.Time) []Suggestion {
	var out []Suggestion
	year := p.date.Year()
	currentYear := now.Year()

	if year > currentYear+typoFutureTriggerYears {
		for _, candidate := range []int{currentYear, currentYear - 1, currentYear - 2} {
			out = append(out, Suggestion{
				OriginalDate:  formatDate(p.date),
				SuggestedDate: formatDate(withYear(p.date, candidate)),
				Reason:        fmt.Sprintf("year %d appears to be in the future, %d fits the surrounding timeline better", year, candidate),
				Confidence:    yearShiftConfidence(year, candidate, currentYear, p.category, now),
			})
		}
	}

	if monthsBetween(now, p.date)-contextThresholdMonths(p.category, cfg) > decadeShiftMonths {
		out = append(out, Suggestion{
			OriginalDate:  formatDate(p.date),
			SuggestedDate: formatDate(withYear(p.date, year-10)),
			Reason:        fmt.Sprintf("%d may be a decade typo for %d", year, year-10),
			Confidence:    decadeShiftConfidence,
		})
		out = append(out, Suggestion{
			OriginalDate:  formatDate(p.date),
			SuggestedDate: formatDate(withYear(p.date, currentYear)),
			Reason:        fmt.Sprintf("%d is far in the future, the current year %d may have been intended", year, currentYear),
			Confidence:    currentYearConfidence,
		})
	}

	out = append(out, transpositionCandidates(p.date, currentYear)...)
	out = append(out, offByOneCandidates(p, currentYear)...)
	return out
}

// contextThresholdMonths is how far ahead a date may plausibly sit for its
// section before the decade-shift heuristic engages.
func contextThresholdMonths(category Category, cfg settings.ValidationConfig) float64 {
	switch category {
	case CategoryEducation:
		return float64(cfg.MaxFutureEducationYears) * 12
	case CategoryWork:
		return float64(cfg.MaxFutureWorkMonths)
	default:
		return 12
	}
}

// yearShiftConfidence scores a candidate year against the original: it
// rewards moving closer to the current year, an extreme original, and the
// candidate landing in the plausible window for its section (education
// tolerates [now-10, now+4], work [now-5, now]).
func yearShiftConfidence(original, candidate, currentYear int, category Category, now time.Time) float64 {
	conf := 0.4
	improvement := absInt(original-currentYear) - absInt(candidate-currentYear)
	if improvement > 0 {
		conf += minFloat(0.2, float64(improvement)*0.02)
	}
	extremity := absInt(original - currentYear)
	switch {
	case extremity > 10:
		conf += 0.15
	case extremity > 5:
		conf += 0.1
	}
	low, high := plausibleYearWindow(category, now)
	if candidate >= low && candidate <= high {
		conf += 0.15
	}
	return minFloat(conf, 0.95)
}

func plausibleYearWindow(category Category, now time.Time) (int, int) {
	switch category {
	case CategoryEducation:
		return now.Year() - 10, now.Year() + 4
	default:
		return now.Year() - 5, now.Year()
	}
}

// transpositionCandidates tries every adjacent-digit swap of the 4-digit
// year. A swap qualifies only when the result is a reasonable year strictly
// closer to the current year than the original.
func transpositionCandidates(date time.Time, currentYear int) []Suggestion {
	year := date.Year()
	digits := []byte(strconv.Itoa(year))
	if len(digits) != 4 {
		return nil
	}
	var out []Suggestion
	for i := 0; i < 3; i++ {
		if digits[i] == digits[i+1] {
			continue
		}
		swapped := append([]byte(nil), digits...)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		candidate, err := strconv.Atoi(string(swapped))
		if err != nil {
			continue
		}
		if candidate < transposeMinYear || candidate > currentYear+5 {
			continue
		}
		improvement := absInt(year-currentYear) - absInt(candidate-currentYear)
		if improvement <= 0 {
			continue
		}
		conf := transposeMinConfidence + minFloat(0.3, float64(improvement)*0.015)
		if absInt(year-currentYear) > 10 {
			conf += 0.1
		}
		out = append(out, Suggestion{
			OriginalDate:  formatDate(date),
			SuggestedDate: formatDate(withYear(date, candidate)),
			Reason:        fmt.Sprintf("%d may be a digit transposition of %d", year, candidate),
			Confidence:    minFloat(conf, 0.9),
		})
	}
	return out
}

// offByOneCandidates proposes year±1, scored by whether the candidate sits
// better inside the span of the section's other dates than the original.
func offByOneCandidates(p datePoint, currentYear int) []Suggestion {
	if len(p.siblingYears) == 0 {
		return nil
	}
	low, high := p.siblingYears[0], p.siblingYears[0]
	for _, y := range p.siblingYears[1:] {
		if y < low {
			low = y
		}
		if y > high {
			high = y
		}
	}
	year := p.date.Year()
	var out []Suggestion
	for _, candidate := range []int{year - 1, year + 1} {
		if candidate > currentYear+5 {
			continue
		}
		inSpan := candidate >= low && candidate <= high
		origInSpan := year >= low && year <= high
		if !inSpan || origInSpan {
			continue
		}
		conf := 0.35
		if absInt(candidate-currentYear) < absInt(year-currentYear) {
			conf += 0.2
		}
		out = append(out, Suggestion{
			OriginalDate:  formatDate(p.date),
			SuggestedDate: formatDate(withYear(p.date, candidate)),
			Reason:        fmt.Sprintf("%d may be off by one, %d matches the nearby dates", year, candidate),
			Confidence:    conf,
		})
	}
	return out
}

func withYear(t time.Time, year int) time.Time {
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func filterByConfidence(list []Suggestion, threshold float64) []Suggestion {
	kept := make([]Suggestion, 0, len(list))
	for _, s := range list {
		if s.Confidence >= threshold {
			kept = append(kept, s)
		}
	}
	return kept
}

func dedupeSuggestions(list []Suggestion) []Suggestion {
	seen := make(map[string]bool, len(list))
	out := make([]Suggestion, 0, len(list))
	for _, s := range list {
		key := s.OriginalDate + "|" + s.SuggestedDate
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
