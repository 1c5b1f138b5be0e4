package validation

import (
	"strconv"
	"time"
)

const (
	daysPerYear  = 365.25
	daysPerMonth = 30.44
)

func yearsBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24 / daysPerYear
}

func monthsBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24 / daysPerMonth
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatYear(t time.Time) string {
	return strconv.Itoa(t.Year())
}

func shiftYears(t time.Time, years int) time.Time {
	return t.AddDate(years, 0, 0)
}
