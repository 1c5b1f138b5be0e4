package periods

import (
	"testing"
	"time"

	"datecheck-backend/internal/dates"
	"datecheck-backend/internal/shared/telemetry"
)

func testBuilder() *Builder {
	p := dates.NewParser(telemetry.NopSink{})
	p.Now = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return NewBuilder(p, telemetry.NopSink{})
}

func TestBuildEducationFullEntry(t *testing.T) {
	b := testBuilder()
	block := "Bachelor of Computer Science, University of Technology, September 2018 - May 2022"
	period, ok := b.BuildEducation(block)
	if !ok {
		t.Fatalf("expected a period")
	}
	if period.Institution != "University of Technology" {
		t.Fatalf("institution = %q", period.Institution)
	}
	if period.Degree != "Bachelor of Computer Science" {
		t.Fatalf("degree = %q", period.Degree)
	}
	wantStart := time.Date(2018, time.September, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2022, time.May, 1, 0, 0, 0, 0, time.UTC)
	if period.StartDate == nil || !period.StartDate.Equal(wantStart) {
		t.Fatalf("startDate = %v", period.StartDate)
	}
	if period.EndDate == nil || !period.EndDate.Equal(wantEnd) {
		t.Fatalf("endDate = %v", period.EndDate)
	}
	if period.IsOngoing {
		t.Fatalf("period should not be ongoing")
	}
	if period.Confidence < 0.9 {
		t.Fatalf("confidence = %f, want high for fully-labeled entry", period.Confidence)
	}
}

func TestBuildEducationDiscardsDatelessBlock(t *testing.T) {
	b := testBuilder()
	if _, ok := b.BuildEducation("Bachelor of Arts, Some College"); ok {
		t.Fatalf("block without dates should be discarded")
	}
}

func TestBuildWorkOngoingEntry(t *testing.T) {
	b := testBuilder()
	work, ok := b.BuildWork("Senior Engineer, Company B, Jun 2021 - Present")
	if !ok {
		t.Fatalf("expected a work experience")
	}
	if work.Company != "Company B" {
		t.Fatalf("company = %q", work.Company)
	}
	if work.Position != "Senior Engineer" {
		t.Fatalf("position = %q", work.Position)
	}
	if !work.IsOngoing {
		t.Fatalf("expected ongoing")
	}
	if work.EndDate != nil {
		t.Fatalf("ongoing entry must have nil endDate, got %v", work.EndDate)
	}
	wantStart := time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)
	if work.StartDate == nil || !work.StartDate.Equal(wantStart) {
		t.Fatalf("startDate = %v", work.StartDate)
	}
}

func TestBuildWorkSingleDateIsEndDate(t *testing.T) {
	b := testBuilder()
	work, ok := b.BuildWork("Junior Developer, Acme Inc, 2019")
	if !ok {
		t.Fatalf("expected a work experience")
	}
	if work.StartDate != nil {
		t.Fatalf("lone date must be treated as end date, got start %v", work.StartDate)
	}
	if work.EndDate == nil || work.EndDate.Year() != 2019 {
		t.Fatalf("endDate = %v", work.EndDate)
	}
}

func TestBuildWorkMiddleDatesDiscarded(t *testing.T) {
	b := testBuilder()
	work, ok := b.BuildWork("Consultant, Beta LLC, 2015, 2017, 2020")
	if !ok {
		t.Fatalf("expected a work experience")
	}
	if work.StartDate == nil || work.StartDate.Year() != 2015 {
		t.Fatalf("startDate = %v", work.StartDate)
	}
	if work.EndDate == nil || work.EndDate.Year() != 2020 {
		t.Fatalf("endDate = %v", work.EndDate)
	}
}

func TestBuildWorkConfidenceBonuses(t *testing.T) {
	b := testBuilder()
	bare, ok := b.BuildWork("2018 - 2020")
	if !ok {
		t.Fatalf("expected a period from bare dates")
	}
	labeled, ok := b.BuildWork("Software Engineer, Acme Corp, 2018 - 2020")
	if !ok {
		t.Fatalf("expected a labeled period")
	}
	if labeled.Confidence <= bare.Confidence {
		t.Fatalf("labeled confidence %f should exceed bare %f", labeled.Confidence, bare.Confidence)
	}
	if bare.Confidence < baseConfidence {
		t.Fatalf("bare confidence %f below base", bare.Confidence)
	}
}
