package dates

import (
	"testing"
	"time"

	"datecheck-backend/internal/shared/telemetry"
)

func testParser() *Parser {
	p := NewParser(telemetry.NopSink{})
	p.Now = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return p
}

func TestParseMonthYear(t *testing.T) {
	p := testParser()
	cases := []struct {
		in    string
		month time.Month
		year  int
	}{
		{"September 2018", time.September, 2018},
		{"sep 2018", time.September, 2018},
		{"March 1999", time.March, 1999},
		{"DECEMBER 2024", time.December, 2024},
		{"Jun. 2021", time.June, 2021},
		{"May, 2022", time.May, 2022},
	}
	for _, tc := range cases {
		got := p.Parse(tc.in)
		if got == nil {
			t.Fatalf("Parse(%q) = nil", tc.in)
		}
		if got.Format != FormatMonthYear {
			t.Fatalf("Parse(%q) format = %s", tc.in, got.Format)
		}
		if got.Normalized.Month() != tc.month || got.Normalized.Year() != tc.year {
			t.Fatalf("Parse(%q) normalized = %v", tc.in, got.Normalized)
		}
		if got.Confidence != ConfidenceExact {
			t.Fatalf("Parse(%q) confidence = %f", tc.in, got.Confidence)
		}
		if got.IsOngoing {
			t.Fatalf("Parse(%q) unexpectedly ongoing", tc.in)
		}
	}
}

func TestParseOngoingKeywords(t *testing.T) {
	p := testParser()
	for _, in := range []string{"Present", "CURRENT", "ongoing", "now", "Today", "till date", "To Date", "continuing"} {
		got := p.Parse(in)
		if got == nil {
			t.Fatalf("Parse(%q) = nil", in)
		}
		if !got.IsOngoing {
			t.Fatalf("Parse(%q) not ongoing", in)
		}
		if got.Format != FormatPresent {
			t.Fatalf("Parse(%q) format = %s", in, got.Format)
		}
		if got.Confidence != ConfidenceExact {
			t.Fatalf("Parse(%q) confidence = %f", in, got.Confidence)
		}
		if !got.Normalized.Equal(p.Now()) {
			t.Fatalf("Parse(%q) normalized = %v, want now", in, got.Normalized)
		}
	}
}

func TestParseYearOnly(t *testing.T) {
	p := testParser()
	got := p.Parse("2019")
	if got == nil {
		t.Fatalf("Parse(2019) = nil")
	}
	if got.Format != FormatYearOnly {
		t.Fatalf("format = %s", got.Format)
	}
	want := time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Normalized.Equal(want) {
		t.Fatalf("normalized = %v, want %v", got.Normalized, want)
	}
	if got.Confidence != ConfidencePattern {
		t.Fatalf("confidence = %f", got.Confidence)
	}
}

func TestParseYearBounds(t *testing.T) {
	p := testParser()
	cases := []struct {
		in string
		ok bool
	}{
		{"1950", true},
		{"1949", false},
		{"2035", true}, // currentYear+10 with now fixed to 2025
		{"2036", false},
	}
	for _, tc := range cases {
		got := p.Parse(tc.in)
		if tc.ok && got == nil {
			t.Fatalf("Parse(%q) = nil, want date", tc.in)
		}
		if !tc.ok && got != nil {
			t.Fatalf("Parse(%q) = %v, want nil", tc.in, got)
		}
	}
}

func TestParseFullDate(t *testing.T) {
	p := testParser()
	got := p.Parse("9/15/2018")
	if got == nil {
		t.Fatalf("Parse(9/15/2018) = nil")
	}
	if got.Format != FormatFullDate {
		t.Fatalf("format = %s", got.Format)
	}
	want := time.Date(2018, time.September, 15, 0, 0, 0, 0, time.UTC)
	if !got.Normalized.Equal(want) {
		t.Fatalf("normalized = %v", got.Normalized)
	}
}

func TestParseFullDateRejectsInvalidCalendarDays(t *testing.T) {
	p := testParser()
	for _, in := range []string{"13/1/2020", "0/10/2020", "2/30/2019", "2/29/2019", "4/31/2021", "6/0/2021"} {
		if got := p.Parse(in); got != nil {
			t.Fatalf("Parse(%q) = %+v, want nil", in, got)
		}
	}
	// 2020 is a leap year, so Feb 29 is real.
	if got := p.Parse("2/29/2020"); got == nil {
		t.Fatalf("Parse(2/29/2020) = nil, want date")
	}
}

func TestParseRejectsNonDates(t *testing.T) {
	p := testParser()
	for _, in := range []string{"", "   ", "hello world", "123", "12345"} {
		if got := p.Parse(in); got != nil {
			t.Fatalf("Parse(%q) = %+v, want nil", in, got)
		}
	}
}
