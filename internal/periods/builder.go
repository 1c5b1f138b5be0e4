package periods

import (
	"sort"
	"strings"
	"time"

	"datecheck-backend/internal/dates"
	"datecheck-backend/internal/shared/telemetry"
)

// Extraction-confidence scoring for built periods.
const (
	baseConfidence       = 0.5
	nameBonus            = 0.2
	recognizedNameBonus  = 0.1
	labelBonus           = 0.2
	dateConfidenceWeight = 0.1
)

// Builder turns one raw text block into at most one period.
type Builder struct {
	Parser *dates.Parser
	Sink   telemetry.Sink
}

// NewBuilder constructs a Builder. A nil sink is replaced with a no-op.
func NewBuilder(parser *dates.Parser, sink telemetry.Sink) *Builder {
	if sink == nil {
		sink = telemetry.NopSink{}
	}
	return &Builder{Parser: parser, Sink: sink}
}

// BuildEducation builds an education period from a block. The second return
// is false when the block contains no parseable dates and is discarded.
func (b *Builder) BuildEducation(block string) (EducationPeriod, bool) {
	parsed := b.parsedDates(block)
	if len(parsed) == 0 {
		return EducationPeriod{}, false
	}
	start, end, ongoing := resolveRange(parsed)

	institution, recognized := findSegment(block, institutionKeywords)
	if institution == "" {
		institution = fallbackName(block, degreeKeywords)
	}
	degree, _ := findSegment(block, degreeKeywords)

	return EducationPeriod{
		Institution:  institution,
		Degree:       degree,
		StartDate:    start,
		EndDate:      end,
		IsOngoing:    ongoing,
		OriginalText: block,
		Confidence:   scoreConfidence(institution, recognized, degree, parsed),
	}, true
}

// BuildWork builds a work experience from a block; false when the block has
// no parseable dates.
func (b *Builder) BuildWork(block string) (WorkExperience, bool) {
	parsed := b.parsedDates(block)
	if len(parsed) == 0 {
		return WorkExperience{}, false
	}
	start, end, ongoing := resolveRange(parsed)

	company, recognized := findSegment(block, companySuffixes)
	if company == "" {
		company = fallbackName(block, positionKeywords)
	}
	position, _ := findSegment(block, positionKeywords)

	return WorkExperience{
		Company:      company,
		Position:     position,
		StartDate:    start,
		EndDate:      end,
		IsOngoing:    ongoing,
		OriginalText: block,
		Confidence:   scoreConfidence(company, recognized, position, parsed),
	}, true
}

func (b *Builder) parsedDates(block string) []*dates.ParsedDate {
	spans := b.Parser.ExtractFromText(block)
	out := make([]*dates.ParsedDate, 0, len(spans))
	for _, s := range spans {
		if s.Parsed != nil {
			out = append(out, s.Parsed)
		}
	}
	return out
}

// resolveRange applies the block's date-assignment rules: a lone real date
// is a completion date; a real date next to an ongoing marker is a start
// date; with two or more real dates the first is the start and the last is
// the end, middle dates are discarded.
func resolveRange(parsed []*dates.ParsedDate) (start, end *time.Time, ongoing bool) {
	var real []time.Time
	for _, d := range parsed {
		if d.IsOngoing {
			ongoing = true
			continue
		}
		real = append(real, d.Normalized)
	}
	sort.Slice(real, func(i, j int) bool { return real[i].Before(real[j]) })

	switch {
	case len(real) == 0:
		return nil, nil, ongoing
	case ongoing:
		s := real[0]
		return &s, nil, true
	case len(real) == 1:
		e := real[0]
		return nil, &e, false
	default:
		s := real[0]
		e := real[len(real)-1]
		return &s, &e, false
	}
}

// findSegment returns the first comma-separated segment of the block that
// contains one of the keywords, cleaned of date tokens. The second return
// reports whether a keyword segment was found at all.
func findSegment(block string, keywords []string) (string, bool) {
	for _, line := range strings.Split(block, "\n") {
		for _, seg := range strings.Split(line, ",") {
			if matchesAny(strings.TrimSpace(seg), keywords) {
				if name := cleanName(seg); name != "" {
					return name, true
				}
			}
		}
	}
	return "", false
}

// fallbackName takes the first segment that is neither a date nor a label
// (degree/position) segment, so headerless one-line entries still get a
// usable name.
func fallbackName(block string, labelKeywords []string) string {
	for _, line := range strings.Split(block, "\n") {
		for _, seg := range strings.Split(line, ",") {
			trimmed := strings.TrimSpace(seg)
			if trimmed == "" || dates.HasDateToken(trimmed) || matchesAny(trimmed, labelKeywords) {
				continue
			}
			if name := cleanName(seg); name != "" {
				return name
			}
		}
	}
	return ""
}

func cleanName(seg string) string {
	out := dates.StripDateTokens(seg)
	return strings.Trim(out, " \t-–—•|:;.")
}

func scoreConfidence(name string, recognized bool, label string, parsed []*dates.ParsedDate) float64 {
	conf := baseConfidence
	if name != "" {
		conf += nameBonus
		if recognized {
			conf += recognizedNameBonus
		}
	}
	if label != "" {
		conf += labelBonus
	}
	if len(parsed) > 0 {
		var sum float64
		for _, d := range parsed {
			sum += d.Confidence
		}
		conf += sum / float64(len(parsed)) * dateConfidenceWeight
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}
