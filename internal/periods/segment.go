package periods

import (
	"strings"

	"datecheck-backend/internal/dates"
	"datecheck-backend/internal/shared/telemetry"
)

// opportunisticRadius is how many lines around a topical-keyword line are
// captured when no section header was recognized.
const opportunisticRadius = 2

// Segmenter splits resume text into education and work candidate blocks.
// Blocks may overlap; each block is parsed into at most one period.
type Segmenter struct {
	Sink telemetry.Sink
}

// NewSegmenter constructs a Segmenter. A nil sink is replaced with a no-op.
func NewSegmenter(sink telemetry.Sink) *Segmenter {
	if sink == nil {
		sink = telemetry.NopSink{}
	}
	return &Segmenter{Sink: sink}
}

// EducationBlocks returns candidate education entry blocks.
func (s *Segmenter) EducationBlocks(text string) []string {
	blocks := s.blocks(text, educationHeaders, workHeaders, educationTopical)
	s.Sink.Emit(telemetry.Event{
		Level:     "info",
		Category:  "periods",
		Operation: "segment_education",
		Fields:    map[string]any{"blocks": len(blocks)},
	})
	return blocks
}

// WorkBlocks returns candidate work entry blocks.
func (s *Segmenter) WorkBlocks(text string) []string {
	blocks := s.blocks(text, workHeaders, educationHeaders, workTopical)
	s.Sink.Emit(telemetry.Event{
		Level:     "info",
		Category:  "periods",
		Operation: "segment_work",
		Fields:    map[string]any{"blocks": len(blocks)},
	})
	return blocks
}

// blocks walks the text line by line with an in-section flag. A line opens
// the section when it contains a target header keyword; a line closes it
// when it contains the other domain's header or a neutral header. Inside a
// section, a second dated line starts a new block (one block per entry).
// Outside any section, a line with a topical keyword is captured together
// with two lines of context on each side, so headerless resumes still yield
// candidates.
func (s *Segmenter) blocks(text string, enter, exit, topical []string) []string {
	lines := strings.Split(text, "\n")
	blocks := []string{}
	var current []string
	currentDated := false

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = nil
			currentDated = false
		}
	}

	inSection := false
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		if inSection {
			if matchesAny(trimmed, exit) || matchesAny(trimmed, neutralHeaders) {
				flush()
				inSection = false
				i++
				continue
			}
			if matchesAny(trimmed, enter) && !dates.HasDateToken(trimmed) {
				// Repeated target header inside the section.
				flush()
				i++
				continue
			}
			if trimmed == "" {
				flush()
				i++
				continue
			}
			if dates.HasDateToken(trimmed) {
				if currentDated {
					flush()
				}
				current = append(current, trimmed)
				currentDated = true
			} else {
				current = append(current, trimmed)
			}
			i++
			continue
		}

		if matchesAny(trimmed, enter) && !matchesAny(trimmed, exit) && !matchesAny(trimmed, neutralHeaders) {
			inSection = true
			// Compact resumes put the entry on the header line itself.
			if dates.HasDateToken(trimmed) {
				current = append(current, trimmed)
				currentDated = true
			}
			i++
			continue
		}

		if trimmed != "" && matchesAny(trimmed, topical) {
			blocks = append(blocks, captureWindow(lines, i))
			i += opportunisticRadius + 1
			continue
		}
		i++
	}
	flush()
	return blocks
}

func captureWindow(lines []string, center int) string {
	from := center - opportunisticRadius
	if from < 0 {
		from = 0
	}
	to := center + opportunisticRadius + 1
	if to > len(lines) {
		to = len(lines)
	}
	window := make([]string, 0, to-from)
	for _, line := range lines[from:to] {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			window = append(window, trimmed)
		}
	}
	return strings.Join(window, "\n")
}

// matchesAny reports whether the line contains one of the keywords.
// Single-word keywords must appear as a whole token; phrases and dotted
// abbreviations match as substrings.
func matchesAny(line string, keywords []string) bool {
	if line == "" {
		return false
	}
	lower := strings.ToLower(line)
	var tokens []string
	for _, kw := range keywords {
		if strings.ContainsAny(kw, " .") {
			if strings.Contains(lower, kw) {
				return true
			}
			continue
		}
		if tokens == nil {
			tokens = splitTokens(lower)
		}
		for _, tok := range tokens {
			if tok == kw {
				return true
			}
		}
	}
	return false
}

func splitTokens(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
}
