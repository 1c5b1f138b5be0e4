package validation

// IssueType is the severity of a validation issue. Critical issues block
// isValid; warnings and suggestions are advisory.
type IssueType string

const (
	IssueCritical   IssueType = "critical"
	IssueWarning    IssueType = "warning"
	IssueSuggestion IssueType = "suggestion"
)

// Category groups issues by the section that raised them.
type Category string

const (
	CategoryEducation Category = "education"
	CategoryWork      Category = "work"
	CategoryGeneral   Category = "general"
)

// issueKind identifies the rule that raised an issue, so the suggestion
// generator can dispatch targeted fixes. Not part of the wire format.
type issueKind int

const (
	kindUnknown issueKind = iota
	kindEduEndFarFuture
	kindEduEndNearFuture
	kindEduStartFuture
	kindEduOrder
	kindEduLongDuration
	kindEduShortDuration
	kindEduStaleOngoing
	kindEduOverlap
	kindWorkEndFarFuture
	kindWorkEndNearFuture
	kindWorkStartFuture
	kindWorkOrder
	kindWorkZeroDuration
	kindWorkShortDuration
	kindWorkStaleOngoing
	kindWorkOverlap
	kindWorkGap
	kindGeneralAncient
	kindGeneralFarFuture
	kindGeneralInconsistent
)

// Issue is a typed finding raised by a validator. The orchestrator may
// downgrade a critical issue to a plain Warning when its confidence falls
// below the configured threshold.
type Issue struct {
	Type         IssueType `json:"type"`
	Category     Category  `json:"category"`
	Message      string    `json:"message"`
	DetectedDate string    `json:"detectedDate"`
	SuggestedFix string    `json:"suggestedFix,omitempty"`
	Confidence   float64   `json:"confidence"`

	kind        issueKind
	periodIndex int
}

// Warning is a non-blocking finding; it never affects isValid.
type Warning struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
	Context  string   `json:"context,omitempty"`
}

// Suggestion is an advisory date correction. It never mutates source data.
type Suggestion struct {
	OriginalDate  string  `json:"originalDate"`
	SuggestedDate string  `json:"suggestedDate"`
	Reason        string  `json:"reason"`
	Confidence    float64 `json:"confidence"`
}

// Result is the top-level validation output.
// Invariant: IsValid == no issue has type critical.
type Result struct {
	IsValid     bool         `json:"isValid"`
	Issues      []Issue      `json:"issues"`
	Warnings    []Warning    `json:"warnings"`
	Suggestions []Suggestion `json:"suggestions"`
}

func emptyResult() Result {
	return Result{
		IsValid:     true,
		Issues:      []Issue{},
		Warnings:    []Warning{},
		Suggestions: []Suggestion{},
	}
}

func (r *Result) recomputeValidity() {
	for _, issue := range r.Issues {
		if issue.Type == IssueCritical {
			r.IsValid = false
			return
		}
	}
	r.IsValid = true
}
