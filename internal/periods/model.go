package periods

import "time"

// EducationPeriod is one education entry recovered from resume text.
// IsOngoing implies EndDate is nil. Malformed orderings (start >= end) are
// preserved so validators can detect them.
type EducationPeriod struct {
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree,omitempty"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	IsOngoing    bool       `json:"isOngoing"`
	OriginalText string     `json:"originalText"`
	Confidence   float64    `json:"confidence"`
}

// WorkExperience is one employment entry recovered from resume text. Same
// shape and invariants as EducationPeriod with work-specific labels.
type WorkExperience struct {
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	IsOngoing    bool       `json:"isOngoing"`
	OriginalText string     `json:"originalText"`
	Confidence   float64    `json:"confidence"`
}
