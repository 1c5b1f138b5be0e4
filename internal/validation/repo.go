package validation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Run is a persisted record of one validation pipeline execution. The raw
// resume text is never stored, only its hash and length.
type Run struct {
	ID              uuid.UUID `json:"id"`
	TextHash        string    `json:"textHash"`
	TextLength      int       `json:"textLength"`
	Result          Result    `json:"result"`
	IsValid         bool      `json:"isValid"`
	IssueCount      int       `json:"issueCount"`
	WarningCount    int       `json:"warningCount"`
	SuggestionCount int       `json:"suggestionCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

type errNotFound struct{}

func (errNotFound) Error() string { return "validation run not found" }

// ErrNotFound is returned when a run id does not exist.
var ErrNotFound error = errNotFound{}

// Repo stores validation runs.
type Repo interface {
	Insert(ctx context.Context, run Run) error
	Get(ctx context.Context, id uuid.UUID) (Run, error)
	List(ctx context.Context, limit int) ([]Run, error)
}
