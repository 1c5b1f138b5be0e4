package settings

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "validation config not found" }

// Repo is the persistence collaborator for ValidationConfig. Callers are
// expected to fail soft: any load error falls back to Defaults().
type Repo interface {
	Load(ctx context.Context) (ValidationConfig, error)
	Save(ctx context.Context, cfg ValidationConfig) error
	Delete(ctx context.Context) error
}
