package settings

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu  sync.RWMutex
	cfg *ValidationConfig
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Load(ctx context.Context) (ValidationConfig, error) {
	if err := ctx.Err(); err != nil {
		return ValidationConfig{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.cfg == nil {
		return ValidationConfig{}, ErrNotFound
	}
	return *r.cfg, nil
}

func (r *MemoryRepo) Save(ctx context.Context, cfg ValidationConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := cfg
	r.cfg = &copied
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = nil
	return nil
}
