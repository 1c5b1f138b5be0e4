package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"datecheck-backend/internal/shared/telemetry"
)

// cacheTTL is the freshness window for the loaded config. A reload after
// expiry affects subsequent reads only, never in-flight validations, which
// hold their own config snapshot.
const cacheTTL = 5 * time.Minute

// Service serves config snapshots, caching the persisted value and falling
// back to Defaults() on any persistence error.
type Service struct {
	Repo Repo
	Sink telemetry.Sink
	Now  func() time.Time

	mu       sync.Mutex
	cached   ValidationConfig
	cachedAt time.Time
	hasCache bool
}

// NewService constructs a Service. Nil sink is replaced with a no-op.
func NewService(repo Repo, sink telemetry.Sink) *Service {
	if sink == nil {
		sink = telemetry.NopSink{}
	}
	return &Service{Repo: repo, Sink: sink, Now: time.Now}
}

// Get returns the active config snapshot. Never fails: on persistence
// errors it returns Defaults() and reports through the sink.
func (s *Service) Get(ctx context.Context) ValidationConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.Now()
	if s.hasCache && now.Sub(s.cachedAt) < cacheTTL {
		return s.cached
	}

	cfg, err := s.load(ctx)
	if err != nil {
		s.Sink.Emit(telemetry.Event{
			Level:     "error",
			Category:  "settings",
			Operation: "load",
			Err:       err,
		})
		return Defaults()
	}
	s.cached = cfg
	s.cachedAt = now
	s.hasCache = true
	return cfg
}

func (s *Service) load(ctx context.Context) (ValidationConfig, error) {
	if s.Repo == nil {
		return Defaults(), nil
	}
	cfg, err := s.Repo.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Defaults(), nil
		}
		return ValidationConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ValidationConfig{}, fmt.Errorf("persisted config invalid: %w", err)
	}
	return cfg, nil
}

// Update validates and persists a full config, then refreshes the cache.
// Invalid values are rejected before any persistence happens.
func (s *Service) Update(ctx context.Context, cfg ValidationConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if s.Repo != nil {
		if err := s.Repo.Save(ctx, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
	}
	s.mu.Lock()
	s.cached = cfg
	s.cachedAt = s.Now()
	s.hasCache = true
	s.mu.Unlock()
	return nil
}

// Reset deletes the persisted config and reinstates defaults. Persistence
// errors are reported but do not block the reset.
func (s *Service) Reset(ctx context.Context) ValidationConfig {
	if s.Repo != nil {
		if err := s.Repo.Delete(ctx); err != nil {
			s.Sink.Emit(telemetry.Event{
				Level:     "error",
				Category:  "settings",
				Operation: "reset",
				Err:       err,
			})
		}
	}
	defaults := Defaults()
	s.mu.Lock()
	s.cached = defaults
	s.cachedAt = s.Now()
	s.hasCache = true
	s.mu.Unlock()
	return defaults
}

// Invalidate drops the cache so the next Get reloads from persistence.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.hasCache = false
	s.mu.Unlock()
}
