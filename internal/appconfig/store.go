package appconfig

import (
	"context"
	"sync"

	"github.com/voici5986/Antigravity-Manager/internal/host"
	"github.com/voici5986/Antigravity-Manager/internal/logging"
)

// PersistenceService is the durable read/write collaborator the store
// depends on. Load returns a fully-formed config or fails; Save either
// durably stores the config or fails.
type PersistenceService interface {
	Load(ctx context.Context) (*Config, error)
	Save(ctx context.Context, cfg *Config) error
}

// ChangeHandler is called after the store's config has been replaced.
type ChangeHandler func(cfg *Config)

// State is a point-in-time view of the store. Config is nil until the first
// successful load; Err holds the description of the most recent failed
// load/save and is cleared when the next attempt starts.
type State struct {
	Config  *Config
	Loading bool
	Err     string
}

// Store is the single writable holder of the application configuration.
// Consumers read snapshots and mutate only through the operations below;
// overlapping Save/Load calls are not serialized against each other, so the
// state reflects whichever call completes last.
type Store struct {
	svc      PersistenceService
	notifier host.Notifier

	mu       sync.RWMutex
	config   *Config
	loading  bool
	lastErr  string
	handlers []ChangeHandler
}

// NewStore creates a store backed by svc. notifier may be nil when the
// process runs outside the desktop shell; theme notifications are then
// skipped entirely.
func NewStore(svc PersistenceService, notifier host.Notifier) *Store {
	return &Store{svc: svc, notifier: notifier}
}

// Config returns a copy of the current config, or nil before the first
// successful load.
func (s *Store) Config() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Clone()
}

// Loading reports whether a load or non-silent save is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the description of the most recent failed operation, or ""
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Snapshot returns a consistent view of config, loading and error.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{Config: s.config.Clone(), Loading: s.loading, Err: s.lastErr}
}

// OnChange registers a handler fired after every successful load or save.
// The handler receives its own copy of the new config.
func (s *Store) OnChange(fn ChangeHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, fn)
}

// LoadConfig reads the persisted config into the store. A failure is
// recorded in the error slot and never returned: the previous config (or
// its absence, on first load) is kept as-is.
func (s *Store) LoadConfig(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	cfg, err := s.svc.Load(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		s.mu.Unlock()
		logging.Errorf("%v", err)
		return
	}
	s.config = cfg.Clone()
	handlers := append([]ChangeHandler(nil), s.handlers...)
	s.mu.Unlock()

	for _, fn := range handlers {
		fn(cfg.Clone())
	}
}

// SaveConfig persists cfg and, on success, replaces the in-memory config
// with the caller's value (no re-read). A silent save never touches the
// loading flag, so rapid successive silent saves cause no visible flicker.
// Unlike LoadConfig, a failure is both recorded in the error slot and
// returned, so callers can react beyond what the shared state conveys.
func (s *Store) SaveConfig(ctx context.Context, cfg *Config, silent bool) error {
	if !silent {
		s.mu.Lock()
		s.loading = true
		s.lastErr = ""
		s.mu.Unlock()
	}

	if err := s.svc.Save(ctx, cfg); err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		if !silent {
			s.loading = false
		}
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.config = cfg.Clone()
	if !silent {
		s.loading = false
	}
	handlers := append([]ChangeHandler(nil), s.handlers...)
	s.mu.Unlock()

	// Theme sync with the host shell is best-effort: the error is dropped
	// here on purpose so a shell-side failure can never fail a save.
	if s.notifier != nil {
		if err := s.notifier.NotifyThemeChanged(ctx, cfg.Theme); err != nil {
			logging.Warnf("host theme notification failed: %v", err)
		}
	}

	for _, fn := range handlers {
		fn(cfg.Clone())
	}
	return nil
}

// UpdateTheme persists a copy of the current config with the theme replaced,
// as a silent save. It is a no-op before the first load and when the theme
// already has the requested value, so redundant writes and redundant host
// notifications never happen.
func (s *Store) UpdateTheme(ctx context.Context, theme string) error {
	s.mu.RLock()
	cur := s.config
	s.mu.RUnlock()
	if cur == nil || cur.Theme == theme {
		return nil
	}
	return s.SaveConfig(ctx, cur.WithTheme(theme), true)
}

// UpdateLanguage is the language counterpart of UpdateTheme.
func (s *Store) UpdateLanguage(ctx context.Context, language string) error {
	s.mu.RLock()
	cur := s.config
	s.mu.RUnlock()
	if cur == nil || cur.Language == language {
		return nil
	}
	return s.SaveConfig(ctx, cur.WithLanguage(language), true)
}
