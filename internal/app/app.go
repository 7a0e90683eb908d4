// Package app implements the application layer for fontconf.
package app

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/fontconf/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/fontconf/internal/core/ports"
	"go.trai.ch/fontconf/internal/engine/lifecycle"
	"go.trai.ch/zerr"
)

// App hosts the process-wide configuration and serializes access to it.
type App struct {
	mu       sync.Mutex
	registry *lifecycle.Registry
	gate     *lifecycle.RescanGate
	watcher  ports.Watcher
	logger   ports.Logger
	window   time.Duration
}

// Option configures an App.
type Option func(*App)

// WithDebounceWindow sets the quiet period Watch waits for before probing.
func WithDebounceWindow(d time.Duration) Option {
	return func(a *App) {
		a.window = d
	}
}

// New creates a new App instance.
func New(
	registry *lifecycle.Registry,
	gate *lifecycle.RescanGate,
	w ports.Watcher,
	logger ports.Logger,
	opts ...Option,
) *App {
	a := &App{
		registry: registry,
		gate:     gate,
		watcher:  w,
		logger:   logger,
		window:   watcher.DefaultDebounceWindow,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init loads the configuration and its fonts unless already loaded.
func (a *App) Init(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.registry.Init(ctx); err != nil {
		return zerr.Wrap(err, "failed to initialize configuration")
	}
	return nil
}

// Fini destroys the active configuration and clears cached state.
func (a *App) Fini() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.registry.Teardown()
}

// Reinitialize reloads the configuration unconditionally. The active
// configuration is kept when the reload fails.
func (a *App) Reinitialize(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.gate.Reinitialize(ctx); err != nil {
		return zerr.Wrap(err, "failed to reload configuration")
	}
	return nil
}

// BringUpToDate initializes the configuration when needed and then reloads
// it if its sources changed and the rescan interval has elapsed.
func (a *App) BringUpToDate(ctx context.Context) (lifecycle.State, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.registry.Init(ctx); err != nil {
		return lifecycle.StateDisabled, zerr.Wrap(err, "failed to initialize configuration")
	}
	return a.gate.BringUpToDate(ctx)
}

// Check initializes the configuration when needed, then probes its sources
// immediately, regardless of the rescan interval, and reloads it when stale.
func (a *App) Check(ctx context.Context) (lifecycle.State, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.registry.Init(ctx); err != nil {
		return lifecycle.StateDisabled, zerr.Wrap(err, "failed to initialize configuration")
	}
	return a.gate.Check(ctx)
}

// Current returns the active configuration, or nil before Init.
func (a *App) Current() *domain.Config {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.registry.Current()
}

// Version returns the library version as an integer.
func (a *App) Version() int {
	return domain.Version()
}
