package lifecycle

import (
	"context"
	"time"

	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/fontconf/internal/core/ports"
)

// State is the outcome of a staleness check.
type State uint8

const (
	// StateDisabled means the active Config has a zero rescan interval.
	StateDisabled State = iota
	// StateNotDue means the rescan interval has not elapsed since the last check.
	StateNotDue
	// StateFresh means the on-disk configuration is unchanged.
	StateFresh
	// StateStale means the on-disk configuration changed and a reload was attempted.
	StateStale
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateDisabled:
		return "disabled"
	case StateNotDue:
		return "not-due"
	case StateFresh:
		return "fresh"
	case StateStale:
		return "stale"
	default:
		return "unknown"
	}
}

// RescanGate rate-limits staleness probes and reloads the active Config when
// its sources changed.
type RescanGate struct {
	registry *Registry
	loader   *Loader
	prober   ports.UpToDateProbe
	clock    ports.Clock
	tracer   ports.Tracer
}

// NewRescanGate creates a new RescanGate.
func NewRescanGate(
	registry *Registry,
	loader *Loader,
	probe ports.UpToDateProbe,
	clock ports.Clock,
	tracer ports.Tracer,
) *RescanGate {
	return &RescanGate{
		registry: registry,
		loader:   loader,
		prober:   probe,
		clock:    clock,
		tracer:   tracer,
	}
}

// BringUpToDate probes the active Config when its rescan interval has elapsed
// and reloads it when stale. A nil error means the active Config is current;
// with StateStale a non-nil error means the reload failed and the previous
// Config is still active.
func (g *RescanGate) BringUpToDate(ctx context.Context) (State, error) {
	cfg := g.registry.Current()
	if cfg == nil {
		return StateDisabled, domain.ErrNotInitialized
	}
	if cfg.RescanInterval == 0 {
		return StateDisabled, nil
	}

	now := g.clock.Now()
	if now.Before(cfg.RescanTime.Add(cfg.RescanInterval)) {
		return StateNotDue, nil
	}

	return g.evaluate(ctx, cfg, now)
}

// Check probes the active Config immediately, ignoring the rescan interval,
// and reloads it when stale. A zero interval still disables it.
func (g *RescanGate) Check(ctx context.Context) (State, error) {
	cfg := g.registry.Current()
	if cfg == nil {
		return StateDisabled, domain.ErrNotInitialized
	}
	if cfg.RescanInterval == 0 {
		return StateDisabled, nil
	}
	return g.evaluate(ctx, cfg, g.clock.Now())
}

func (g *RescanGate) evaluate(ctx context.Context, cfg *domain.Config, now time.Time) (State, error) {
	ctx, span := g.tracer.Start(ctx, "bring_up_to_date", ports.WithAttribute("config.id", cfg.ID))
	defer span.End()

	if g.prober.UpToDate(cfg) {
		cfg.RescanTime = now
		span.SetAttribute("state", StateFresh.String())
		return StateFresh, nil
	}

	span.SetAttribute("state", StateStale.String())
	if err := g.Reinitialize(ctx); err != nil {
		span.RecordError(err)
		return StateStale, err
	}
	return StateStale, nil
}

// Reinitialize loads a new Config and installs it only if loading succeeds.
// On failure the active Config is left untouched.
func (g *RescanGate) Reinitialize(ctx context.Context) error {
	cfg, err := g.loader.LoadConfigAndFonts(ctx)
	if err != nil {
		return err
	}
	g.registry.SetCurrent(cfg)
	return nil
}
