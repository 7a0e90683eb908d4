package lifecycle

import (
	"context"

	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/fontconf/internal/core/ports"
)

// Registry holds the active Config.
type Registry struct {
	loader     *Loader
	finalizers []ports.Finalizer
	current    *domain.Config
}

// NewRegistry creates an empty Registry. The finalizers run on Teardown.
func NewRegistry(loader *Loader, finalizers ...ports.Finalizer) *Registry {
	return &Registry{
		loader:     loader,
		finalizers: finalizers,
	}
}

// SetCurrent installs cfg and destroys the previously active Config.
func (r *Registry) SetCurrent(cfg *domain.Config) {
	if cfg == r.current {
		return
	}
	prev := r.current
	r.current = cfg
	prev.Destroy()
}

// Current returns the active Config, or nil before the first installation.
func (r *Registry) Current() *domain.Config {
	return r.current
}

// Init loads and installs a Config unless one is already active.
func (r *Registry) Init(ctx context.Context) error {
	if r.current != nil {
		return nil
	}

	cfg, err := r.loader.LoadConfigAndFonts(ctx)
	if err != nil {
		return err
	}
	r.SetCurrent(cfg)
	return nil
}

// Teardown destroys the active Config and releases collaborator state.
func (r *Registry) Teardown() {
	r.SetCurrent(nil)
	for _, f := range r.finalizers {
		f.Fini()
	}
}
