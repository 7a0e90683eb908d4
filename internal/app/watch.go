package app

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/fontconf/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/fontconf/internal/engine/lifecycle"
	"go.trai.ch/zerr"
)

// Watch keeps the configuration current until ctx is done.
//
// It watches the configuration files and font directories of the active
// configuration and probes after each burst of changes, and additionally
// once per rescan interval. The set of watched paths is fixed when Watch
// starts. Watch may be called once per App.
func (a *App) Watch(ctx context.Context) error {
	if err := a.Init(ctx); err != nil {
		return err
	}

	a.mu.Lock()
	cfg := a.registry.Current()
	interval := cfg.RescanInterval
	roots := append(cfg.ConfigFiles(), cfg.FontDirs()...)
	a.mu.Unlock()

	if interval == 0 {
		return domain.ErrRescanDisabled
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.watcher.Start(ctx, roots...); err != nil {
		return zerr.Wrap(errors.Join(domain.ErrWatchFailed, err), "failed to start watching")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	triggers := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.window, func([]string) {
		select {
		case triggers <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.logger.Info("watching " + cfg.ID)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			a.report(a.BringUpToDate(ctx))
		case <-triggers:
			a.report(a.Check(ctx))
		}
	}
}

func (a *App) report(state lifecycle.State, err error) {
	if err != nil {
		a.logger.Error(err)
		return
	}
	if state == lifecycle.StateStale {
		a.logger.Info("reloaded configuration " + a.Current().ID)
	}
}
