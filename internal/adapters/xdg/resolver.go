// Package xdg resolves per-user base directories following the XDG base
// directory specification.
package xdg

import (
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/fontconf/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.CacheHomeResolver = (*Resolver)(nil)
	_ ports.Finalizer         = (*Resolver)(nil)
)

// Resolver implements ports.CacheHomeResolver. The first successfully
// resolved cache home is kept until Fini.
type Resolver struct {
	mu     sync.Mutex
	lookup func() string
	cached string
}

// New creates a Resolver that reads $XDG_CACHE_HOME, falling back to ~/.cache.
func New() *Resolver {
	return NewWithLookup(func() string {
		xdg.Reload()
		return xdg.CacheHome
	})
}

// NewWithLookup creates a Resolver backed by a custom lookup.
func NewWithLookup(lookup func() string) *Resolver {
	return &Resolver{lookup: lookup}
}

// CacheHome returns the per-user cache home.
func (r *Resolver) CacheHome() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != "" {
		return r.cached, nil
	}

	home := r.lookup()
	if home == "" || !filepath.IsAbs(home) {
		return "", zerr.With(domain.ErrCacheHomeUnresolved, "cache_home", home)
	}
	r.cached = filepath.Clean(home)
	return r.cached, nil
}

// Fini forgets the resolved cache home.
func (r *Resolver) Fini() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = ""
}

// RuntimeFile returns the path of name inside the per-user runtime directory,
// creating the directory when needed.
func RuntimeFile(name string) (string, error) {
	xdg.Reload()
	return xdg.RuntimeFile(name)
}

// ConfigHome returns the per-user configuration root.
func ConfigHome() string {
	xdg.Reload()
	return xdg.ConfigHome
}

// Home returns the user's home directory.
func Home() string {
	xdg.Reload()
	return xdg.Home
}
