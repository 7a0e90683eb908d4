package lifecycle

import (
	"go.trai.ch/fontconf/internal/core/domain"
)

// ensureCacheDirs gives a Config with no cache directories the default cache
// directory followed by the per-user one. Any failure discards cfg and
// yields the fallback Config.
func (l *Loader) ensureCacheDirs(cfg *domain.Config) (*domain.Config, error) {
	if len(cfg.CacheDirs()) > 0 {
		return cfg, nil
	}

	l.logger.Warn("no cache directories configured; check configuration")
	l.logger.Warn("adding cache directory " + l.defaults.CacheDir)

	home, err := l.cacheHome.CacheHome()
	if err != nil {
		return l.fallbackFrom(cfg)
	}
	if err := cfg.AddCacheDir(l.defaults.CacheDir); err != nil {
		return l.fallbackFrom(cfg)
	}
	if err := cfg.AddCacheDir(domain.UserCacheDir(home)); err != nil {
		return l.fallbackFrom(cfg)
	}
	return cfg, nil
}
