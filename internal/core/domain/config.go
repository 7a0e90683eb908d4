// Package domain holds the core types of the font configuration lifecycle.
package domain

import (
	"maps"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/zerr"
)

// Config is one generation of the font configuration.
//
// A Config is created by the loader, mutated in place while it is being
// assembled and then handed to the registry, which owns it until it is
// replaced or torn down. It is not safe for concurrent use.
type Config struct {
	// ID identifies this generation.
	ID string
	// RescanInterval is the minimum time between staleness checks. Zero disables them.
	RescanInterval time.Duration
	// RescanTime is the time of the last successful staleness evaluation or load.
	RescanTime time.Time

	fontDirs    []string
	cacheDirs   []string
	configFiles []string
	tracked     map[string]int64
	fonts       *FontSet
	destroyed   bool
}

// NewConfig creates an empty Config with the default rescan interval.
func NewConfig() *Config {
	return &Config{
		ID:             uuid.NewString(),
		RescanInterval: DefaultRescanInterval,
		tracked:        make(map[string]int64),
		fonts:          NewFontSet(),
	}
}

// AddFontDir appends a font directory.
func (c *Config) AddFontDir(dir string) error {
	if err := validateDir(dir); err != nil {
		return err
	}
	c.fontDirs = append(c.fontDirs, filepath.Clean(dir))
	return nil
}

// AddCacheDir appends a cache directory.
func (c *Config) AddCacheDir(dir string) error {
	if err := validateDir(dir); err != nil {
		return err
	}
	c.cacheDirs = append(c.cacheDirs, filepath.Clean(dir))
	return nil
}

// FontDirs returns the font directories in declaration order.
func (c *Config) FontDirs() []string {
	return slices.Clone(c.fontDirs)
}

// CacheDirs returns the cache directories in declaration order.
func (c *Config) CacheDirs() []string {
	return slices.Clone(c.cacheDirs)
}

// AddConfigFile records a file that contributed to this Config.
func (c *Config) AddConfigFile(path string) {
	c.configFiles = append(c.configFiles, path)
}

// ConfigFiles returns the files that contributed to this Config, in read order.
func (c *Config) ConfigFiles() []string {
	return slices.Clone(c.configFiles)
}

// Track records the modification time of a path the Config depends on.
// A zero mtime records that the path did not exist.
func (c *Config) Track(path string, mtime int64) {
	if c.tracked == nil {
		c.tracked = make(map[string]int64)
	}
	c.tracked[path] = mtime
}

// Tracked returns a snapshot of every tracked path and its recorded mtime.
func (c *Config) Tracked() map[string]int64 {
	return maps.Clone(c.tracked)
}

// Fonts returns the font database.
func (c *Config) Fonts() *FontSet {
	return c.fonts
}

// SetFonts replaces the font database.
func (c *Config) SetFonts(fonts *FontSet) {
	c.fonts = fonts
}

// Destroy releases the font database and tracking state. It is idempotent.
func (c *Config) Destroy() {
	if c == nil || c.destroyed {
		return
	}
	c.fonts = NewFontSet()
	c.tracked = nil
	c.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (c *Config) Destroyed() bool {
	return c.destroyed
}

func validateDir(dir string) error {
	if dir == "" || !filepath.IsAbs(dir) {
		return zerr.With(ErrInvalidDirectory, "dir", dir)
	}
	return nil
}
