package domain

import (
	"path/filepath"
	"time"
)

const (
	// DefaultFontDir is the compiled-in font directory used by the fallback configuration.
	DefaultFontDir = "/usr/share/fonts"

	// DefaultCacheDir is the compiled-in cache directory.
	DefaultCacheDir = "/var/cache/fontconfig"

	// CacheSubdir is appended to the per-user cache home.
	CacheSubdir = "fontconfig"

	// DefaultRescanInterval applies when the configuration source omits one.
	DefaultRescanInterval = 30 * time.Second

	// AppDirName is the directory below the config roots that holds the fonts file.
	AppDirName = "fontconf"

	// SystemConfigDir is the system-wide configuration root.
	SystemConfigDir = "/etc"

	// ConfigFileYAML is the name of the YAML fonts file.
	ConfigFileYAML = "fonts.yaml"

	// ConfigFileTOML is the name of the TOML fonts file.
	ConfigFileTOML = "fonts.toml"

	// ConfigFileEnv names the environment variable that pins the fonts file.
	ConfigFileEnv = "FONTCONF_FILE"

	// WatchLockFile is the name of the lock that keeps a single watcher per user.
	WatchLockFile = "fontconf-watch.lock"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ConfigFileNames returns the fonts file names in lookup order.
func ConfigFileNames() []string {
	return []string{ConfigFileYAML, ConfigFileTOML}
}

// UserCacheDir returns the per-user cache directory below the given cache home.
func UserCacheDir(cacheHome string) string {
	return filepath.Join(cacheHome, CacheSubdir)
}

// Defaults carries the compiled-in directories used by the fallback configuration
// and the cache directory policy.
type Defaults struct {
	FontDir  string
	CacheDir string
}

// DefaultDirs returns the compiled-in defaults.
func DefaultDirs() Defaults {
	return Defaults{
		FontDir:  DefaultFontDir,
		CacheDir: DefaultCacheDir,
	}
}
