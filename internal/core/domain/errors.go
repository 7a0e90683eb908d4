package domain

import "go.trai.ch/zerr"

var (
	// ErrParseFailed is returned when the configuration source cannot be turned into a Config.
	ErrParseFailed = zerr.New("failed to parse configuration")

	// ErrConfigNotFound is returned when no fonts file exists in any lookup location.
	ErrConfigNotFound = zerr.New("could not find fonts configuration file")

	// ErrConfigReadFailed is returned when the fonts file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the fonts file cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigFormat is returned when the fonts file has an unknown extension.
	ErrUnsupportedConfigFormat = zerr.New("unsupported config file format")

	// ErrIncludeFailed is returned when an include pattern cannot be expanded.
	ErrIncludeFailed = zerr.New("failed to expand include pattern")

	// ErrInvalidRescanInterval is returned when the rescan interval is negative
	// or too large to represent as a time.Duration.
	ErrInvalidRescanInterval = zerr.New("rescan interval out of range")

	// ErrBuildFailed is returned when the font database cannot be populated.
	ErrBuildFailed = zerr.New("failed to build font database")

	// ErrScanFailed is returned when a font directory cannot be read.
	ErrScanFailed = zerr.New("failed to scan font directory")

	// ErrCacheHomeUnresolved is returned when the per-user cache home cannot be determined.
	ErrCacheHomeUnresolved = zerr.New("failed to resolve cache home")

	// ErrInvalidDirectory is returned when an empty or relative directory is appended to a Config.
	ErrInvalidDirectory = zerr.New("directory must be a non-empty absolute path")

	// ErrFallbackUnavailable is returned when the compiled-in defaults cannot form a Config.
	ErrFallbackUnavailable = zerr.New("failed to build fallback configuration")

	// ErrNotInitialized is returned when an operation needs an installed configuration.
	ErrNotInitialized = zerr.New("configuration not initialized")

	// ErrRescanDisabled is returned when watching is requested with a zero rescan interval.
	ErrRescanDisabled = zerr.New("automatic rescans are disabled")

	// ErrWatchLocked is returned when another process already watches for this user.
	ErrWatchLocked = zerr.New("another watcher is already running")

	// ErrWatchFailed is returned when the file system watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to start watcher")
)
