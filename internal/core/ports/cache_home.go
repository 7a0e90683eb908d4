package ports

// CacheHomeResolver locates the per-user cache home directory.
//
//go:generate mockgen -source=cache_home.go -destination=mocks/mock_cache_home.go -package=mocks
type CacheHomeResolver interface {
	// CacheHome returns an absolute path, or an error when none can be determined.
	CacheHome() (string, error)
}
