package ports

import "go.trai.ch/fontconf/internal/core/domain"

// UpToDateProbe reports whether the on-disk state a Config was built from is unchanged.
//
//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type UpToDateProbe interface {
	UpToDate(cfg *domain.Config) bool
}
