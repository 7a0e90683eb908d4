package ports

import (
	"context"

	"go.trai.ch/fontconf/internal/core/domain"
)

// Builder populates the font database of a Config from its font directories.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Build scans the Config's font directories and stores the result in the Config.
	// It records every path it depends on with Config.Track.
	Build(ctx context.Context, cfg *domain.Config) error
}
