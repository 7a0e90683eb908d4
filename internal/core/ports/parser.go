// Package ports defines the interfaces the font configuration lifecycle depends on.
package ports

import "go.trai.ch/fontconf/internal/core/domain"

// Parser turns the default configuration source into a Config.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	// ParseDefault reads the default configuration source.
	// On failure the returned Config, if any, is partial and must be destroyed by the caller.
	ParseDefault() (*domain.Config, error)
}
