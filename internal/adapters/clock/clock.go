// Package clock provides the system clock.
package clock

import (
	"time"

	"go.trai.ch/fontconf/internal/core/ports"
)

var _ ports.Clock = (*System)(nil)

// System implements ports.Clock with time.Now.
type System struct{}

// New creates a new System clock.
func New() *System {
	return &System{}
}

// Now returns the current time.
func (*System) Now() time.Time {
	return time.Now()
}
