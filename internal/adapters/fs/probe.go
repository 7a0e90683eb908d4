package fs

import (
	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/fontconf/internal/core/ports"
)

var _ ports.UpToDateProbe = (*MtimeProbe)(nil)

// MtimeProbe implements ports.UpToDateProbe by re-reading the mtime of every
// path a Config tracks.
type MtimeProbe struct{}

// NewMtimeProbe creates a new MtimeProbe.
func NewMtimeProbe() *MtimeProbe {
	return &MtimeProbe{}
}

// UpToDate reports false as soon as one tracked path changed, appeared or vanished.
func (p *MtimeProbe) UpToDate(cfg *domain.Config) bool {
	for path, recorded := range cfg.Tracked() {
		if statMtime(path) != recorded {
			return false
		}
	}
	return true
}
