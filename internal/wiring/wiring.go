// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fontconf/internal/adapters/clock"
	_ "go.trai.ch/fontconf/internal/adapters/config"
	_ "go.trai.ch/fontconf/internal/adapters/fs"
	_ "go.trai.ch/fontconf/internal/adapters/logger"
	_ "go.trai.ch/fontconf/internal/adapters/telemetry"
	_ "go.trai.ch/fontconf/internal/adapters/watcher"
	_ "go.trai.ch/fontconf/internal/adapters/xdg"
	// Register app and engine nodes.
	_ "go.trai.ch/fontconf/internal/app"
	_ "go.trai.ch/fontconf/internal/engine/lifecycle"
)
