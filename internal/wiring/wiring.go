// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/restyle/internal/adapters/config"
	_ "go.trai.ch/restyle/internal/adapters/fs"
	_ "go.trai.ch/restyle/internal/adapters/graphcache"
	_ "go.trai.ch/restyle/internal/adapters/logger"
	_ "go.trai.ch/restyle/internal/adapters/stylesheet"
	_ "go.trai.ch/restyle/internal/adapters/telemetry"
	_ "go.trai.ch/restyle/internal/adapters/transform"
	_ "go.trai.ch/restyle/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/restyle/internal/app"
	_ "go.trai.ch/restyle/internal/engine/compiler"
	_ "go.trai.ch/restyle/internal/engine/staleness"
)
