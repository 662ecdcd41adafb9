// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tide/internal/adapters/config"
	_ "go.trai.ch/tide/internal/adapters/graphstore"
	_ "go.trai.ch/tide/internal/adapters/logger"
	_ "go.trai.ch/tide/internal/adapters/metrics"
	_ "go.trai.ch/tide/internal/adapters/routecache"
	_ "go.trai.ch/tide/internal/adapters/telemetry"
	_ "go.trai.ch/tide/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/tide/internal/app"
	_ "go.trai.ch/tide/internal/engine/builder"
	_ "go.trai.ch/tide/internal/engine/router"
)
