// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/provision/internal/adapters/commands"
	_ "go.trai.ch/provision/internal/adapters/config"
	_ "go.trai.ch/provision/internal/adapters/history"
	_ "go.trai.ch/provision/internal/adapters/logger"
	_ "go.trai.ch/provision/internal/adapters/selector"
	_ "go.trai.ch/provision/internal/adapters/shell"
	_ "go.trai.ch/provision/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/provision/internal/app"
	_ "go.trai.ch/provision/internal/engine/scheduler"
)
