// Package main is the entry point for the provision tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/provision/cmd/provision/commands"
	"go.trai.ch/provision/internal/adapters/detector"
	"go.trai.ch/provision/internal/adapters/logger"
	"go.trai.ch/provision/internal/app"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	_ "go.trai.ch/provision/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = components.Telemetry.Close()
	}()

	// 2. Interface - CLI
	log := &logControl{logger: components.Logger}
	cli := commands.New(components.App, log)

	// 3. Execution
	err = cli.Execute(ctx)
	if log.mode == detector.ModePretty {
		_ = components.Telemetry.Summarize(os.Stderr)
	}
	if err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}

// logControl applies the logging flags to the shared logger and remembers
// the output mode for the end-of-run summary.
type logControl struct {
	logger ports.Logger
	mode   detector.OutputMode
}

func (c *logControl) SetOutputMode(mode detector.OutputMode) {
	c.mode = mode
	if l, ok := c.logger.(*logger.Logger); ok {
		l.SetJSON(mode == detector.ModeJSON)
	}
}

func (c *logControl) SetLevel(level domain.LogLevel) {
	c.logger.SetLevel(level)
}
