package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/provision/internal/adapters/commands"            //nolint:depguard // Wired in app layer
	"go.trai.ch/provision/internal/adapters/config"              //nolint:depguard // Wired in app layer
	"go.trai.ch/provision/internal/adapters/history"             //nolint:depguard // Wired in app layer
	"go.trai.ch/provision/internal/adapters/logger"              //nolint:depguard // Wired in app layer
	"go.trai.ch/provision/internal/adapters/selector"            //nolint:depguard // Wired in app layer
	"go.trai.ch/provision/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/provision/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			scheduler.NodeID,
			history.NodeID,
			commands.NodeID,
			selector.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			sched, err := graft.Dep[*scheduler.Scheduler](ctx)
			if err != nil {
				return nil, err
			}

			factory, err := graft.Dep[ports.HistoryFactory](ctx)
			if err != nil {
				return nil, err
			}

			registry, err := graft.Dep[*commands.Registry](ctx)
			if err != nil {
				return nil, err
			}

			picker, err := graft.Dep[ports.TaskSelector](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, sched, factory, registry, picker, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
