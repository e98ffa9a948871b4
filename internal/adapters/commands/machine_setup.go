package commands

import (
	"context"

	"go.trai.ch/provision/internal/adapters/fs"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/provision/internal/core/validation"
)

const (
	argConfig = "config"
	argTask   = "task"
)

// NestedRunner runs another config file in the given mode.
// An empty task runs every task of that config.
type NestedRunner interface {
	RunNested(ctx context.Context, mode domain.Mode, configPath, task string) error
}

// MachineSetup runs a nested config file.
type MachineSetup struct {
	modeCommand
	runner NestedRunner
}

var _ ports.Command = (*MachineSetup)(nil)

// NewMachineSetup creates the machine_setup command.
func NewMachineSetup(runner NestedRunner) *MachineSetup {
	m := &MachineSetup{runner: runner}
	m.modeCommand = modeCommand{run: m.execute}
	return m
}

func (m *MachineSetup) execute(ctx context.Context, mode domain.Mode, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error {
	err := validation.ValidateNamedArgs(args,
		validation.Arg(argConfig, validation.Required(), validation.IsString()),
		validation.Arg(argTask, validation.IsString()),
	)
	if err != nil {
		return err
	}

	path, err := fs.ExpandPath(fs.RelativeTo(cfg.ConfigDir, stringArg(args, argConfig)), false)
	if err != nil {
		return err
	}

	task := stringArg(args, argTask)
	msg := "Running " + mode.String() + " of " + path
	if task != "" {
		msg += " (task " + task + ")"
	}
	progress.SetMessage(msg + " ...")

	return m.runner.RunNested(ctx, mode, path, task)
}
