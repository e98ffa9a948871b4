// Package app implements the application layer for provision.
package app

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/provision/internal/adapters/commands"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/provision/internal/engine/scheduler"
	"go.trai.ch/provision/internal/ui/output"
	"go.trai.ch/provision/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ commands.NestedRunner = (*App)(nil)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scheduler    *scheduler.Scheduler
	history      ports.HistoryFactory
	selector     ports.TaskSelector
	logger       ports.Logger
}

// New creates a new App instance and registers the machine_setup command,
// which runs nested config files through the App.
func New(
	loader ports.ConfigLoader,
	sched *scheduler.Scheduler,
	history ports.HistoryFactory,
	registry *commands.Registry,
	selector ports.TaskSelector,
	log ports.Logger,
) *App {
	a := &App{
		configLoader: loader,
		scheduler:    sched,
		history:      history,
		selector:     selector,
		logger:       log,
	}
	registry.Register(commands.NameMachineSetup, commands.NewMachineSetup(a))
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	ConfigPath string
	Task       string
	Mode       domain.Mode
	// Select asks for the task interactively when Task is empty.
	Select bool
}

// Run loads the config at opts.ConfigPath and runs its tasks in opts.Mode.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	list, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	task := opts.Task
	if task == "" && opts.Select {
		if task, err = a.selector.Select(ctx, list.Names()); err != nil {
			return err
		}
	}

	ledger, err := a.history.Open(list.TempDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open history"), "path", list.TempDir)
	}

	report, err := a.scheduler.Run(ctx, list, opts.Mode, task, ledger)
	if report != nil && len(report.Results) > 0 {
		a.logger.Info(summary(report))
	}
	return err
}

// RunNested runs the config at configPath in mode on behalf of a
// machine_setup command. The nested run logs warnings and errors only.
func (a *App) RunNested(ctx context.Context, mode domain.Mode, configPath, task string) error {
	log := a.logger.AtLeast(domain.LogLevelWarn)
	nested := &App{
		configLoader: a.configLoader,
		scheduler:    a.scheduler.WithLogger(log),
		history:      a.history,
		selector:     a.selector,
		logger:       log,
	}
	return nested.Run(ctx, RunOptions{ConfigPath: configPath, Task: task, Mode: mode})
}

// List writes the task names of the config at configPath to w in
// declaration order.
func (a *App) List(_ context.Context, configPath string, w io.Writer) error {
	list, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	out := output.New(w)
	rule := out.String(strings.Repeat("-", 32)).Foreground(termenv.RGBColor(string(style.Muted))).String()
	bullet := out.String(style.Bullet).Foreground(termenv.RGBColor(string(style.Accent))).String()

	var sb strings.Builder
	sb.WriteString("\n\tTasks\n\t" + rule + "\n")
	for _, name := range list.Names() {
		sb.WriteString("\t" + bullet + " " + out.String(name).Bold().String() + "\n")
	}
	sb.WriteString("\t" + rule + "\n")

	_, err = out.WriteString(sb.String())
	return err
}

func summary(report *domain.RunReport) string {
	return "Done: " +
		strconv.Itoa(report.Count(domain.StatusSucceeded)) + " succeeded, " +
		strconv.Itoa(report.Count(domain.StatusFailed)) + " failed, " +
		strconv.Itoa(report.Count(domain.StatusSkipped)) + " skipped"
}
