// Package scheduler implements the task execution engine and the run orchestrator.
package scheduler

import (
	"context"
	"sync"

	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Scheduler dispatches the commands of tasks through the command registry.
type Scheduler struct {
	registry  ports.CommandRegistry
	telemetry ports.Telemetry
	logger    ports.Logger
	currentOS domain.OS
}

// NewScheduler creates a new Scheduler gating tasks on the host platform.
func NewScheduler(
	registry ports.CommandRegistry,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		registry:  registry,
		telemetry: telemetry,
		logger:    logger,
		currentOS: domain.CurrentOS(),
	}
}

// WithLogger returns a copy of s that logs through logger.
func (s *Scheduler) WithLogger(logger ports.Logger) *Scheduler {
	c := *s
	c.logger = logger
	return &c
}

// RunTask runs every command of task in mode. Command failures are collected
// and never stop sibling commands. A task excluded by the OS gate is
// reported as skipped without dispatching anything.
func (s *Scheduler) RunTask(
	ctx context.Context,
	task *domain.Task,
	mode domain.Mode,
	cfg domain.CommandConfig,
) domain.TaskResult {
	ctx, vertex := s.telemetry.Record(ctx, task.Name)

	if domain.ShouldSkip(task, s.currentOS) {
		s.logger.Info(`Skipping task "` + task.Name + `" due to OS condition`)
		vertex.Skipped()
		return domain.TaskResult{Task: task.Name, Status: domain.StatusSkipped}
	}

	s.logger.Info("Running task " + task.Name + " ...")

	progress := &taskProgress{vertex: vertex, logger: s.logger}
	acc := &failures{}

	workers := 1
	if task.Parallel {
		workers = max(1, len(task.Commands))
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, cmd := range task.Commands {
		g.Go(func() error {
			if err := s.dispatch(ctx, cmd, mode, cfg, progress); err != nil {
				acc.add(cmd.Name, err)
				s.logger.Warn(cmd.Name + ": ERROR")
				s.logger.Error(zerr.With(zerr.With(zerr.Wrap(err, ""), "task", task.Name), "command", cmd.Name))
				return nil
			}
			s.logger.Info(cmd.Name + ": OK")
			return nil
		})
	}
	_ = g.Wait()

	result := domain.TaskResult{Task: task.Name, Status: domain.StatusSucceeded}
	if list := acc.list(); len(list) > 0 {
		result.Status = domain.StatusFailed
		result.Failures = list
		vertex.Complete(zerr.With(zerr.Wrap(domain.ErrTaskFailed, "Task "+task.Name+" failed"), "task", task.Name))
		return result
	}

	vertex.Complete(nil)
	return result
}

func (s *Scheduler) dispatch(
	ctx context.Context,
	cmd domain.Command,
	mode domain.Mode,
	cfg domain.CommandConfig,
	progress ports.Progress,
) error {
	impl, err := s.registry.Lookup(cmd.Name)
	if err != nil {
		return err
	}

	switch mode {
	case domain.ModeInstall:
		return impl.Install(ctx, cmd.Args, cfg, progress)
	case domain.ModeUpdate:
		return impl.Update(ctx, cmd.Args, cfg, progress)
	case domain.ModeUninstall:
		return impl.Uninstall(ctx, cmd.Args, cfg, progress)
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidMode, "Invalid mode: "+mode.String()), "mode", mode.String())
	}
}

// Run executes list in mode. With taskName set only that task runs and its
// outcome is the run's outcome. Otherwise every task runs and the error, if
// any, names every failed task in task order.
//
// The ledger is updated for successful tasks only. A ledger write failure
// aborts nothing but is returned alongside the task errors.
func (s *Scheduler) Run(
	ctx context.Context,
	list *domain.TaskList,
	mode domain.Mode,
	taskName string,
	ledger ports.HistoryStore,
) (*domain.RunReport, error) {
	cfg := list.CommandConfig()
	report := &domain.RunReport{Mode: mode}

	s.logger.Info(banner(mode))

	if taskName != "" {
		task, ok := list.Find(taskName)
		if !ok {
			return report, zerr.With(
				zerr.Wrap(domain.ErrTaskNotFound, "Task "+taskName+" not found"),
				"task", taskName,
			)
		}

		result := s.RunTask(ctx, task, mode, cfg)
		report.Results = []domain.TaskResult{result}

		if result.Failed() {
			return report, zerr.With(zerr.Wrap(domain.ErrTaskFailed, "Task "+taskName+" failed"), "task", taskName)
		}
		if result.Status == domain.StatusSucceeded {
			if err := ledger.UpdateEntry(mode, task.Name); err != nil {
				return report, zerr.With(zerr.Wrap(err, "failed to update history"), "task", task.Name)
			}
		}
		return report, nil
	}

	workers := 1
	if list.Parallel {
		workers = max(1, min(list.NumThreads, len(list.Tasks)))
	}

	results := make([]domain.TaskResult, len(list.Tasks))
	var (
		mu        sync.Mutex
		ledgerErr error
	)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range list.Tasks {
		task := &list.Tasks[i]
		g.Go(func() error {
			result := s.RunTask(ctx, task, mode, cfg)
			results[i] = result

			if result.Status != domain.StatusSucceeded {
				return nil
			}
			if err := ledger.UpdateEntry(mode, task.Name); err != nil {
				mu.Lock()
				if ledgerErr == nil {
					ledgerErr = zerr.With(zerr.Wrap(err, "failed to update history"), "task", task.Name)
				}
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Results = results

	if failed := report.FailedTasks(); len(failed) > 0 {
		return report, &domain.TasksFailedError{Tasks: failed}
	}

	return report, ledgerErr
}

func banner(mode domain.Mode) string {
	switch mode {
	case domain.ModeUpdate:
		return "Updating..."
	case domain.ModeUninstall:
		return "Uninstalling..."
	default:
		return "Installing..."
	}
}

// failures is the per-task accumulator shared by command workers.
type failures struct {
	mu    sync.Mutex
	items []domain.Failure
}

func (f *failures) add(unit string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, domain.Failure{Unit: unit, Message: err.Error()})
}

func (f *failures) list() []domain.Failure {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items
}

// taskProgress fans progress messages out to the task's vertex and the debug log.
// Both sinks are safe for concurrent use, so no lock is held across the calls.
type taskProgress struct {
	vertex ports.Vertex
	logger ports.Logger
}

func (p *taskProgress) SetMessage(msg string) {
	p.vertex.SetMessage(msg)
	p.logger.Debug(msg)
}
