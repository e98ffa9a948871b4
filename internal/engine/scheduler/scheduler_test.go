package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/provision/internal/core/ports/mocks"
	"go.trai.ch/provision/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type harness struct {
	ctrl      *gomock.Controller
	registry  *mocks.MockCommandRegistry
	telemetry *mocks.MockTelemetry
	vertex    *mocks.MockVertex
	logger    *mocks.MockLogger
	ledger    *mocks.MockHistoryStore
	commands  map[string]ports.Command
	scheduler *scheduler.Scheduler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		ctrl:      ctrl,
		registry:  mocks.NewMockCommandRegistry(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		vertex:    mocks.NewMockVertex(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		ledger:    mocks.NewMockHistoryStore(ctrl),
		commands:  map[string]ports.Command{},
	}

	h.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, h.vertex
		}).AnyTimes()
	h.registry.EXPECT().Lookup(gomock.Any()).
		DoAndReturn(func(name string) (ports.Command, error) {
			cmd, ok := h.commands[name]
			if !ok {
				return nil, domain.ErrUnknownCommand
			}
			return cmd, nil
		}).AnyTimes()

	h.scheduler = scheduler.NewScheduler(h.registry, h.telemetry, h.logger)
	h.scheduler.SetCurrentOS(domain.OSLinux)
	return h
}

// quiet accepts any log and vertex traffic.
func (h *harness) quiet() {
	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Error(gomock.Any()).AnyTimes()
	h.vertex.EXPECT().SetMessage(gomock.Any()).AnyTimes()
	h.vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	h.vertex.EXPECT().Skipped().AnyTimes()
}

func (h *harness) command(name string) *mocks.MockCommand {
	cmd := mocks.NewMockCommand(h.ctrl)
	h.commands[name] = cmd
	return cmd
}

func task(name string, parallel bool, commands ...string) domain.Task {
	t := domain.Task{Name: name, Parallel: parallel}
	for _, c := range commands {
		t.Commands = append(t.Commands, domain.Command{Name: c, Args: domain.Map(nil)})
	}
	return t
}

func TestRunTask_SkipsOnOSMismatch(t *testing.T) {
	h := newHarness(t)
	h.logger.EXPECT().Info(`Skipping task "win" due to OS condition`)
	h.vertex.EXPECT().Skipped()

	tk := task("win", false, "run")
	tk.OS = []domain.OS{domain.OSWindows}

	result := h.scheduler.RunTask(t.Context(), &tk, domain.ModeInstall, domain.CommandConfig{})

	assert.Equal(t, domain.StatusSkipped, result.Status)
	assert.Empty(t, result.Failures)
}

func TestRunTask_RunsOnListedOS(t *testing.T) {
	h := newHarness(t)
	h.quiet()
	h.command("run").EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	tk := task("t", false, "run")
	tk.OS = []domain.OS{domain.OSMacOS, domain.OSLinux}

	result := h.scheduler.RunTask(t.Context(), &tk, domain.ModeInstall, domain.CommandConfig{})
	assert.Equal(t, domain.StatusSucceeded, result.Status)
}

func TestRunTask_FailureDoesNotStopSiblings(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		t.Run(map[bool]string{false: "sequential", true: "parallel"}[parallel], func(t *testing.T) {
			h := newHarness(t)
			h.quiet()

			h.command("fail").EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("boom"))
			h.command("succeed").EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil)

			tk := task("t", parallel, "fail", "succeed")
			result := h.scheduler.RunTask(t.Context(), &tk, domain.ModeInstall, domain.CommandConfig{})

			assert.Equal(t, domain.StatusFailed, result.Status)
			if diff := cmp.Diff([]domain.Failure{{Unit: "fail", Message: "boom"}}, result.Failures); diff != "" {
				t.Errorf("failures mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunTask_UnknownCommandIsPerCommandFailure(t *testing.T) {
	h := newHarness(t)
	h.quiet()
	h.command("run").EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	tk := task("t", false, "_nope_", "run")
	result := h.scheduler.RunTask(t.Context(), &tk, domain.ModeInstall, domain.CommandConfig{})

	require.Equal(t, domain.StatusFailed, result.Status)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "_nope_", result.Failures[0].Unit)
}

func TestRunTask_DispatchesByMode(t *testing.T) {
	cfg := domain.CommandConfig{ConfigDir: "/cfg", TempDir: "/tmp/p", DefaultShell: domain.ShellZsh}
	args := domain.Map(map[string]domain.Value{"commands": domain.String("echo ok")})

	for _, mode := range domain.Modes {
		t.Run(mode.String(), func(t *testing.T) {
			h := newHarness(t)
			h.quiet()
			cmd := h.command("run")

			switch mode {
			case domain.ModeInstall:
				cmd.EXPECT().Install(gomock.Any(), args, cfg, gomock.Any()).Return(nil)
			case domain.ModeUpdate:
				cmd.EXPECT().Update(gomock.Any(), args, cfg, gomock.Any()).Return(nil)
			case domain.ModeUninstall:
				cmd.EXPECT().Uninstall(gomock.Any(), args, cfg, gomock.Any()).Return(nil)
			}

			tk := domain.Task{Name: "t", Commands: []domain.Command{{Name: "run", Args: args}}}
			result := h.scheduler.RunTask(t.Context(), &tk, mode, cfg)
			assert.Equal(t, domain.StatusSucceeded, result.Status)
		})
	}
}

func TestRunTask_ProgressReachesVertexAndLog(t *testing.T) {
	h := newHarness(t)
	h.logger.EXPECT().Info("Running task t ...")
	h.logger.EXPECT().Debug("→ hello")
	h.logger.EXPECT().Info("run: OK")
	h.vertex.EXPECT().SetMessage("→ hello")
	h.vertex.EXPECT().Complete(nil)

	h.command("run").EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Value, _ domain.CommandConfig, p ports.Progress) error {
			p.SetMessage("→ hello")
			return nil
		})

	tk := task("t", false, "run")
	result := h.scheduler.RunTask(t.Context(), &tk, domain.ModeInstall, domain.CommandConfig{})
	assert.Equal(t, domain.StatusSucceeded, result.Status)
}

func TestRunTask_VertexMayReenterProgress(t *testing.T) {
	h := newHarness(t)
	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.vertex.EXPECT().Complete(nil)

	var progress ports.Progress
	h.vertex.EXPECT().SetMessage("outer").Do(func(string) {
		progress.SetMessage("inner")
	})
	h.vertex.EXPECT().SetMessage("inner")

	h.command("run").EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Value, _ domain.CommandConfig, p ports.Progress) error {
			progress = p
			p.SetMessage("outer")
			return nil
		})

	tk := task("t", false, "run")
	result := h.scheduler.RunTask(t.Context(), &tk, domain.ModeInstall, domain.CommandConfig{})
	assert.Equal(t, domain.StatusSucceeded, result.Status)
}

func TestRunTask_SequentialKeepsOrder(t *testing.T) {
	h := newHarness(t)
	h.quiet()

	var order []string
	for _, name := range []string{"copy", "symlink", "run"} {
		h.command(name).EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, domain.Value, domain.CommandConfig, ports.Progress) error {
				order = append(order, name)
				return nil
			})
	}

	tk := task("t", false, "copy", "symlink", "run")
	h.scheduler.RunTask(t.Context(), &tk, domain.ModeInstall, domain.CommandConfig{})

	assert.Equal(t, []string{"copy", "symlink", "run"}, order)
}

func TestRunTask_ParallelCommandsOverlap(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t)
		h.quiet()

		var started sync.WaitGroup
		started.Add(2)
		release := make(chan struct{})
		block := func(context.Context, domain.Value, domain.CommandConfig, ports.Progress) error {
			started.Done()
			<-release
			return nil
		}
		h.command("a").EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(block)
		h.command("b").EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(block)

		// Both commands must be in flight at once for the release to happen.
		go func() {
			started.Wait()
			close(release)
		}()

		tk := task("t", true, "a", "b")
		result := h.scheduler.RunTask(t.Context(), &tk, domain.ModeInstall, domain.CommandConfig{})
		assert.Equal(t, domain.StatusSucceeded, result.Status)
	})
}

func TestRun_TaskNotFound(t *testing.T) {
	h := newHarness(t)
	h.quiet()

	list := &domain.TaskList{Tasks: []domain.Task{task("t", false, "run")}}
	_, err := h.scheduler.Run(t.Context(), list, domain.ModeInstall, "ghost", h.ledger)

	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Contains(t, err.Error(), "ghost")
	assert.Contains(t, err.Error(), "not found")
}

func TestRun_SingleTask(t *testing.T) {
	t.Run("success records ledger", func(t *testing.T) {
		h := newHarness(t)
		h.quiet()
		h.command("run").EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		h.ledger.EXPECT().UpdateEntry(domain.ModeInstall, "t").Return(nil)

		list := &domain.TaskList{Tasks: []domain.Task{task("other", false, "nope"), task("t", false, "run")}}
		report, err := h.scheduler.Run(t.Context(), list, domain.ModeInstall, "t", h.ledger)

		require.NoError(t, err)
		require.Len(t, report.Results, 1)
		assert.Equal(t, domain.StatusSucceeded, report.Results[0].Status)
	})

	t.Run("failure leaves ledger untouched", func(t *testing.T) {
		h := newHarness(t)
		h.quiet()
		h.command("run").EXPECT().Uninstall(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("exit 1"))

		list := &domain.TaskList{Tasks: []domain.Task{task("t", false, "run")}}
		_, err := h.scheduler.Run(t.Context(), list, domain.ModeUninstall, "t", h.ledger)

		require.ErrorIs(t, err, domain.ErrTaskFailed)
		assert.Contains(t, err.Error(), "Task t failed")
	})
}

func TestRun_AggregatesFailures(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		t.Run(map[bool]string{false: "sequential", true: "parallel"}[parallel], func(t *testing.T) {
			h := newHarness(t)
			h.quiet()

			h.command("fail").EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("boom")).Times(2)
			h.command("ok").EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil)
			h.ledger.EXPECT().UpdateEntry(domain.ModeInstall, "B").Return(nil)

			list := &domain.TaskList{
				Parallel:   parallel,
				NumThreads: 4,
				Tasks: []domain.Task{
					task("A", false, "fail"),
					task("B", false, "ok"),
					task("C", false, "fail"),
				},
			}
			report, err := h.scheduler.Run(t.Context(), list, domain.ModeInstall, "", h.ledger)

			require.ErrorIs(t, err, domain.ErrTasksFailed)
			assert.Equal(t, "Errors occurred in 2 tasks:\n> A\n> C", err.Error())
			assert.Equal(t, []string{"A", "C"}, report.FailedTasks())
			assert.Equal(t, 1, report.Count(domain.StatusSucceeded))
		})
	}
}

func TestRun_SkippedTasksAreNotRecorded(t *testing.T) {
	h := newHarness(t)
	h.quiet()
	h.command("run").EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	h.ledger.EXPECT().UpdateEntry(domain.ModeInstall, "linux").Return(nil)

	win := task("win", false, "run")
	win.OS = []domain.OS{domain.OSWindows}
	list := &domain.TaskList{Tasks: []domain.Task{win, task("linux", false, "run")}}

	report, err := h.scheduler.Run(t.Context(), list, domain.ModeInstall, "", h.ledger)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(domain.StatusSkipped))
}

func TestRun_LedgerErrorIsReturned(t *testing.T) {
	h := newHarness(t)
	h.quiet()
	h.command("run").EXPECT().Install(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	h.ledger.EXPECT().UpdateEntry(domain.ModeInstall, "t").Return(errors.New("read-only file system"))

	list := &domain.TaskList{Tasks: []domain.Task{task("t", false, "run")}}
	_, err := h.scheduler.Run(t.Context(), list, domain.ModeInstall, "", h.ledger)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update history")
}

func TestRun_ParallelTasksOverlap(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := newHarness(t)
		h.quiet()
		h.ledger.EXPECT().UpdateEntry(domain.ModeUpdate, gomock.Any()).Return(nil).Times(3)

		var started sync.WaitGroup
		started.Add(3)
		release := make(chan struct{})
		h.command("run").EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, domain.Value, domain.CommandConfig, ports.Progress) error {
				started.Done()
				<-release
				return nil
			}).Times(3)

		go func() {
			started.Wait()
			close(release)
		}()

		list := &domain.TaskList{
			Parallel:   true,
			NumThreads: 8,
			Tasks:      []domain.Task{task("a", false, "run"), task("b", false, "run"), task("c", false, "run")},
		}
		report, err := h.scheduler.Run(t.Context(), list, domain.ModeUpdate, "", h.ledger)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, []string{report.Results[0].Task, report.Results[1].Task, report.Results[2].Task})
	})
}
