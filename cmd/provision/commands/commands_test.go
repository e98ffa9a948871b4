package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/provision/cmd/provision/commands"
	"go.trai.ch/provision/internal/adapters/detector"
	"go.trai.ch/provision/internal/app"
	"go.trai.ch/provision/internal/build"
	"go.trai.ch/provision/internal/core/domain"
)

type mockApp struct {
	runFunc  func(ctx context.Context, opts app.RunOptions) error
	listFunc func(ctx context.Context, configPath string, w io.Writer) error
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) List(ctx context.Context, configPath string, w io.Writer) error {
	if m.listFunc != nil {
		return m.listFunc(ctx, configPath, w)
	}
	return nil
}

type fakeLog struct {
	mode  detector.OutputMode
	level domain.LogLevel
	calls int
}

func (f *fakeLog) SetOutputMode(mode detector.OutputMode) { f.mode = mode; f.calls++ }
func (f *fakeLog) SetLevel(level domain.LogLevel) { f.level = level }

func TestCommands_Modes(t *testing.T) {
	for _, mode := range domain.Modes {
		t.Run(mode.String(), func(t *testing.T) {
			var captured app.RunOptions
			mock := &mockApp{
				runFunc: func(_ context.Context, opts app.RunOptions) error {
					captured = opts
					return nil
				},
			}

			cli := commands.New(mock, nil)
			cli.SetArgs([]string{mode.String(), "--config", "setup.json", "--task", "zsh"})

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, app.RunOptions{ConfigPath: "setup.json", Task: "zsh", Mode: mode}, captured)
		})
	}
}

func TestCommands_Defaults(t *testing.T) {
	var captured app.RunOptions
	mock := &mockApp{
		runFunc: func(_ context.Context, opts app.RunOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"install"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, commands.DefaultConfigPath, captured.ConfigPath)
	assert.Empty(t, captured.Task)
}

func TestCommands_RunFailure(t *testing.T) {
	mock := &mockApp{
		runFunc: func(_ context.Context, _ app.RunOptions) error {
			return errors.New("simulated error")
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"update"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_List(t *testing.T) {
	var gotPath string
	mock := &mockApp{
		listFunc: func(_ context.Context, configPath string, w io.Writer) error {
			gotPath = configPath
			_, err := io.WriteString(w, "\t|> zsh\n")
			return err
		},
	}

	cli := commands.New(mock, nil)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"list", "-c", "other.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "other.yaml", gotPath)
	assert.Equal(t, "\t|> zsh\n", buf.String())
}

func TestCommands_OutputMode(t *testing.T) {
	tests := []struct {
		flag string
		want detector.OutputMode
	}{
		{flag: "json", want: detector.ModeJSON},
		{flag: "pretty", want: detector.ModePretty},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			log := &fakeLog{}
			cli := commands.New(&mockApp{}, log)
			cli.SetArgs([]string{"list", "--output", tt.flag})

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.want, log.mode)
			assert.Equal(t, 1, log.calls)
		})
	}
}

func TestCommands_LogLevel(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.LogLevel
	}{
		{name: "default", args: []string{"list"}, want: domain.LogLevelInfo},
		{name: "level", args: []string{"list", "--level", "warn"}, want: domain.LogLevelWarn},
		{name: "short level", args: []string{"-l", "error", "list"}, want: domain.LogLevelError},
		{name: "debug", args: []string{"list", "-d"}, want: domain.LogLevelDebug},
		{name: "debug overrides level", args: []string{"list", "-l", "error", "--debug"}, want: domain.LogLevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &fakeLog{level: -100}
			cli := commands.New(&mockApp{}, log)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.want, log.level)
		})
	}
}

func TestCommands_InvalidLogLevel(t *testing.T) {
	cli := commands.New(&mockApp{
		listFunc: func(context.Context, string, io.Writer) error {
			panic("should not be called")
		},
	}, &fakeLog{})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"list", "--level", "loud"})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCommands_Select(t *testing.T) {
	var captured app.RunOptions
	mock := &mockApp{
		runFunc: func(_ context.Context, opts app.RunOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"-s", "uninstall"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, captured.Select)
	assert.Empty(t, captured.Task)
	assert.Equal(t, domain.ModeUninstall, captured.Mode)
}

func TestCommands_NoTaskSelected(t *testing.T) {
	mock := &mockApp{
		runFunc: func(_ context.Context, opts app.RunOptions) error {
			if opts.Select {
				return domain.ErrNoTaskSelected
			}
			return nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"install", "--select"})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrNoTaskSelected)
	assert.Equal(t, "No task selected", err.Error())
}

func TestCommands_RejectsArgs(t *testing.T) {
	cli := commands.New(&mockApp{
		runFunc: func(context.Context, app.RunOptions) error {
			panic("should not be called")
		},
	}, nil)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"install", "extra"})

	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "provision version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())

	cli = commands.New(&mockApp{}, nil)
	buf.Reset()
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "provision version "+build.Version+"\n", buf.String())
}
