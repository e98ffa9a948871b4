// Package shell materialises and runs the scripts generated by the run
// command, and runs helper processes such as git.
package shell

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.trai.ch/provision/internal/adapters/fs"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/provision/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// lineErrInfo matches the "<script>: line N: " prefix shells put on errors.
var lineErrInfo = regexp.MustCompile(`^[^:]*: line \d+: `)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// RunScript writes script to <temp_dir>/<uuid>.sh and runs it with
// `<shell> -c <path>`. Stdout lines are forwarded to progress; stderr lines
// are stripped of line info, forwarded and collected. Any collected stderr
// line fails the run even when the exit status is zero.
func (e *Executor) RunScript(ctx context.Context, script domain.Script, progress ports.Progress) error {
	path, err := writeScript(script)
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			e.logger.Warn("failed to remove script " + path + ": " + err.Error())
		}
	}()

	shell := script.Shell
	if shell == "" {
		shell = domain.ShellBash
	}

	cmd := exec.CommandContext(ctx, shell.String(), "-c", path) //nolint:gosec // user provided script
	cmd.Dir = script.Dir
	cmd.Env = resolveEnvironment(os.Environ(), script.Env)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stdout")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stderr")
	}

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start shell"), "shell", shell.String())
	}

	var errLines []string
	var wg sync.WaitGroup
	wg.Go(func() {
		scanLines(stdout, func(line string) {
			progress.SetMessage(style.Arrow + " " + line)
		})
	})
	wg.Go(func() {
		scanLines(stderr, func(line string) {
			raw := StripLineErrInfo(line)
			if raw == "" {
				return
			}
			progress.SetMessage(style.Cross + " " + raw)
			errLines = append(errLines, raw)
		})
	})
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			return zerr.With(
				zerr.Wrap(domain.ErrCommandExited, "Err: Exited with "+strconv.Itoa(code)),
				"exit_code", code,
			)
		}
		return zerr.Wrap(err, "failed to run script")
	}

	if len(errLines) > 0 {
		return zerr.Wrap(domain.ErrCommandExited, "Command exited with errors: \n"+strings.Join(errLines, "\n"))
	}

	return nil
}

// Exec runs name with args in dir and returns its trimmed stdout.
func (e *Executor) Exec(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // fixed helper binaries
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = name + " failed"
		}
		return "", zerr.With(zerr.With(zerr.Wrap(err, msg), "exit_code", exitCode), "command", name)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// StripLineErrInfo removes the script path and line number shells prefix
// to error output.
func StripLineErrInfo(line string) string {
	return lineErrInfo.ReplaceAllString(line, "")
}

func writeScript(script domain.Script) (string, error) {
	dir, err := fs.ExpandPath(script.TempDir, true)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = os.TempDir()
	}

	path := filepath.Join(dir, uuid.NewString()+".sh")
	if err := os.WriteFile(path, []byte(script.Body()), 0o755); err != nil { //nolint:gosec // scripts must be executable
		return "", zerr.With(zerr.Wrap(err, "failed to write script"), "path", path)
	}
	// WriteFile is subject to the umask.
	if err := os.Chmod(path, 0o755); err != nil { //nolint:gosec // scripts must be executable
		return "", zerr.With(zerr.Wrap(err, "failed to make script executable"), "path", path)
	}
	return path, nil
}

func scanLines(r io.Reader, fn func(string)) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	// Drain the rest so the process never blocks on a full pipe.
	_, _ = io.Copy(io.Discard, r)
}

// resolveEnvironment overlays the script environment on the system one.
// The result applies to the subprocess only.
func resolveEnvironment(sysEnv []string, scriptEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(scriptEnv))
	order := make([]string, 0, len(sysEnv)+len(scriptEnv))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, k := range slices.Sorted(maps.Keys(scriptEnv)) {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = scriptEnv[k]
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
