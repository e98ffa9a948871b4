package ports

import (
	"context"

	"go.trai.ch/provision/internal/core/domain"
)

// Executor runs external processes on behalf of commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// RunScript materialises script in its temp dir, runs it with its shell
	// and streams output lines to progress. The environment in script.Env is
	// applied to the subprocess only.
	RunScript(ctx context.Context, script domain.Script, progress Progress) error

	// Exec runs name with args in dir and returns its trimmed stdout.
	Exec(ctx context.Context, dir, name string, args ...string) (string, error)
}
