package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=selector.go -destination=mocks/mock_selector.go -package=mocks

// TaskSelector asks the user to pick one task by name.
type TaskSelector interface {
	// Select returns the chosen name, or domain.ErrNoTaskSelected when the
	// user makes no choice.
	Select(ctx context.Context, names []string) (string, error)
}
