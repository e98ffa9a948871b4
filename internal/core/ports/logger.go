package ports

import "go.trai.ch/provision/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
	// SetLevel sets the minimum level that is written.
	SetLevel(level domain.LogLevel)
	// Level returns the minimum level that is written.
	Level() domain.LogLevel
	// AtLeast returns a logger on the same output whose minimum level is
	// the higher of level and the current one. The receiver is unchanged.
	AtLeast(level domain.LogLevel) Logger
}
