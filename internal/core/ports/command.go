// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/provision/internal/core/domain"
)

// Command is the contract every command kind implements.
// Implementations are stateless between invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=command.go -destination=mocks/mock_command.go -package=mocks
type Command interface {
	Install(ctx context.Context, args domain.Value, cfg domain.CommandConfig, progress Progress) error
	Update(ctx context.Context, args domain.Value, cfg domain.CommandConfig, progress Progress) error
	Uninstall(ctx context.Context, args domain.Value, cfg domain.CommandConfig, progress Progress) error
}

// CommandRegistry resolves command names to implementations.
type CommandRegistry interface {
	// Lookup returns the command registered under name.
	// An unknown name yields domain.ErrUnknownCommand.
	Lookup(name string) (Command, error)
	// Names returns the registered command names in sorted order.
	Names() []string
}
