// Package commands implements the command kinds a task can run and the
// registry resolving them by name.
package commands

import (
	"maps"
	"slices"
	"sync"

	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registered command names.
const (
	NameCopy         = "copy"
	NameSymlink      = "symlink"
	NameClone        = "clone"
	NameRun          = "run"
	NameMachineSetup = "machine_setup"
)

var _ ports.CommandRegistry = (*Registry)(nil)

// Registry maps command names to implementations.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]ports.Command
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]ports.Command)}
}

// NewDefaultRegistry creates a Registry holding every built-in command
// except machine_setup, which needs the application to run nested configs.
func NewDefaultRegistry(executor ports.Executor) *Registry {
	r := NewRegistry()
	r.Register(NameCopy, NewCopy())
	r.Register(NameSymlink, NewSymlink())
	r.Register(NameClone, NewClone(executor))
	r.Register(NameRun, NewRun(executor))
	return r
}

// Register binds cmd to name, replacing any previous binding.
func (r *Registry) Register(name string, cmd ports.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[name] = cmd
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (ports.Command, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[name]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownCommand, "Unknown command: "+name), "command", name)
	}
	return cmd, nil
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.commands))
}
