// Package selector implements the interactive task picker.
package selector

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/zerr"
)

// Selector implements ports.TaskSelector with a huh select form.
type Selector struct {
	in  io.Reader
	out io.Writer
}

// New creates a Selector reading keys from stdin and drawing on stderr.
func New() ports.TaskSelector {
	return NewSelector(os.Stdin, os.Stderr)
}

// NewSelector creates a Selector on the given terminal streams.
func NewSelector(in io.Reader, out io.Writer) *Selector {
	return &Selector{in: in, out: out}
}

// Select shows names as a single-choice list, defaulting to the first entry.
// Aborting the form counts as no selection.
func (s *Selector) Select(ctx context.Context, names []string) (string, error) {
	if len(names) == 0 {
		return "", domain.ErrNoTaskSelected
	}

	options := make([]huh.Option[string], len(names))
	for i, name := range names {
		options[i] = huh.NewOption(name, name)
	}

	selected := names[0]
	field := huh.NewSelect[string]().
		Title("Select a task:").
		Options(options...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(field)).
		WithInput(s.in).
		WithOutput(s.out)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", domain.ErrNoTaskSelected
		}
		return "", zerr.Wrap(err, "task selection failed")
	}

	if selected == "" {
		return "", domain.ErrNoTaskSelected
	}
	return selected, nil
}
