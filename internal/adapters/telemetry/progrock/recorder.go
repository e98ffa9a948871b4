// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/provision/internal/ui/output"
	"go.trai.ch/provision/internal/ui/style"
)

// Recorder implements ports.Telemetry on top of a progrock tape.
type Recorder struct {
	w    progrock.Writer
	tape *progrock.Tape
	rec  *progrock.Recorder
}

// New creates a Recorder writing to a fresh in-memory tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w. Summaries are only available
// when w is a *progrock.Tape.
func NewRecorder(w progrock.Writer) *Recorder {
	tape, _ := w.(*progrock.Tape)
	return &Recorder{
		w:    w,
		tape: tape,
		rec:  progrock.NewRecorder(w),
	}
}

// Record starts a vertex keyed by the digest of name.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Summarize writes one line per recorded vertex in start order, followed by
// the totals. Nothing is written when no vertex was recorded.
func (r *Recorder) Summarize(w io.Writer) error {
	if r.tape == nil || r.tape.TotalCount() == 0 {
		return nil
	}

	out := output.New(w)
	paint := func(s string, c termenv.Color) string {
		return out.String(s).Foreground(c).String()
	}
	green := termenv.RGBColor(string(style.Green))
	red := termenv.RGBColor(string(style.Red))
	yellow := termenv.RGBColor(string(style.Yellow))
	muted := termenv.RGBColor(string(style.Muted))

	var (
		sb                         strings.Builder
		succeeded, failed, skipped int
	)
	sb.WriteString("\n")
	for _, v := range r.tape.Vertices() {
		switch {
		case v.Error != nil:
			failed++
			msg, _, _ := strings.Cut(*v.Error, "\n")
			fmt.Fprintf(&sb, "  %s %s %s\n", paint(style.Cross, red), v.Name, paint(msg, muted))
		case v.Canceled:
			failed++
			fmt.Fprintf(&sb, "  %s %s %s\n", paint(style.Cross, red), v.Name, paint("canceled", muted))
		case v.Cached:
			skipped++
			fmt.Fprintf(&sb, "  %s %s\n", paint(style.Skip, muted), paint(v.Name, muted))
		case v.Completed == nil:
			fmt.Fprintf(&sb, "  %s %s\n", paint(style.Warning, yellow), v.Name)
		default:
			succeeded++
			fmt.Fprintf(&sb, "  %s %s\n", paint(style.Check, green), v.Name)
		}
	}
	fmt.Fprintf(&sb, "\n  %d succeeded, %d failed, %d skipped\n", succeeded, failed, skipped)

	_, err := out.WriteString(sb.String())
	return err
}

// Close flushes the tape.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
