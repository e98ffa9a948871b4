package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/provision/internal/core/domain"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	mu      sync.Mutex
	vertex  *progrock.VertexRecorder
	message string
	done    bool
}

// SetMessage records msg as the latest status line of the vertex.
func (v *Vertex) SetMessage(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.message = msg
	_, _ = fmt.Fprintln(v.vertex.Stdout(), msg)
}

// Message returns the latest status line.
func (v *Vertex) Message() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.message
}

// Stdout returns a writer attributed to the vertex.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Log writes a levelled line to the vertex output.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", level.String(), msg)
}

// Skipped marks the vertex as cached and finished.
func (v *Vertex) Skipped() {
	v.finish(func() {
		v.vertex.Cached()
		v.vertex.Done(nil)
	})
}

// Complete marks the vertex as finished, failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.finish(func() { v.vertex.Done(err) })
}

// finish runs fn once; later calls are ignored.
func (v *Vertex) finish(fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.done {
		return
	}
	v.done = true
	fn()
}
