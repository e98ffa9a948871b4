package ports

import (
	"context"
	"io"

	"go.trai.ch/provision/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Progress is a fire-and-forget sink for human-readable status strings.
type Progress interface {
	SetMessage(msg string)
}

// Telemetry records one vertex per unit of work.
type Telemetry interface {
	// Record starts a new vertex named name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Summarize writes the final status of every recorded vertex to w.
	Summarize(w io.Writer) error
	// Close flushes the recording session.
	Close() error
}

// Vertex is a recorded unit of work. It doubles as the progress sink of the
// commands running inside it.
type Vertex interface {
	Progress
	// Stdout returns a writer for output attributed to the vertex.
	Stdout() io.Writer
	// Log records a message at the given level.
	Log(level domain.LogLevel, msg string)
	// Skipped marks the vertex as not run.
	Skipped()
	// Complete marks the vertex as finished, failed when err is non-nil.
	Complete(err error)
}
