// Package logger implements ports.Logger on top of log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/provision/internal/ui/style"
)

// messager is implemented by zerr errors: Message returns the text of one
// link of the chain without its causes.
type messager interface {
	Message() string
}

// metadataer is implemented by zerr errors carrying structured fields.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
	level    *slog.LevelVar
}

// New creates a Logger writing pretty output to stderr at info level.
func New() ports.Logger {
	level := &slog.LevelVar{}
	return &Logger{
		logger: slog.New(newHandler(os.Stderr, false, level)),
		output: os.Stderr,
		level:  level,
	}
}

// newHandler builds the handler for the selected format. Both formats read
// the threshold from level, so SetLevel applies without rebuilding.
func newHandler(w io.Writer, jsonMode bool, level slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// SetOutput redirects the logger, keeping the current format.
// A nil writer selects stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(newHandler(w, l.jsonMode, l.level))
}

// SetJSON switches between JSON and pretty output.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	l.logger = slog.New(newHandler(w, enable, l.level))
}

// SetLevel sets the minimum level that is written.
func (l *Logger) SetLevel(level domain.LogLevel) {
	l.level.Set(slog.Level(level))
}

// Level returns the minimum level that is written.
func (l *Logger) Level() domain.LogLevel {
	return domain.LogLevel(l.level.Level())
}

// AtLeast returns a logger writing to the same output in the same format
// whose threshold is the higher of level and the current one.
func (l *Logger) AtLeast(level domain.LogLevel) ports.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()

	lv := &slog.LevelVar{}
	lv.Set(max(l.level.Level(), slog.Level(level)))

	w := l.output
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		logger:   slog.New(newHandler(w, l.jsonMode, lv)),
		jsonMode: l.jsonMode,
		output:   w,
		level:    lv,
	}
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err. In pretty mode the zerr chain is rendered as a main
// message followed by its causes and metadata.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain of zerr errors. The first non-zerr
// error ends the walk with its full text. Links with an empty message only
// contribute their metadata.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}

		meta := map[string]any{}
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}
		for k, v := range pending {
			meta[k] = v
		}
		pending = nil

		if m.Message() == "" {
			pending = meta
		} else {
			entries = append(entries, errorEntry{message: m.Message(), metadata: meta})
		}
		current = errors.Unwrap(current)
	}

	if pending != nil && len(entries) > 0 {
		last := &entries[len(entries)-1]
		if last.metadata == nil {
			last.metadata = map[string]any{}
		}
		for k, v := range pending {
			last.metadata[k] = v
		}
	}
	return entries
}

func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, e := range entries {
		msgLines := strings.Split(e.message, "\n")
		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    "+style.Arrow+" "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "      "+line)
			}
		}

		keys := make([]string, 0, len(e.metadata))
		for k := range e.metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("       %s: %v", k, e.metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
