// Package history implements the History Ledger as a flat JSON file.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HistoryStore = (*Store)(nil)

// Store implements ports.HistoryStore. Every operation reads the whole file,
// mutates one entry and rewrites the file while holding the store mutex.
type Store struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{
		path: filepath.Clean(path),
		now:  time.Now,
	}
}

// Path returns the ledger file location.
func (s *Store) Path() string {
	return s.path
}

// load reads the ledger. A missing, empty or unparsable file is an empty ledger.
func (s *Store) load() (map[string]domain.HistoryEntry, error) {
	entries := make(map[string]domain.HistoryEntry)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read history"), "path", s.path)
	}

	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return make(map[string]domain.HistoryEntry), nil
	}

	return entries, nil
}

func (s *Store) save(entries map[string]domain.HistoryEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal history")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for history"), "path", dir)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write history"), "path", s.path)
	}

	return nil
}

// Get returns the entry for task. Unknown tasks yield an empty entry.
func (s *Store) Get(task string) (domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return domain.HistoryEntry{}, zerr.With(err, "task", task)
	}
	return entries[task], nil
}

// IsLogged reports whether task has a timestamp for mode.
func (s *Store) IsLogged(mode domain.Mode, task string) (bool, error) {
	entry, err := s.Get(task)
	if err != nil {
		return false, err
	}
	return entry.IsLogged(mode), nil
}

// UpdateEntry stamps mode for task with the current time.
func (s *Store) UpdateEntry(mode domain.Mode, task string) error {
	return s.mutate(task, func(e domain.HistoryEntry) domain.HistoryEntry {
		return e.Record(mode, s.now())
	})
}

// ClearEntry removes the timestamp of mode for task.
func (s *Store) ClearEntry(mode domain.Mode, task string) error {
	return s.mutate(task, func(e domain.HistoryEntry) domain.HistoryEntry {
		return e.Clear(mode)
	})
}

func (s *Store) mutate(task string, fn func(domain.HistoryEntry) domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return zerr.With(err, "task", task)
	}
	entries[task] = fn(entries[task])

	if err := s.save(entries); err != nil {
		return zerr.With(err, "task", task)
	}
	return nil
}
