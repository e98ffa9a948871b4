package ports

import "go.trai.ch/provision/internal/core/domain"

// HistoryStore is the persisted per-task ledger of completed modes.
// A missing file or task is treated as an empty entry.
//
//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks
type HistoryStore interface {
	// Get returns the entry for task.
	Get(task string) (domain.HistoryEntry, error)
	// IsLogged reports whether task has a timestamp for mode.
	IsLogged(mode domain.Mode, task string) (bool, error)
	// UpdateEntry records a successful run of mode for task.
	UpdateEntry(mode domain.Mode, task string) error
	// ClearEntry removes the timestamp of mode for task.
	ClearEntry(mode domain.Mode, task string) error
}

// HistoryFactory opens the ledger stored in a temp dir.
type HistoryFactory interface {
	Open(tempDir string) (HistoryStore, error)
}
