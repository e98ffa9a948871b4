package history

import (
	"path/filepath"
	"sync"

	"go.trai.ch/provision/internal/adapters/fs"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
)

var _ ports.HistoryFactory = (*Factory)(nil)

// Factory opens ledgers by temp dir. Stores are shared per file so that
// nested runs writing the same ledger serialise on one mutex.
type Factory struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewFactory creates an empty Factory.
func NewFactory() *Factory {
	return &Factory{stores: make(map[string]*Store)}
}

// Open returns the store for history.json inside tempDir.
func (f *Factory) Open(tempDir string) (ports.HistoryStore, error) {
	dir, err := fs.ExpandPath(tempDir, false)
	if err != nil {
		return nil, err
	}
	path := filepath.Clean(filepath.Join(dir, domain.HistoryFileName))

	f.mu.Lock()
	defer f.mu.Unlock()

	if s, ok := f.stores[path]; ok {
		return s, nil
	}
	s := NewStore(path)
	f.stores[path] = s
	return s, nil
}
