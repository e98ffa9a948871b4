package domain

import "time"

// HistoryFileName is the ledger file name inside the temp dir.
const HistoryFileName = "history.json"

// HistoryEntry records when a task last completed each mode.
// Timestamps are serialised as RFC3339 strings or null.
type HistoryEntry struct {
	InstalledAt   *time.Time `json:"installed_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	UninstalledAt *time.Time `json:"uninstalled_at"`
}

// IsLogged reports whether the entry carries a timestamp for mode.
func (e HistoryEntry) IsLogged(mode Mode) bool {
	switch mode {
	case ModeInstall:
		return e.InstalledAt != nil
	case ModeUpdate:
		return e.UpdatedAt != nil
	case ModeUninstall:
		return e.UninstalledAt != nil
	default:
		return false
	}
}

// Record returns the entry after a successful run of mode at now.
// Install and Uninstall are mutually exclusive; Update only touches its own field.
func (e HistoryEntry) Record(mode Mode, now time.Time) HistoryEntry {
	ts := now.UTC().Truncate(time.Second)
	switch mode {
	case ModeInstall:
		e.InstalledAt = &ts
		e.UninstalledAt = nil
	case ModeUninstall:
		e.UninstalledAt = &ts
		e.InstalledAt = nil
	case ModeUpdate:
		e.UpdatedAt = &ts
	}
	return e
}

// Clear returns the entry with the timestamp for mode removed.
func (e HistoryEntry) Clear(mode Mode) HistoryEntry {
	switch mode {
	case ModeInstall:
		e.InstalledAt = nil
	case ModeUpdate:
		e.UpdatedAt = nil
	case ModeUninstall:
		e.UninstalledAt = nil
	}
	return e
}
