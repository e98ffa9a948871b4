package domain

import "go.trai.ch/zerr"

// Mode selects which of a command's three operations runs.
type Mode uint8

const (
	// ModeInstall provisions a task.
	ModeInstall Mode = iota
	// ModeUpdate refreshes an already provisioned task.
	ModeUpdate
	// ModeUninstall removes what a task provisioned.
	ModeUninstall
)

// Modes lists every mode in declaration order.
var Modes = []Mode{ModeInstall, ModeUpdate, ModeUninstall}

// String returns the lower-case mode name used in config files and messages.
func (m Mode) String() string {
	switch m {
	case ModeInstall:
		return "install"
	case ModeUpdate:
		return "update"
	case ModeUninstall:
		return "uninstall"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode name back to a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrInvalidMode, "Invalid mode: "+s), "mode", s)
}
