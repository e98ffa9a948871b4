package domain

import "go.trai.ch/zerr"

// Shell is the interpreter generated scripts are run with.
type Shell string

const (
	// ShellBash runs scripts with bash.
	ShellBash Shell = "bash"
	// ShellZsh runs scripts with zsh.
	ShellZsh Shell = "zsh"
)

// ParseShell validates a shell name.
func ParseShell(s string) (Shell, error) {
	switch Shell(s) {
	case ShellBash, ShellZsh:
		return Shell(s), nil
	default:
		return "", zerr.Wrap(ErrUnknownShell, "Unknown shell: "+s)
	}
}

// String returns the shell binary name.
func (s Shell) String() string { return string(s) }

// Header returns the preamble written at the top of generated scripts.
func (s Shell) Header() string {
	if s == ShellZsh {
		return "#!/bin/zsh\nsource $HOME/.zshrc >/dev/null 2>&1\n"
	}
	return "#!/bin/bash\nsource $HOME/.bashrc >/dev/null 2>&1\n"
}
