// Package fs provides the file system helpers shared by the commands:
// path expansion, tree walking and content hashing.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// ExpandPath expands a leading ~ and $VAR references in path.
// With create set, missing directories are made: the parent when the last
// component looks like a file name, the path itself otherwise.
func ExpandPath(path string, create bool) (string, error) {
	expanded := os.ExpandEnv(path)
	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", zerr.Wrap(err, "failed to resolve home directory")
		}
		expanded = filepath.Join(home, strings.TrimPrefix(expanded, "~"))
	}

	if create && expanded != "" {
		dir := expanded
		if IsFilePath(expanded) {
			dir = filepath.Dir(expanded)
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
		}
	}

	return expanded, nil
}

// IsFilePath reports whether the last component of path has an extension.
// Dot files such as .zshrc count as directories.
func IsFilePath(path string) bool {
	if path == "" {
		return false
	}
	return strings.Index(filepath.Base(path), ".") > 0
}

// RelativeTo resolves path against the config dir. Paths starting with ~ or
// $ are kept for later expansion and absolute paths are returned unchanged.
func RelativeTo(configDir, path string) string {
	if strings.HasPrefix(path, "~") || strings.HasPrefix(path, "$") || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(configDir, path)
}

// Exists reports whether path exists without following a final symlink.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
}
