package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileFunc receives a source file and the path it maps to under the target.
type FileFunc func(src, target string) error

// WalkFiles mirrors the tree under src onto target, creating target
// directories as it goes and calling fn for every file.
//
// Entries whose path relative to src starts with one of the ignore prefixes
// are skipped. A single source file maps onto target when both share an
// extension and onto target/<name> otherwise.
func WalkFiles(src, target string, ignore []string, fn FileFunc) error {
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return zerr.With(
				zerr.Wrap(domain.ErrSourceMissing, "Source directory/file does not exist: "+src),
				"path", src,
			)
		}
		return zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}

	if !info.IsDir() {
		return fn(src, singleFileTarget(src, target))
	}

	return filepath.WalkDir(src, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == src {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve relative path"), "path", path)
		}

		if isIgnored(rel, ignore) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		dest := filepath.Join(target, rel)
		if d.IsDir() {
			if err := os.MkdirAll(dest, 0o750); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dest)
			}
			return nil
		}

		return fn(path, dest)
	})
}

func singleFileTarget(src, target string) string {
	name := filepath.Base(src)
	if filepath.Ext(name) != filepath.Ext(target) {
		return filepath.Join(target, name)
	}
	return target
}

func isIgnored(rel string, ignore []string) bool {
	for _, prefix := range ignore {
		if prefix != "" && strings.HasPrefix(rel, prefix) {
			return true
		}
	}
	return false
}
