package fs

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// ComputeFileHash computes the XXHash of a file's content.
func ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// SameContent reports whether both files exist and hash to the same digest.
// A missing target is reported as different.
func SameContent(src, target string) (bool, error) {
	if ok, err := Exists(target); err != nil || !ok {
		return false, err
	}

	a, err := ComputeFileHash(src)
	if err != nil {
		return false, err
	}
	b, err := ComputeFileHash(target)
	if err != nil {
		return false, err
	}
	return a == b, nil
}
