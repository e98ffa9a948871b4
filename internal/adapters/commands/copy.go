package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/provision/internal/adapters/fs"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/provision/internal/core/validation"
	"go.trai.ch/provision/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.Command = (*Copy)(nil)

// Copy mirrors a source tree into a target directory.
type Copy struct{}

// NewCopy creates the copy command.
func NewCopy() *Copy {
	return &Copy{}
}

// Install copies every file of src into target. Files whose target is newer
// than the source, or already holds the same content, are left alone.
func (c *Copy) Install(_ context.Context, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error {
	d, err := sourceAndTarget(args, cfg)
	if err != nil {
		return err
	}

	src, err := fs.ExpandPath(d.src, false)
	if err != nil {
		return err
	}
	target, err := fs.ExpandPath(d.target, true)
	if err != nil {
		return err
	}

	if filepath.Clean(src) == filepath.Clean(target) {
		return zerr.With(
			zerr.Wrap(domain.ErrSameSourceAndTarget, "Source and destination directories are the same: "+d.src),
			"path", src,
		)
	}

	progress.SetMessage("Copying files from " + src + " to " + target + " ...")

	return fs.WalkFiles(src, target, d.ignore, func(from, to string) error {
		newer, err := targetIsNewer(from, to)
		if err != nil {
			return err
		}
		if newer {
			progress.SetMessage(style.Warning + " Skipping " + filepath.Base(to) + ": The target file is newer than the source file.")
			return nil
		}

		same, err := fs.SameContent(from, to)
		if err != nil {
			return err
		}
		if same {
			return nil
		}

		progress.SetMessage("Copying " + from + " to " + to + " ...")
		return copyFile(from, to)
	})
}

// Uninstall removes target. A missing target counts as removed.
func (c *Copy) Uninstall(_ context.Context, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error {
	err := validation.ValidateNamedArgs(args,
		validation.Arg(argTarget, validation.Required(), validation.IsString()),
	)
	if err != nil {
		return err
	}

	target, err := fs.ExpandPath(fs.RelativeTo(cfg.ConfigDir, stringArg(args, argTarget)), false)
	if err != nil {
		return err
	}

	resolved, err := filepath.EvalSymlinks(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			progress.SetMessage(style.Warning + " The file(s) were already removed...")
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to resolve target"), "path", target)
	}

	if isConfigDir(resolved, cfg.ConfigDir) {
		return zerr.With(zerr.Wrap(domain.ErrConfigDirRemoval, "Refusing to remove "+resolved), "path", resolved)
	}

	progress.SetMessage("Removing " + resolved + " ...")
	if err := os.RemoveAll(resolved); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove target"), "path", resolved)
	}
	return nil
}

// Update is not supported by copy and only reports so.
func (c *Copy) Update(_ context.Context, _ domain.Value, _ domain.CommandConfig, progress ports.Progress) error {
	progress.SetMessage(style.Warning + " update not implemented for copy command")
	return nil
}

func isConfigDir(path, configDir string) bool {
	if configDir == "" {
		return false
	}
	resolved, err := filepath.EvalSymlinks(configDir)
	if err != nil {
		resolved = configDir
	}
	return filepath.Clean(path) == filepath.Clean(resolved)
}

func targetIsNewer(src, target string) (bool, error) {
	targetInfo, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat target"), "path", target)
	}
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}
	return targetInfo.ModTime().After(srcInfo.ModTime()), nil
}

func copyFile(src, target string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "Failed to copy file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	info, err := in.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "Failed to copy file"), "path", src)
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm()) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "Failed to copy file"), "path", target)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "Failed to copy file"), "path", target)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "Failed to copy file"), "path", target)
	}
	return nil
}
