package commands

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/provision/internal/adapters/fs"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/provision/internal/core/validation"
	"go.trai.ch/provision/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.Command = (*Symlink)(nil)

// Symlink links every file of a source tree into a target directory.
type Symlink struct{}

// NewSymlink creates the symlink command.
func NewSymlink() *Symlink {
	return &Symlink{}
}

// Install creates the links. With force, regular files in the way are
// replaced; links already pointing at the source are kept.
func (s *Symlink) Install(_ context.Context, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error {
	d, err := sourceAndTarget(args, cfg)
	if err != nil {
		return err
	}
	if err := validation.ValidateNamedArgs(args, validation.Arg(argForce, validation.IsBool())); err != nil {
		return err
	}
	force := boolArg(args, argForce)

	src, err := fs.ExpandPath(d.src, false)
	if err != nil {
		return err
	}
	if ok, err := fs.Exists(src); err != nil {
		return err
	} else if !ok {
		return zerr.With(
			zerr.Wrap(domain.ErrSourceMissing, "Source directory does not exist: "+d.src),
			"path", src,
		)
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

	progress.SetMessage("Creating symlinks: " + src + " " + style.Arrow + " " + target + " ...")

	return fs.WalkFiles(src, target, d.ignore, func(from, to string) error {
		return link(from, to, force, progress)
	})
}

// Uninstall removes the links in target that mirror the source tree.
// Regular files at those paths are left in place.
func (s *Symlink) Uninstall(_ context.Context, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error {
	d, err := sourceAndTarget(args, cfg)
	if err != nil {
		return err
	}

	src, err := fs.ExpandPath(d.src, false)
	if err != nil {
		return err
	}
	target, err := fs.ExpandPath(d.target, false)
	if err != nil {
		return err
	}

	progress.SetMessage("Unlinking files in " + target + " ...")

	return fs.WalkFiles(src, target, nil, func(_, to string) error {
		info, err := os.Lstat(to)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			return nil
		}
		if err := os.Remove(to); err != nil {
			return zerr.With(zerr.Wrap(err, "Failed to unlink file"), "path", to)
		}
		return nil
	})
}

// Update re-runs Install.
func (s *Symlink) Update(ctx context.Context, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error {
	return s.Install(ctx, args, cfg, progress)
}

func link(from, to string, force bool, progress ports.Progress) error {
	if info, err := os.Lstat(to); err == nil {
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			if dest, err := os.Readlink(to); err == nil && dest == from {
				return nil
			}
			if !force {
				return zerr.With(zerr.New("Failed to link file: a different link exists"), "path", to)
			}
		case info.Mode().IsRegular():
			if !force {
				return zerr.With(zerr.New("Failed to link file: file exists"), "path", to)
			}
			progress.SetMessage(style.Warning + " Replacing existing file with symlink (force) ...")
		default:
			return zerr.With(zerr.New("Failed to link file: target is a directory"), "path", to)
		}
		if err := os.Remove(to); err != nil {
			return zerr.With(zerr.Wrap(err, "Failed to link file"), "path", to)
		}
	}

	if err := os.Symlink(from, to); err != nil {
		return zerr.With(zerr.Wrap(err, "Failed to link file"), "path", to)
	}
	return nil
}
