package commands

import (
	"context"
	"os"

	"go.trai.ch/provision/internal/adapters/fs"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/provision/internal/core/validation"
	"go.trai.ch/zerr"
)

const argURL = "url"

var _ ports.Command = (*Clone)(nil)

// Clone manages a git checkout.
type Clone struct {
	executor ports.Executor
}

// NewClone creates the clone command running git through executor.
func NewClone(executor ports.Executor) *Clone {
	return &Clone{executor: executor}
}

// Install clones url into target, or pulls when target already holds a
// checkout of url.
func (c *Clone) Install(ctx context.Context, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error {
	err := validation.ValidateNamedArgs(args,
		validation.Arg(argURL, validation.Required(), validation.IsString()),
		validation.Arg(argTarget, validation.Required(), validation.IsString()),
	)
	if err != nil {
		return err
	}

	url := stringArg(args, argURL)
	target, err := fs.ExpandPath(fs.RelativeTo(cfg.ConfigDir, stringArg(args, argTarget)), true)
	if err != nil {
		return err
	}

	if c.installedURL(ctx, target) == url {
		progress.SetMessage("The repository was already cloned. Updating...")
		return c.pull(ctx, target, progress)
	}

	progress.SetMessage("Cloning " + url + " into " + target + " ...")
	if _, err := c.executor.Exec(ctx, target, "git", "clone", url, "."); err != nil {
		return zerr.With(err, "url", url)
	}
	return nil
}

// Update pulls inside target.
func (c *Clone) Update(ctx context.Context, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error {
	target, err := c.target(args, cfg, true)
	if err != nil {
		return err
	}
	return c.pull(ctx, target, progress)
}

// Uninstall removes target recursively.
func (c *Clone) Uninstall(_ context.Context, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error {
	target, err := c.target(args, cfg, false)
	if err != nil {
		return err
	}

	progress.SetMessage("Removing " + target + " ...")
	if err := os.RemoveAll(target); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove repository"), "path", target)
	}
	return nil
}

func (c *Clone) target(args domain.Value, cfg domain.CommandConfig, create bool) (string, error) {
	err := validation.ValidateNamedArgs(args,
		validation.Arg(argTarget, validation.Required(), validation.IsString()),
	)
	if err != nil {
		return "", err
	}
	return fs.ExpandPath(fs.RelativeTo(cfg.ConfigDir, stringArg(args, argTarget)), create)
}

func (c *Clone) pull(ctx context.Context, target string, progress ports.Progress) error {
	progress.SetMessage("Updating " + target + " ...")
	if _, err := c.executor.Exec(ctx, target, "git", "pull"); err != nil {
		return zerr.With(err, "path", target)
	}
	return nil
}

// installedURL returns the origin of the checkout in target, or "".
func (c *Clone) installedURL(ctx context.Context, target string) string {
	url, err := c.executor.Exec(ctx, target, "git", "config", "--get", "remote.origin.url")
	if err != nil {
		return ""
	}
	return url
}
