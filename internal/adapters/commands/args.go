package commands

import (
	"context"

	"go.trai.ch/provision/internal/adapters/fs"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/provision/internal/core/validation"
	"go.trai.ch/zerr"
)

// Argument names shared by several commands.
const (
	argSrc    = "src"
	argTarget = "target"
	argIgnore = "ignore"
	argForce  = "force"
)

func stringArg(args domain.Value, name string) string {
	s, _ := args.Get(name).AsString()
	return s
}

func boolArg(args domain.Value, name string) bool {
	b, _ := args.Get(name).AsBool()
	return b
}

// stringsArg returns the string items of a list argument.
func stringsArg(args domain.Value, name string) ([]string, error) {
	items, ok := args.Get(name).AsList()
	if !ok {
		return nil, nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.AsString()
		if !ok {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrInvalidArgument, name+": items must be strings"),
				"argument", name,
			)
		}
		out = append(out, s)
	}
	return out, nil
}

// dirs is the resolved src/target pair of copy and symlink.
type dirs struct {
	src    string
	target string
	ignore []string
}

// sourceAndTarget validates src and target and resolves both against the
// config dir. Neither path is expanded yet.
func sourceAndTarget(args domain.Value, cfg domain.CommandConfig) (dirs, error) {
	err := validation.ValidateNamedArgs(args,
		validation.Arg(argSrc, validation.Required(), validation.IsString()),
		validation.Arg(argTarget, validation.Required(), validation.IsString()),
		validation.Arg(argIgnore, validation.IsArray()),
	)
	if err != nil {
		return dirs{}, err
	}

	ignore, err := stringsArg(args, argIgnore)
	if err != nil {
		return dirs{}, err
	}

	return dirs{
		src:    fs.RelativeTo(cfg.ConfigDir, stringArg(args, argSrc)),
		target: fs.RelativeTo(cfg.ConfigDir, stringArg(args, argTarget)),
		ignore: ignore,
	}, nil
}

// modeFunc adapts a mode-parameterised implementation to the three methods
// of ports.Command.
type modeFunc func(ctx context.Context, mode domain.Mode, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error

type modeCommand struct {
	run modeFunc
}

func (c modeCommand) Install(ctx context.Context, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error {
	return c.run(ctx, domain.ModeInstall, args, cfg, progress)
}

func (c modeCommand) Update(ctx context.Context, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error {
	return c.run(ctx, domain.ModeUpdate, args, cfg, progress)
}

func (c modeCommand) Uninstall(ctx context.Context, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error {
	return c.run(ctx, domain.ModeUninstall, args, cfg, progress)
}
