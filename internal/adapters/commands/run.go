package commands

import (
	"context"
	"maps"
	"slices"

	"go.trai.ch/provision/internal/adapters/fs"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/provision/internal/core/validation"
	"go.trai.ch/zerr"
)

const (
	argCommands = "commands"
	argShell    = "shell"
	argEnv      = "env"
)

// Run executes shell commands through a generated script.
type Run struct {
	modeCommand
	executor ports.Executor
}

var _ ports.Command = (*Run)(nil)

// NewRun creates the run command.
func NewRun(executor ports.Executor) *Run {
	r := &Run{executor: executor}
	r.modeCommand = modeCommand{run: r.execute}
	return r
}

func (r *Run) execute(ctx context.Context, mode domain.Mode, args domain.Value, cfg domain.CommandConfig, progress ports.Progress) error {
	err := validation.ValidateNamedArgs(args,
		validation.Arg(argCommands, validation.Required()),
		validation.Arg(argShell, validation.IsString()),
	)
	if err != nil {
		return err
	}

	lines, err := CommandsFor(args.Get(argCommands), mode)
	if err != nil {
		return err
	}

	shell := cfg.DefaultShell
	if name := stringArg(args, argShell); name != "" {
		if shell, err = domain.ParseShell(name); err != nil {
			return err
		}
	}

	env, err := environment(args)
	if err != nil {
		return err
	}
	for _, k := range sortedKeys(env) {
		progress.SetMessage("env " + k + "=" + env[k])
	}

	return r.executor.RunScript(ctx, domain.Script{
		Shell:   shell,
		Lines:   lines,
		Env:     env,
		TempDir: cfg.TempDir,
		Dir:     cfg.ConfigDir,
	}, progress)
}

// CommandsFor extracts the script lines for mode. commands is a string, a
// list of strings, or a map from mode name to either.
func CommandsFor(commands domain.Value, mode domain.Mode) ([]string, error) {
	stringOrList := validation.OneOf(validation.IsArray(), validation.IsString())

	if validation.ArgumentsAreNamed(commands) {
		name := mode.String()
		if _, ok := commands.Lookup(name); !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrModeNotDefined, name+" is not defined..."), "mode", name)
		}
		if err := validation.ValidateNamedArgs(commands, validation.Arg(name, stringOrList)); err != nil {
			return nil, err
		}
		return scriptLines(commands.Get(name))
	}

	if err := validation.ValidateArgs(&commands, stringOrList); err != nil {
		return nil, err
	}
	return scriptLines(commands)
}

func scriptLines(v domain.Value) ([]string, error) {
	if s, ok := v.AsString(); ok {
		return []string{s}, nil
	}
	items, _ := v.AsList()
	lines := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.AsString()
		if !ok {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrInvalidArgument, argCommands+": items must be strings"),
				"argument", argCommands,
			)
		}
		lines = append(lines, s)
	}
	return lines, nil
}

// environment reads the env map. Values are expanded like paths so that
// ~ and $VAR work.
func environment(args domain.Value) (map[string]string, error) {
	raw, ok := args.Lookup(argEnv)
	if !ok || raw.IsNull() {
		return nil, nil
	}
	entries, ok := raw.AsMap()
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "env is not set correctly"), "argument", argEnv)
	}

	env := make(map[string]string, len(entries))
	for k, v := range entries {
		value := v.String()
		if s, ok := v.AsString(); ok {
			value = s
		}
		expanded, err := fs.ExpandPath(value, false)
		if err != nil {
			expanded = value
		}
		env[k] = expanded
	}
	return env, nil
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
