package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrTaskNotFound is returned when a requested task is not in the task list.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrTaskFailed is returned when an explicitly requested task fails.
	ErrTaskFailed = zerr.New("task failed")

	// ErrTasksFailed is returned when one or more tasks of a full run fail.
	ErrTasksFailed = zerr.New("provisioning failed")

	// ErrUnknownCommand is returned when a command name has no registered implementation.
	ErrUnknownCommand = zerr.New("unknown command")

	// ErrNamedArgsExpected is returned when positional arguments are given where named ones are required.
	ErrNamedArgsExpected = zerr.New("Expected named arguments, got positional arguments")

	// ErrPositionalArgsExpected is returned when named arguments are given where positional ones are required.
	ErrPositionalArgsExpected = zerr.New("Expected positional arguments, got named arguments")

	// ErrInvalidArgument is returned when an argument fails a validation rule.
	ErrInvalidArgument = zerr.New("invalid argument")

	// ErrInvalidMode is returned when a mode name is not install, update or uninstall.
	ErrInvalidMode = zerr.New("invalid mode")

	// ErrUnknownOS is returned for an unrecognised platform tag.
	ErrUnknownOS = zerr.New("unknown os")

	// ErrUnknownShell is returned for a shell other than bash or zsh.
	ErrUnknownShell = zerr.New("unknown shell")

	// ErrUnsupportedConfigType is returned when the config file extension is not yaml, yml or json.
	ErrUnsupportedConfigType = zerr.New("unsupported config file type")

	// ErrNoTasksDefined is returned when the config file has no tasks section.
	ErrNoTasksDefined = zerr.New("No tasks defined")

	// ErrInvalidTaskDefinition is returned when a task is not a map of commands.
	ErrInvalidTaskDefinition = zerr.New("task definition is incorrect")

	// ErrCommandExited is returned when a script exits non-zero or writes to stderr.
	ErrCommandExited = zerr.New("command exited with errors")

	// ErrModeNotDefined is returned when a run command has no script for the current mode.
	ErrModeNotDefined = zerr.New("mode is not defined")

	// ErrSameSourceAndTarget is returned when a copy or symlink points at itself.
	ErrSameSourceAndTarget = zerr.New("source and target are the same")

	// ErrSourceMissing is returned when the source of a copy or symlink does not exist.
	ErrSourceMissing = zerr.New("source does not exist")

	// ErrNoTaskSelected is returned when the interactive picker ends without a choice.
	ErrNoTaskSelected = zerr.New("No task selected")

	// ErrConfigDirRemoval is returned when an uninstall would delete the config directory.
	ErrConfigDirRemoval = zerr.New("cannot delete config_dir")
)

// TasksFailedError reports the tasks of a full run that failed, in task order.
// It matches ErrTasksFailed under errors.Is.
type TasksFailedError struct {
	Tasks []string
}

func (e *TasksFailedError) Error() string {
	var sb strings.Builder
	sb.WriteString("Errors occurred in ")
	sb.WriteString(strconv.Itoa(len(e.Tasks)))
	sb.WriteString(" tasks:")
	for _, name := range e.Tasks {
		sb.WriteString("\n> ")
		sb.WriteString(name)
	}
	return sb.String()
}

// Is reports whether target is ErrTasksFailed.
func (e *TasksFailedError) Is(target error) bool {
	return target == ErrTasksFailed
}
