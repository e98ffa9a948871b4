// Package domain holds the core types of the provisioning engine.
package domain

// Command is one action of a task. Name selects the implementation from the
// command registry and Args carries its arguments.
type Command struct {
	Name string
	Args Value
}

// Task is a named, independently schedulable unit of commands.
type Task struct {
	Name     string
	Commands []Command
	// OS restricts the task to the listed platforms. Empty means everywhere.
	OS []OS
	// Parallel runs the task's commands concurrently.
	Parallel bool
}

// TaskList is the run configuration produced by the config loader.
type TaskList struct {
	Tasks        []Task
	TempDir      string
	DefaultShell Shell
	NumThreads   int
	// Parallel runs tasks concurrently.
	Parallel bool
	// ConfigDir is the absolute directory holding the config file.
	ConfigDir string
}

// Find returns the task with the given name.
func (l *TaskList) Find(name string) (*Task, bool) {
	for i := range l.Tasks {
		if l.Tasks[i].Name == name {
			return &l.Tasks[i], true
		}
	}
	return nil, false
}

// Names returns the task names in declaration order.
func (l *TaskList) Names() []string {
	names := make([]string, len(l.Tasks))
	for i, t := range l.Tasks {
		names[i] = t.Name
	}
	return names
}

// CommandConfig is the run context handed to every command invocation.
type CommandConfig struct {
	ConfigDir    string
	TempDir      string
	DefaultShell Shell
}

// CommandConfig derives the per-command context of the list.
func (l *TaskList) CommandConfig() CommandConfig {
	return CommandConfig{
		ConfigDir:    l.ConfigDir,
		TempDir:      l.TempDir,
		DefaultShell: l.DefaultShell,
	}
}
