// Package config loads the provisioning task list from YAML or JSON files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/provision/internal/adapters/fs"
	"go.trai.ch/provision/internal/core/domain"
	"go.trai.ch/provision/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

var allowedExtensions = []string{".yaml", ".yml", ".json"}

// Loader implements ports.ConfigLoader. JSON documents are parsed by the
// YAML decoder, which accepts them as flow-style YAML.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the config at path. Tasks and commands keep their file order.
func (l *Loader) Load(path string) (*domain.TaskList, error) {
	expanded, err := fs.ExpandPath(path, false)
	if err != nil {
		return nil, err
	}

	if !isAllowed(expanded) {
		return nil, zerr.With(
			zerr.Wrap(domain.ErrUnsupportedConfigType, "File "+path+" is not a yaml or json file"),
			"path", path,
		)
	}

	data, err := os.ReadFile(expanded) //nolint:gosec // path is provided by user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(zerr.Wrap(err, "File "+path+" does not exist"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	l.logger.Info("Reading config from " + expanded + " ...")

	list, err := Parse(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ""), "path", path)
	}

	configDir, err := resolveConfigDir(expanded)
	if err != nil {
		return nil, err
	}
	list.ConfigDir = configDir

	return list, nil
}

// Parse decodes a config document. ConfigDir is left empty.
func Parse(data []byte) (*domain.TaskList, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	list := &domain.TaskList{
		TempDir:      DefaultTempDir,
		DefaultShell: domain.ShellBash,
		NumThreads:   DefaultNumThreads(),
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, domain.ErrNoTasksDefined
	}

	var tasks *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i].Value, root.Content[i+1]
		switch key {
		case keyTasks:
			tasks = value
		case keyTempDir:
			s, err := decodeString(value, keyTempDir)
			if err != nil {
				return nil, err
			}
			list.TempDir = s
		case keyDefaultShell:
			s, err := decodeString(value, keyDefaultShell)
			if err != nil {
				return nil, err
			}
			shell, err := domain.ParseShell(s)
			if err != nil {
				return nil, zerr.Wrap(err, keyDefaultShell)
			}
			list.DefaultShell = shell
		case keyNumThreads:
			var n int
			if err := value.Decode(&n); err != nil {
				return nil, zerr.Wrap(err, keyNumThreads+" must be an integer")
			}
			list.NumThreads = max(1, n)
		case keyParallel:
			var b bool
			if err := value.Decode(&b); err != nil {
				return nil, zerr.Wrap(err, keyParallel+" must be a boolean")
			}
			list.Parallel = b
		}
	}

	if tasks == nil || tasks.Kind != yaml.MappingNode || len(tasks.Content) == 0 {
		return nil, domain.ErrNoTasksDefined
	}

	seen := make(map[string]bool, len(tasks.Content)/2)
	for i := 0; i+1 < len(tasks.Content); i += 2 {
		name := tasks.Content[i].Value
		if seen[name] {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTaskDefinition, name+": duplicate task"), "task", name)
		}
		seen[name] = true

		task, err := parseTask(name, tasks.Content[i+1])
		if err != nil {
			return nil, err
		}
		list.Tasks = append(list.Tasks, task)
	}

	return list, nil
}

func parseTask(name string, body *yaml.Node) (domain.Task, error) {
	if body.Kind == yaml.AliasNode {
		body = body.Alias
	}
	if body.Kind != yaml.MappingNode {
		return domain.Task{}, zerr.With(zerr.Wrap(domain.ErrInvalidTaskDefinition, name), "task", name)
	}

	task := domain.Task{Name: name}
	for i := 0; i+1 < len(body.Content); i += 2 {
		key, value := body.Content[i].Value, body.Content[i+1]
		switch key {
		case taskKeyOS:
			tags, err := parseOS(value)
			if err != nil {
				return domain.Task{}, zerr.With(zerr.Wrap(err, name), "task", name)
			}
			task.OS = tags
		case taskKeyParallel:
			var b bool
			if err := value.Decode(&b); err != nil {
				return domain.Task{}, zerr.With(
					zerr.Wrap(domain.ErrInvalidTaskDefinition, name+": parallel must be a boolean"),
					"task", name,
				)
			}
			task.Parallel = b
		default:
			task.Commands = append(task.Commands, domain.Command{Name: key, Args: toValue(value)})
		}
	}
	return task, nil
}

// parseOS accepts a single tag or a list of tags.
func parseOS(n *yaml.Node) ([]domain.OS, error) {
	var raw []string
	if n.Kind == yaml.ScalarNode {
		raw = []string{n.Value}
	} else if err := n.Decode(&raw); err != nil {
		return nil, zerr.Wrap(domain.ErrInvalidTaskDefinition, "os must be a string or a list of strings")
	}

	tags := make([]domain.OS, 0, len(raw))
	for _, s := range raw {
		tag, err := domain.ParseOS(s)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func decodeString(n *yaml.Node, key string) (string, error) {
	var s string
	if n.Kind != yaml.ScalarNode || n.Decode(&s) != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidArgument, key+" must be a string"), "key", key)
	}
	return s, nil
}

func isAllowed(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// resolveConfigDir returns the absolute, symlink-free directory of path.
func resolveConfigDir(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve config dir"), "path", path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return abs, nil
}
