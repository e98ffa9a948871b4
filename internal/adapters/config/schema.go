package config

import (
	"runtime"

	"go.trai.ch/provision/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Top-level keys of a config file.
const (
	keyTasks        = "tasks"
	keyTempDir      = "temp_dir"
	keyDefaultShell = "default_shell"
	keyNumThreads   = "num_threads"
	keyParallel     = "parallel"
)

// Reserved keys inside a task map. Every other key names a command.
const (
	taskKeyOS       = "os"
	taskKeyParallel = "parallel"
)

// DefaultTempDir is used when temp_dir is not set.
const DefaultTempDir = "~/.machine_setup"

// DefaultNumThreads leaves one CPU for the rest of the system.
func DefaultNumThreads() int {
	return max(1, runtime.NumCPU()-1)
}

// toValue converts a parsed YAML node into a domain.Value.
// Scalars are typed by their resolved tag; unknown tags become strings.
func toValue(n *yaml.Node) domain.Value {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return domain.Null()
		}
		return toValue(n.Content[0])
	case yaml.AliasNode:
		return toValue(n.Alias)
	case yaml.SequenceNode:
		items := make([]domain.Value, len(n.Content))
		for i, c := range n.Content {
			items[i] = toValue(c)
		}
		return domain.List(items...)
	case yaml.MappingNode:
		entries := make(map[string]domain.Value, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			entries[n.Content[i].Value] = toValue(n.Content[i+1])
		}
		return domain.Map(entries)
	case yaml.ScalarNode:
		return scalarValue(n)
	default:
		return domain.Invalid()
	}
}

func scalarValue(n *yaml.Node) domain.Value {
	switch n.ShortTag() {
	case "!!null":
		return domain.Null()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return domain.Bool(b)
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return domain.Integer(i)
		}
		var f float64
		if err := n.Decode(&f); err == nil {
			return domain.Float(f)
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return domain.Float(f)
		}
	}
	return domain.String(n.Value)
}
