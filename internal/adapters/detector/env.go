// Package detector picks the log format from the terminal environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is the log rendering mode.
type OutputMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto OutputMode = iota
	// ModePretty renders coloured human-readable lines.
	ModePretty
	// ModeJSON renders one JSON object per line.
	ModeJSON
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModePretty:
		return "pretty"
	case ModeJSON:
		return "json"
	default:
		return "auto"
	}
}

// DetectEnvironment returns ModePretty on an interactive terminal and
// ModeJSON when stderr is redirected. CI=true or CI=1 keeps pretty output
// since CI logs are read by humans.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	if isTTY || ci == "true" || ci == "1" {
		return ModePretty
	}
	return ModeJSON
}

// ResolveMode applies the --output flag on top of the detected mode.
func ResolveMode(detected OutputMode, flag string) OutputMode {
	switch flag {
	case "pretty":
		return ModePretty
	case "json":
		return ModeJSON
	default:
		return detected
	}
}
