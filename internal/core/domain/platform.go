package domain

import (
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// OS is a platform tag a task can be restricted to.
type OS string

// Known platform tags.
const (
	OSLinux     OS = "linux"
	OSMacOS     OS = "macos"
	OSIOS       OS = "ios"
	OSFreeBSD   OS = "freebsd"
	OSDragonfly OS = "dragonfly"
	OSNetBSD    OS = "netbsd"
	OSOpenBSD   OS = "openbsd"
	OSSolaris   OS = "solaris"
	OSAndroid   OS = "android"
	OSWindows   OS = "windows"
)

var knownOS = []OS{
	OSLinux, OSMacOS, OSIOS, OSFreeBSD, OSDragonfly,
	OSNetBSD, OSOpenBSD, OSSolaris, OSAndroid, OSWindows,
}

// ParseOS validates a platform tag. Matching is case-insensitive.
func ParseOS(s string) (OS, error) {
	tag := OS(strings.ToLower(strings.TrimSpace(s)))
	if tag == "darwin" {
		return OSMacOS, nil
	}
	if slices.Contains(knownOS, tag) {
		return tag, nil
	}
	return "", zerr.With(zerr.Wrap(ErrUnknownOS, "Unknown os: "+s), "os", s)
}

// CurrentOS returns the tag of the platform the process runs on.
func CurrentOS() OS {
	return osFromGOOS(runtime.GOOS)
}

func osFromGOOS(goos string) OS {
	switch goos {
	case "darwin":
		return OSMacOS
	case "illumos":
		return OSSolaris
	default:
		return OS(goos)
	}
}

// ShouldSkip reports whether task must not run on platform current.
// A task without OS restrictions runs everywhere.
func ShouldSkip(task *Task, current OS) bool {
	if len(task.OS) == 0 {
		return false
	}
	return !slices.Contains(task.OS, current)
}
