package app

import (
	"fmt"
	"runtime/debug"
)

// Name is the product the generated script belongs to.
const Name = "edict2-browser"

// Version and Commit are stamped by the release build:
//
//	go build -ldflags "-X github.com/peetscott/edict2-browser/internal/app.Version=v1.0.0" ./cmd/edict2js
var (
	Version = "dev"
	Commit  = ""
)

// BuildVersion returns the version for the startup log. Without a stamped
// Commit it falls back to the VCS revision recorded by the go tool, and
// omits the revision when neither exists.
func BuildVersion() string {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	if commit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return ""
}
