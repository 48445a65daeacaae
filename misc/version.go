// Package misc holds program identity set at build time.
package misc

import (
	"runtime/debug"
	"sync"
)

// Set with -ldflags "-X docstyle/misc.version=... -X docstyle/misc.gitHash=...".
var (
	appName = "docstyle"
	version = "dev"
	gitHash = ""
)

var vcsRevision = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}
	return "unknown"
})

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns the commit the program was built from.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	return vcsRevision()
}
