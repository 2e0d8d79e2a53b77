// Package version reports the version of the wavedraw programs.
package version

import "runtime/debug"

// Version can be set at build time:
//
//	go build -ldflags "-X github.com/wavedraw/wavedraw/version.Version=$(git describe --dirty)" ./cmd/...
var Version string

// String returns Version if it was set at build time, and the short VCS
// revision of the build otherwise.
func String() string {
	if Version != "" {
		return Version
	}
	if rev, dirty, ok := revision(); ok {
		if dirty {
			return rev + "-dirty"
		}
		return rev
	}
	return "devel"
}

func revision() (rev string, dirty, ok bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false, false
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			rev = setting.Value[:min(7, len(setting.Value))]
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return rev, dirty, rev != ""
}
