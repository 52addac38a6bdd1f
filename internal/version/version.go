// Package version reports which build of rose is running.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via -ldflags "-X ...". When left empty, the VCS stamp
// embedded by the Go toolchain is used instead.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info is the resolved build identity.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
	Modified  bool
}

// Get resolves the build identity from ldflags, then the embedded build info.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(Version, Commit, BuildTime, bi)
}

// String returns the version line shown by `rose --version`.
func String() string {
	return Get().String()
}

// String formats the identity as "rose <version> (commit: <short>, built: <time>)".
func (i Info) String() string {
	commit := shortCommit(i.Commit)
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("rose %s (commit: %s, built: %s)", i.Version, commit, i.BuildTime)
}

func resolve(version, commit, buildTime string, bi *debug.BuildInfo) Info {
	info := Info{Version: version, Commit: commit, BuildTime: buildTime}
	if bi != nil {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = s.Value
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	return info
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
