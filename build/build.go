// Package build describes the running binary. Most of it comes from the
// module and VCS data the Go toolchain embeds; the version can also be set
// at link time:
//
//	go build -ldflags "-X github.com/amp-labs/pokedeck/build.version=v1.2.0" ./cmd/pokedeck
package build

import (
	"runtime/debug"
	"strings"
)

var version string //nolint:gochecknoglobals

const shortCommit = 7

// Info contains build metadata for the binary.
type Info struct {
	Version   string
	Commit    string
	GoVersion string
	Modified  bool
}

// Read collects the build metadata. Fields the toolchain did not record
// are left empty, except Version which falls back to "dev".
func Read() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return fromBuildInfo(nil, version)
	}

	return fromBuildInfo(bi, version)
}

func fromBuildInfo(bi *debug.BuildInfo, linked string) Info {
	info := Info{Version: linked}

	if bi != nil {
		info.GoVersion = bi.GoVersion

		if info.Version == "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}

		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.Commit = s.Value
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if info.Version == "" {
		info.Version = "dev"
	}

	return info
}

// String renders the info the way --version prints it, for instance
// "v1.2.0 (3f2a9c1-dirty, go1.25.0)".
func (i Info) String() string {
	var details []string

	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > shortCommit {
			commit = commit[:shortCommit]
		}

		if i.Modified {
			commit += "-dirty"
		}

		details = append(details, commit)
	}

	if i.GoVersion != "" {
		details = append(details, i.GoVersion)
	}

	if len(details) == 0 {
		return i.Version
	}

	return i.Version + " (" + strings.Join(details, ", ") + ")"
}
