// Package buildinfo reports the release a microcharts binary was built from.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/microcharts/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/microcharts/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/microcharts/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Anything left unset is taken from the module version and VCS stamp the
// toolchain embeds (go install, go build in a checkout).
//
// Version also scopes artifact cache keys, so a new release never serves
// artifacts drawn by an older one.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const (
	unsetVersion = "dev"
	unsetCommit  = "none"
	unsetDate    = "unknown"
)

var (
	// Version is the semantic version, e.g. "v1.2.3".
	Version = unsetVersion

	// Commit is the git commit SHA, suffixed with "-dirty" for modified
	// checkouts.
	Commit = unsetCommit

	// Date is the build (or commit) timestamp.
	Date = unsetDate
)

func init() {
	fill(debug.ReadBuildInfo)
}

// fill completes unset variables from embedded build information.
func fill(read func() (*debug.BuildInfo, bool)) {
	info, ok := read()
	if !ok || info == nil {
		return
	}
	if Version == unsetVersion && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	var revision, modified, vcsTime string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}
	if Commit == unsetCommit && revision != "" {
		Commit = revision
		if modified == "true" {
			Commit += "-dirty"
		}
	}
	if Date == unsetDate && vcsTime != "" {
		Date = vcsTime
	}
}

// Template returns the version template for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", Version, shortCommit(Commit), Date)
}

func shortCommit(c string) string {
	const n = 12
	if len(c) <= n {
		return c
	}
	if strings.HasSuffix(c, "-dirty") {
		return c[:n] + "-dirty"
	}
	return c[:n]
}
