// Package version renders fanctl's build information. The inputs are
// injected through ldflags by the release build and may be empty for
// plain `go build` binaries.
package version

import (
	"fmt"
	"runtime"
)

// Short returns the one-line string used by --version, e.g.
// "v1.2.0-9f3c1a7" or "dev" for an untagged build.
func Short(version, commit string) string {
	if version == "" {
		version = "dev"
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		return version
	}
	return fmt.Sprintf("%s-%s", version, commit)
}

// Detailed returns the multi-line output of the version command.
func Detailed(version, commit, buildTime string) string {
	if commit == "" {
		commit = "unknown"
	}
	if buildTime == "" {
		buildTime = "unknown"
	}
	return fmt.Sprintf(`fanctl %s - Helios 300 fan control
Commit:     %s
Built:      %s
Go version: %s
OS/Arch:    %s/%s`,
		Short(version, ""), commit, buildTime,
		runtime.Version(),
		runtime.GOOS, runtime.GOARCH)
}
