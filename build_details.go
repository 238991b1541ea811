package introspec

import (
	"fmt"
	"runtime/debug"
)

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// UserAgent returns the User-Agent string to use
func UserAgent() string {
	return fmt.Sprintf("introspec/%s", version)
}

// BuildDetails reports the version along with the VCS revision embedded in
// the binary's build info, when available.
func BuildDetails() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version()
	}
	revision := ""
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			revision = setting.Value
			break
		}
	}
	if revision == "" {
		return Version()
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	return fmt.Sprintf("%s (%s)", Version(), revision)
}
