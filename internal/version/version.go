package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build metadata (set via ldflags during build)
var (
	// Version is the release of csannotate
	Version = "dev"

	// Commit is the git commit hash
	Commit = "unknown"

	// Date is the build date
	Date = "unknown"

	// BuiltBy indicates how the binary was built
	BuiltBy = "source"
)

// GetVersion returns the release version. Binaries built with `go install`
// carry no ldflags and report the module version instead.
func GetVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}

// GetFullVersion returns the version with build metadata
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, by: %s, %s)",
		GetVersion(), Commit, Date, BuiltBy, runtime.Version())
}
