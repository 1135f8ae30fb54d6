package version

import (
	"strings"
	"testing"
)

func TestGetVersion_Ldflags(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = "v1.2.3"
	if got := GetVersion(); got != "v1.2.3" {
		t.Errorf("Expected v1.2.3, got %s", got)
	}
}

func TestGetVersion_Dev(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = ""
	if got := GetVersion(); got == "" {
		t.Error("Expected a non-empty version")
	}
}

func TestGetFullVersion(t *testing.T) {
	old, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = old, oldCommit })

	Version, Commit = "v1.0.0", "abc123"
	full := GetFullVersion()
	if !strings.HasPrefix(full, "v1.0.0 (commit: abc123,") {
		t.Errorf("Unexpected full version %q", full)
	}
}
