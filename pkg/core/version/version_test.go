package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionFormat(t *testing.T) {
	if Version == "" {
		t.Fatal("Version is empty")
	}
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q does not match semver format (x.y.z)", Version)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Version {
		t.Errorf("Info.Version = %q, want %q", info.Version, Version)
	}
	if info.GitCommit != GitCommit {
		t.Errorf("Info.GitCommit = %q, want %q", info.GitCommit, GitCommit)
	}
	if info.GoVersion == "" {
		t.Error("Info.GoVersion is empty")
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Info.Platform = %q, want os/arch form", info.Platform)
	}
}

func TestInfo_String(t *testing.T) {
	s := Get().String()

	for _, want := range []string{"toolctl", Version, GitCommit} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
