package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	t.Cleanup(func() {
		Version, Commit, Date = origVersion, origCommit, origDate
	})

	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{"dev build", "dev", "unknown", "unknown", "okbase16 version dev ("},
		{"release", "1.2.3", "0123456789abcdef", "2026-01-02T03:04:05Z", "okbase16 version 1.2.3 (commit: 01234567, built: 2026-01-02T03:04:05Z"},
		{"short commit", "1.2.3", "abc", "2026-01-02T03:04:05Z", "(commit: abc, built:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = tt.version, tt.commit, tt.date
			if got := String(); !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
			if Short() != tt.version {
				t.Errorf("Short() = %q", Short())
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Errorf("GetInfo() = %+v", info)
	}
}
