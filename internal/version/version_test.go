package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func stubBuild(t *testing.T, version, commit, date string, bi *debug.BuildInfo) {
	t.Helper()
	origVersion, origCommit, origDate, origRead := Version, Commit, Date, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, Date, readBuildInfo = origVersion, origCommit, origDate, origRead
	})
	Version, Commit, Date = version, commit, date
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestString(t *testing.T) {
	tests := []struct {
		name   string
		commit string
		date   string
		want   string
	}{
		{name: "dev build", commit: unknown, date: unknown, want: "scalar-themes version 1.2.3 ("},
		{name: "release", commit: "0123456789abcdef", date: "2025-01-02T03:04:05Z", want: "scalar-themes version 1.2.3 (commit: 01234567, built: 2025-01-02T03:04:05Z,"},
		{name: "short commit", commit: "abc", date: "2025-01-02T03:04:05Z", want: "(commit: abc, built:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBuild(t, "1.2.3", tt.commit, tt.date, nil)
			if got := String(); !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestGetInfo_BuildInfoFallback(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "feedfacecafe"},
			{Key: "vcs.time", Value: "2025-06-01T00:00:00Z"},
		},
	}

	stubBuild(t, "dev", unknown, unknown, bi)
	info := GetInfo()
	if info.Version != "v0.4.0" || info.Commit != "feedfacecafe" || info.Date != "2025-06-01T00:00:00Z" {
		t.Errorf("GetInfo() = %+v", info)
	}

	stubBuild(t, "1.0.0", "abc123", unknown, bi)
	info = GetInfo()
	if info.Version != "1.0.0" || info.Commit != "abc123" {
		t.Errorf("ldflags values must win: %+v", info)
	}

	stubBuild(t, "dev", unknown, unknown, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if got := Short(); got != "dev" {
		t.Errorf("Short() = %q, want dev", got)
	}
}
