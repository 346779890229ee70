package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBuildInfoFillsUnsetValues(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-01T00:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	info := fromBuildInfo(Info{Version: "dev", Commit: "none", BuildDate: "unknown"}, bi)
	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, "2026-01-01T00:00:00Z", info.BuildDate)
	assert.True(t, info.Modified)
	assert.Contains(t, info.String(), "abc123 (modified)")
}

func TestFromBuildInfoKeepsLinkerValues(t *testing.T) {
	bi := &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	}

	info := fromBuildInfo(Info{Version: "v9.0.0", Commit: "fff", BuildDate: "today"}, bi)
	assert.Equal(t, "v9.0.0", info.Version)
	assert.Equal(t, "fff", info.Commit)
	assert.Equal(t, "today", info.BuildDate)
}

func TestDevelBuildStaysDev(t *testing.T) {
	info := fromBuildInfo(Info{Version: "dev"}, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	assert.Equal(t, "dev", info.Version)
}
