package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXDGDirs(t *testing.T) {
	t.Setenv("ROLODEX_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	assert.Equal(t, filepath.Join("/xdg/config", "rolodex"), ConfigDir())
	assert.Equal(t, filepath.Join("/xdg/config", "rolodex", "rolodex.yml"), GlobalConfigFile())
	assert.Equal(t, filepath.Join("/xdg/state", "rolodex"), StateDir())
	assert.Equal(t, filepath.Join("/xdg/state", "rolodex", "logs"), LogsDir())
}

func TestPortableHome(t *testing.T) {
	t.Setenv("ROLODEX_HOME", "/portable")
	t.Setenv("XDG_CONFIG_HOME", "/ignored")

	assert.Equal(t, filepath.Join("/portable", "config"), ConfigDir())
	assert.Equal(t, filepath.Join("/portable", "config", "rolodex.yml"), GlobalConfigFile())
	assert.Equal(t, filepath.Join("/portable", "state", "logs"), LogsDir())
}

func TestHomeFallback(t *testing.T) {
	t.Setenv("ROLODEX_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", "/home/walt")

	assert.Equal(t, filepath.Join("/home/walt", ".config", "rolodex"), ConfigDir())
	assert.Equal(t, filepath.Join("/home/walt", ".local", "state", "rolodex"), StateDir())
}
