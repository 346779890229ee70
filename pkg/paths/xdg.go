// Package paths provides XDG-compliant path resolution for rolodex.
//
// Resolution order:
// 1. ROLODEX_HOME (portable root) → $ROLODEX_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/rolodex
// 3. Platform defaults → ~/.config/rolodex, ~/.local/state/rolodex
package paths

import (
	"os"
	"path/filepath"
)

const appName = "rolodex"

func getConfigHome() string {
	if home := os.Getenv("ROLODEX_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

func getStateHome() string {
	if home := os.Getenv("ROLODEX_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the directory holding the global rolodex.yml.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	if os.Getenv("ROLODEX_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// GlobalConfigFile returns the path of the global configuration file.
func GlobalConfigFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "rolodex.yml")
}

// StateDir returns the rolodex state directory.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	if os.Getenv("ROLODEX_HOME") != "" {
		return base
	}
	return filepath.Join(base, appName)
}

// LogsDir is where logs go when no project directory is available.
func LogsDir() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "logs")
}
