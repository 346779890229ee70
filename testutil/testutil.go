// Package testutil holds helpers shared by the rolodex package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Isolate points every user-level lookup (XDG config, log directory) into
// fresh temporary directories for the duration of the test.
func Isolate(t *testing.T) {
	t.Helper()
	t.Setenv("ROLODEX_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ROLODEX_LOG_DIR", t.TempDir())
	t.Setenv("ROLODEX_LOG_LEVEL", "")
	t.Setenv("ROLODEX_THEME", "")
}

// Chdir changes the working directory to dir and restores it when the test ends.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(old)
	})
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Project creates a temporary project directory containing rolodex.yml with
// the given content, isolates the environment and changes into it.
func Project(t *testing.T, config string) string {
	t.Helper()
	Isolate(t)
	dir := t.TempDir()
	WriteFile(t, dir, "rolodex.yml", config)
	Chdir(t, dir)
	return dir
}
