package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/rolodex/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// isolate points the global config lookup at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("ROLODEX_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadFromBytesDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`version: "1.0"`))
	require.NoError(t, err)

	assert.Equal(t, DefaultStorePath, cfg.Store.Path)
	assert.True(t, cfg.AutosaveEnabled())
	assert.True(t, cfg.WatchEnabled())
	assert.Equal(t, DefaultTheme, cfg.TUI.Theme)
	assert.Equal(t, DefaultKeymap, cfg.TUI.Keymap)
	assert.Empty(t, cfg.Seed)
}

func TestLoadFromBytesEmptyDocument(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, "1.0", cfg.Version)
}

func TestLoadFromBytesSeedAndStore(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
version: "1.0"
seed:
  - id: mm
    name: Mickey
    surname: Mouse
  - name: Walt
    surname: Disney
store:
  path: data/people.yml
  autosave: false
tui:
  theme: gruvbox
  keymap: emacs
`))
	require.NoError(t, err)

	require.Len(t, cfg.Seed, 2)
	assert.Equal(t, SeedRecord{ID: "mm", Name: "Mickey", Surname: "Mouse"}, cfg.Seed[0])
	assert.Equal(t, "", cfg.Seed[1].ID)
	assert.Equal(t, "data/people.yml", cfg.Store.Path)
	assert.False(t, cfg.AutosaveEnabled())
	assert.True(t, cfg.WatchEnabled())
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, "emacs", cfg.TUI.Keymap)
}

func TestLoadFromBytesTOML(t *testing.T) {
	cfg, err := LoadFromBytesFormat([]byte(`
version = "1.0"

[store]
path = "people.yml"
watch = false

[[seed]]
name = "Donald"
surname = "Duck"

[logging]
level = "debug"
`), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, "people.yml", cfg.Store.Path)
	assert.False(t, cfg.WatchEnabled())
	require.Len(t, cfg.Seed, 1)
	assert.Equal(t, "Donald", cfg.Seed[0].Name)

	var logCfg struct {
		Level string `yaml:"level"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "debug", logCfg.Level)
}

func TestSchemaRejectsWrongTypes(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
version: "1.0"
store:
  autosave: "sometimes"
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))
}

func TestSchemaRejectsUnknownTheme(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
tui:
  theme: neon
`))
	require.Error(t, err)
}

func TestValidateDuplicateSeedIDs(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
seed:
  - {id: a, name: Ann, surname: A}
  - {id: a, name: Bob, surname: B}
`))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigValidation, errors.GetCode(err))
}

func TestValidateKeymap(t *testing.T) {
	cfg := Default()
	cfg.TUI.Keymap = "hjkl"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tui.keymap")
}

func TestExtensions(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
version: "1.0"
logging:
  level: warn
  report_caller: true
  file:
    enabled: true
    path: /tmp/rolodex.log
`))
	require.NoError(t, err)
	require.Contains(t, cfg.Extensions, "logging")

	type fileSink struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	}
	var logCfg struct {
		Level        string   `yaml:"level"`
		ReportCaller bool     `yaml:"report_caller"`
		File         fileSink `yaml:"file"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "warn", logCfg.Level)
	assert.True(t, logCfg.ReportCaller)
	assert.Equal(t, "/tmp/rolodex.log", logCfg.File.Path)

	// missing extensions leave the target untouched
	var other struct{ X int }
	require.NoError(t, cfg.UnmarshalExtension("missing", &other))
	assert.Zero(t, other.X)
}

func TestEnvVarExpansion(t *testing.T) {
	t.Setenv("ROLODEX_TEST_STORE", "/data/people.yml")

	cfg, err := LoadFromBytes([]byte(`
store:
  path: ${ROLODEX_TEST_STORE}
tui:
  title: ${ROLODEX_TEST_UNSET:-Address Book}
`))
	require.NoError(t, err)
	assert.Equal(t, "/data/people.yml", cfg.Store.Path)
	assert.Equal(t, "Address Book", cfg.TUI.Title)
}

func TestFindConfigFileWalksUp(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "rolodex.yml"), "version: \"1.0\"\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	path, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "rolodex.yml"), path)
}

func TestFindConfigFileNotFound(t *testing.T) {
	isolate(t)
	_, err := FindConfigFile(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestLoadFromMergesGlobalProjectAndOverride(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("ROLODEX_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", xdg)
	writeFile(t, filepath.Join(xdg, "rolodex", "rolodex.yml"), `
tui:
  theme: terminal
  title: Global
`)

	project := t.TempDir()
	writeFile(t, filepath.Join(project, "rolodex.yml"), `
version: "1.0"
tui:
  title: Project
seed:
  - {name: Mickey, surname: Mouse}
`)
	writeFile(t, filepath.Join(project, "rolodex.override.yml"), `
store:
  autosave: false
`)

	cfg, err := LoadFrom(project)
	require.NoError(t, err)

	assert.Equal(t, "terminal", cfg.TUI.Theme)
	assert.Equal(t, "Project", cfg.TUI.Title)
	assert.False(t, cfg.AutosaveEnabled())
	assert.Len(t, cfg.Seed, 1)
	assert.Equal(t, filepath.Join(project, "rolodex.yml"), cfg.Path())
	assert.Equal(t, filepath.Join(project, ".rolodex", "records.yml"), cfg.StorePath("/elsewhere"))
}

func TestLoadOrDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadOrDefault(t.TempDir())
	require.NoError(t, err)
	require.Len(t, cfg.Seed, 2)
	assert.Equal(t, "Mickey", cfg.Seed[0].Name)
	assert.Equal(t, "Walt", cfg.Seed[1].Name)
	assert.Equal(t, filepath.Join("/base", DefaultStorePath), cfg.StorePath("/base"))
}

func TestLoadTOMLFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "rolodex.toml"), "version = \"1.0\"\n[tui]\nkeymap = \"arrows\"\n")

	cfg, err := Load(filepath.Join(dir, "rolodex.toml"))
	require.NoError(t, err)
	assert.Equal(t, "arrows", cfg.TUI.Keymap)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestLoadLayered(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	writeFile(t, filepath.Join(project, "rolodex.yml"), "tui:\n  title: Base\n")
	writeFile(t, filepath.Join(project, ".rolodex.override.yml"), "tui:\n  title: Override\n")

	layered, err := LoadLayered(project)
	require.NoError(t, err)

	assert.Nil(t, layered.Global)
	assert.Equal(t, "Base", layered.Project.TUI.Title)
	require.Len(t, layered.Overrides, 1)
	assert.Equal(t, "Override", layered.Final.TUI.Title)
	assert.Equal(t, filepath.Join(project, "rolodex.yml"), layered.FilePaths[SourceProject])
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"Rolodex Configuration"`)
	assert.Contains(t, s, `"seed"`)
	assert.Contains(t, s, `"keymap"`)
	assert.NotContains(t, s, `"Extensions"`)
}
