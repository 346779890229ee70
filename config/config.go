package config

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/rolodex/errors"
	"github.com/grovetools/rolodex/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames are searched in order in every directory.
var configNames = []string{
	"rolodex.yml",
	"rolodex.yaml",
	".rolodex.yml",
	".rolodex.yaml",
	"rolodex.toml",
}

var overrideNames = []string{
	"rolodex.override.yml",
	"rolodex.override.yaml",
	".rolodex.override.yml",
	".rolodex.override.yaml",
}

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the syntax from a file extension; anything that is not
// .toml is read as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads, validates and defaults a single configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytesFormat(data, FormatFor(path))
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// LoadDefault finds and loads the configuration starting from the working directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the given directory:
// 1. Global config ($XDG_CONFIG_HOME/rolodex/rolodex.yml) - base layer
// 2. Project config (rolodex.yml) - overrides global
// 3. Local override (rolodex.override.yml) - overrides all
func LoadFrom(startDir string) (*Config, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return LoadFromWithLogger(startDir, logger)
}

// LoadFromWithLogger is LoadFrom with an explicit logger for load tracing.
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}

	logger.WithField("path", projectPath).Debug("Loading project configuration")

	var finalConfig *Config

	globalPath := getXDGConfigPath()
	if globalPath != "" && globalPath != projectPath {
		if _, err := os.Stat(globalPath); err == nil {
			logger.WithField("path", globalPath).Debug("Loading global configuration")
			globalConfig, err := readRaw(globalPath)
			if err != nil {
				logger.WithError(err).Warn("Failed to parse global configuration, continuing without it")
			} else {
				finalConfig = globalConfig
			}
		}
	}

	projectConfig, err := readRaw(projectPath)
	if err != nil {
		return nil, err
	}

	if finalConfig == nil {
		finalConfig = projectConfig
	} else {
		logger.Debug("Merging project configuration over global configuration")
		finalConfig = mergeConfigs(finalConfig, projectConfig)
	}

	for _, overridePath := range overridePaths(filepath.Dir(projectPath)) {
		logger.WithField("path", overridePath).Debug("Loading local override configuration")
		overrideConfig, err := readRaw(overridePath)
		if err != nil {
			logger.WithError(err).Warn("Failed to parse override file, skipping")
			continue
		}
		finalConfig = mergeConfigs(finalConfig, overrideConfig)
	}

	finalConfig.SetDefaults()
	if err := finalConfig.Validate(); err != nil {
		return nil, err
	}

	finalConfig.path = projectPath
	logger.Debug("Configuration loaded and validated successfully")

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		if configData, err := yaml.Marshal(finalConfig); err == nil {
			logger.Debugf("Merged configuration:\n%s", string(configData))
		}
	}

	return finalConfig, nil
}

// LoadOrDefault loads the configuration visible from startDir, falling back
// to Default when no configuration file exists. Other errors are returned.
func LoadOrDefault(startDir string) (*Config, error) {
	cfg, err := LoadFrom(startDir)
	if errors.Is(err, errors.ErrCodeConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFromBytes parses YAML configuration from a byte array.
func LoadFromBytes(data []byte) (*Config, error) {
	return LoadFromBytesFormat(data, FormatYAML)
}

// LoadFromBytesFormat parses, schema-validates, defaults and validates configuration.
func LoadFromBytesFormat(data []byte, format Format) (*Config, error) {
	doc, err := decodeDocument(data, format)
	if err != nil {
		return nil, err
	}

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to create validator")
	}
	if err := validator.Validate(doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed")
	}

	cfg, err := configFromDocument(doc)
	if err != nil {
		return nil, err
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readRaw reads a file into a Config without defaults or validation, so
// layers can be merged before defaults are applied.
func readRaw(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config").
			WithDetail("path", path)
	}
	doc, err := decodeDocument(data, FormatFor(path))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config").
			WithDetail("path", path)
	}
	cfg, err := configFromDocument(doc)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// decodeDocument expands environment variables and decodes YAML or TOML into
// a generic map. An empty file yields an empty map.
func decodeDocument(data []byte, format Format) (map[string]interface{}, error) {
	expanded := []byte(expandEnvVars(string(data)))
	doc := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(expanded, &doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
		}
	default:
		if len(bytes.TrimSpace(expanded)) == 0 {
			return doc, nil
		}
		if err := yaml.Unmarshal(expanded, &doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
		}
		if doc == nil {
			doc = make(map[string]interface{})
		}
	}
	return doc, nil
}

// configFromDocument maps a generic document onto Config. The document is
// round-tripped through YAML so the inline Extensions map picks up unknown keys
// regardless of the source syntax.
func configFromDocument(doc map[string]interface{}) (*Config, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to normalize configuration")
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode configuration")
	}
	return &cfg, nil
}

// FindConfigFile searches from startDir up to the filesystem root, then the
// XDG config directory.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if xdgConfigPath := getXDGConfigPath(); xdgConfigPath != "" {
		if info, err := os.Stat(xdgConfigPath); err == nil && !info.IsDir() {
			return xdgConfigPath, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// ResolvePath resolves a path from the config relative to the config file's
// directory, or to baseDir when the config was not read from a file.
func (c *Config) ResolvePath(p, baseDir string) string {
	p = expandHome(p)
	if filepath.IsAbs(p) {
		return p
	}
	if c.path != "" {
		return filepath.Join(filepath.Dir(c.path), p)
	}
	return filepath.Join(baseDir, p)
}

// StorePath returns the absolute snapshot path.
func (c *Config) StorePath(baseDir string) string {
	p := c.Store.Path
	if p == "" {
		p = DefaultStorePath
	}
	return c.ResolvePath(p, baseDir)
}

func overridePaths(dir string) []string {
	var found []string
	for _, name := range overrideNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			found = append(found, path)
		}
	}
	return found
}

// expandEnvVars replaces ${VAR} with environment variable values,
// supporting ${VAR:-default}.
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}

// getXDGConfigPath returns the global configuration file path.
func getXDGConfigPath() string {
	return paths.GlobalConfigFile()
}

// LoadLayered loads every configuration layer separately, for inspection,
// and computes the merged result.
func LoadLayered(startDir string) (*LayeredConfig, error) {
	layered := &LayeredConfig{
		Overrides: make([]OverrideSource, 0),
		FilePaths: make(map[ConfigSource]string),
	}

	defaultCfg := &Config{}
	defaultCfg.SetDefaults()
	layered.Default = defaultCfg

	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigNotFound, "failed to find project config file")
	}

	globalPath := getXDGConfigPath()
	if globalPath != "" && globalPath != projectPath {
		if _, err := os.Stat(globalPath); err == nil {
			if globalConfig, err := readRaw(globalPath); err == nil {
				layered.Global = globalConfig
				layered.FilePaths[SourceGlobal] = globalPath
			}
		}
	}

	projectConfig, err := readRaw(projectPath)
	if err != nil {
		return nil, err
	}
	layered.Project = projectConfig
	layered.FilePaths[SourceProject] = projectPath

	for _, overridePath := range overridePaths(filepath.Dir(projectPath)) {
		if overrideConfig, err := readRaw(overridePath); err == nil {
			layered.Overrides = append(layered.Overrides, OverrideSource{
				Path:   overridePath,
				Config: overrideConfig,
			})
		}
	}

	finalConfig := &Config{}
	if layered.Global != nil {
		finalConfig = mergeConfigs(finalConfig, layered.Global)
	}
	finalConfig = mergeConfigs(finalConfig, layered.Project)
	for _, override := range layered.Overrides {
		finalConfig = mergeConfigs(finalConfig, override.Config)
	}

	finalConfig.SetDefaults()
	if err := finalConfig.Validate(); err != nil {
		return nil, err
	}
	finalConfig.path = projectPath
	layered.Final = finalConfig

	return layered, nil
}
