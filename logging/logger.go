package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grovetools/rolodex/config"
	"github.com/grovetools/rolodex/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific component.
// Loggers are cached per component.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logCfg := loadConfig()
	logger := logrus.New()

	levelStr := "info"
	if env := os.Getenv("ROLODEX_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if os.Getenv("ROLODEX_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: logCfg.Format})
	}

	var writers []io.Writer

	logFilePath := FilePath(component, logCfg)
	if logFilePath != "" {
		dir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			if logCfg.File.Enabled {
				logger.Warnf("Failed to create log directory %s: %v", dir, err)
			}
		} else {
			file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err == nil {
				writers = append(writers, file)
			} else if logCfg.File.Enabled {
				logger.Warnf("Failed to open log file %s: %v", logFilePath, err)
			}
		}
	}

	if shouldLogToStderr(logCfg, logger.GetLevel()) {
		writers = append(writers, GetGlobalOutput())
	}

	switch len(writers) {
	case 0:
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// FilePath returns the log file a component writes to.
// Precedence: explicit file sink path, ROLODEX_LOG_DIR, then
// .rolodex/logs/<component>-<date>.log under the working directory.
func FilePath(component string, cfg Config) string {
	if cfg.File.Enabled && cfg.File.Path != "" {
		return expandPath(cfg.File.Path)
	}

	name := fmt.Sprintf("%s-%s.log", component, time.Now().Format("2006-01-02"))
	if dir := os.Getenv("ROLODEX_LOG_DIR"); dir != "" {
		return filepath.Join(expandPath(dir), name)
	}

	cwd, err := os.Getwd()
	if err == nil {
		return filepath.Join(cwd, ".rolodex", "logs", name)
	}
	if dir := paths.LogsDir(); dir != "" {
		return filepath.Join(dir, name)
	}
	return ""
}

// LoadConfig returns the `logging` section of the active configuration, or
// the zero Config when no configuration file is found.
func LoadConfig() Config {
	return loadConfig()
}

func loadConfig() Config {
	var logCfg Config
	cfg, err := config.LoadDefault()
	if err != nil {
		return logCfg
	}
	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
		logrus.Warnf("Failed to parse 'logging' config: %v", err)
	}
	return logCfg
}

func shouldLogToStderr(cfg Config, level logrus.Level) bool {
	mode := "auto"
	if cfg.Format.StructuredToStderr != "" {
		mode = cfg.Format.StructuredToStderr
	}

	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		// auto: only when debugging or when stderr is not an interactive terminal
		isDebug := os.Getenv("ROLODEX_DEBUG") == "1" || level == logrus.DebugLevel
		isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		return isDebug || !isInteractive
	}
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
