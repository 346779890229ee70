package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/rolodex/cli"
	"github.com/grovetools/rolodex/logging"
	"github.com/grovetools/rolodex/tui/theme"
	"github.com/hpcloud/tail"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewLogsCmd creates the `logs` command.
func NewLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the rolodex log files",
		Long: `Prints the most recent log file written by a rolodex component.
Logs live in .rolodex/logs/ unless ROLODEX_LOG_DIR or logging.file.path is set.

Examples:
  # follow the TUI log while it runs in another terminal
  rolodex logs -f

  # last 20 lines of the CLI log
  rolodex logs --component cli --tail 20
`,
		Args: cli.NoArgs,
		RunE: runLogsE,
	}

	cmd.Flags().BoolP("follow", "f", false, "Follow log output")
	cmd.Flags().Int("tail", -1, "Number of lines to show from the end of the log (default: all)")
	cmd.Flags().String("component", "tui", "Component whose log to show")

	return cmd
}

func runLogsE(cmd *cobra.Command, args []string) error {
	logger := cli.GetLogger(cmd)
	opts := cli.GetOptions(cmd)
	out := cmd.OutOrStdout()

	follow, _ := cmd.Flags().GetBool("follow")
	tailLines, _ := cmd.Flags().GetInt("tail")
	component, _ := cmd.Flags().GetString("component")

	logsDir := filepath.Dir(logging.FilePath(component, logging.LoadConfig()))
	logFile, err := findLatestLogFile(logsDir, component)
	if err != nil {
		if !follow {
			return err
		}
		// nothing written yet; follow the file today's run will create
		logFile = logging.FilePath(component, logging.LoadConfig())
	}

	logger.WithFields(logrus.Fields{
		"component": component,
		"log_file":  logFile,
		"follow":    follow,
	}).Debug("Reading log file")

	emit := func(line string) {
		if opts.JSONOutput {
			printLogJSON(out, component, line)
		} else {
			printLogText(out, line)
		}
	}

	if !follow {
		lines, err := readLastLines(logFile, tailLines)
		if err != nil {
			return err
		}
		for _, line := range lines {
			emit(line)
		}
		return nil
	}

	return followFile(cmd, logFile, tailLines, emit)
}

// findLatestLogFile returns the most recently modified log of component in
// dir, preferring non-empty files.
func findLatestLogFile(dir, component string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("could not read log directory %s: %w", dir, err)
	}

	var latest, latestNonEmpty os.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), component+"-") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == nil || info.ModTime().After(latest.ModTime()) {
			latest = info
		}
		if info.Size() > 0 && (latestNonEmpty == nil || info.ModTime().After(latestNonEmpty.ModTime())) {
			latestNonEmpty = info
		}
	}

	switch {
	case latestNonEmpty != nil:
		return filepath.Join(dir, latestNonEmpty.Name()), nil
	case latest != nil:
		return filepath.Join(dir, latest.Name()), nil
	default:
		return "", fmt.Errorf("no %s log files found in %s", component, dir)
	}
}

// readLastLines returns the last n non-empty lines of path, or all of them
// when n is negative.
func readLastLines(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if n >= 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// followFile prints the tail of path and then every line appended to it
// until the command's context is cancelled.
func followFile(cmd *cobra.Command, path string, tailLines int, emit func(string)) error {
	location := &tail.SeekInfo{Offset: 0, Whence: io.SeekStart}
	if tailLines >= 0 {
		if lines, err := readLastLines(path, tailLines); err == nil {
			for _, line := range lines {
				emit(line)
			}
		}
		location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: false,
		Location:  location,
		Logger:    stdlog.New(io.Discard, "", 0),
	})
	if err != nil {
		return fmt.Errorf("failed to follow %s: %w", path, err)
	}
	defer t.Cleanup()

	ctx := cmd.Context()
	if ctx == nil {
		for line := range t.Lines {
			if line.Err != nil {
				return line.Err
			}
			emit(line.Text)
		}
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return t.Stop()
		case line, ok := <-t.Lines:
			if !ok {
				return t.Err()
			}
			if line.Err != nil {
				return line.Err
			}
			if line.Text != "" {
				emit(line.Text)
			}
		}
	}
}

// printLogJSON prints a log line as JSON. Text lines are wrapped in an
// object with a raw_line field.
func printLogJSON(w io.Writer, component, line string) {
	var logMap map[string]interface{}
	if err := json.Unmarshal([]byte(line), &logMap); err != nil {
		logMap = map[string]interface{}{
			"component": component,
			"raw_line":  line,
		}
	}
	data, _ := json.Marshal(logMap)
	fmt.Fprintln(w, string(data))
}

// printLogText pretty-prints JSON log lines and passes text lines through.
func printLogText(w io.Writer, line string) {
	var logMap map[string]interface{}
	if err := json.Unmarshal([]byte(line), &logMap); err != nil {
		fmt.Fprintln(w, line)
		return
	}

	t := theme.DefaultTheme
	ts, _ := logMap["time"].(string)
	level, _ := logMap["level"].(string)
	msg, _ := logMap["msg"].(string)
	component, _ := logMap["component"].(string)

	parsedTime, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		parsedTime, _ = time.Parse(time.RFC3339, ts)
	}

	var levelStyle lipgloss.Style
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		levelStyle = t.Error
	case "warning":
		levelStyle = t.Warning
	case "info":
		levelStyle = t.Info
	default:
		levelStyle = t.Muted
	}

	var keys []string
	for k := range logMap {
		switch k {
		case "time", "level", "msg", "component":
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	fields := make([]string, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, fmt.Sprintf("%s=%v", t.Muted.Render(k), logMap[k]))
	}

	fmt.Fprintf(w, "%s %s %s [%s] %s\n",
		parsedTime.Format("15:04:05"),
		levelStyle.Render(strings.ToUpper(level)),
		msg,
		t.Muted.Render(component),
		strings.Join(fields, " "),
	)
}
