package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/rolodex/cli"
	"github.com/grovetools/rolodex/logging"
	"github.com/grovetools/rolodex/records"
	"github.com/grovetools/rolodex/state"
	"github.com/grovetools/rolodex/tui"
	"github.com/grovetools/rolodex/tui/keymap"
	"github.com/grovetools/rolodex/tui/listform"
	"github.com/grovetools/rolodex/tui/theme"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewTUICmd creates the `tui` command.
func NewTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive list and form",
		Long: `Open the interactive list and form.

The list shows every record; moving the cursor loads the record into the
form. Press n for a new record, ctrl+s to save the form, ctrl+d or D to
delete, tab to move between the list and the fields, ? for all keys.`,
		Args: cli.NoArgs,
		RunE: runTUI,
	}
	addTUIFlags(cmd)
	return cmd
}

func addTUIFlags(cmd *cobra.Command) {
	cmd.Flags().String("keymap", "", "Key style: vim, emacs, or arrows")
	cmd.Flags().Bool("no-watch", false, "Do not reload the snapshot when it changes on disk")
}

// keymapStyle returns the --keymap value when given, else the configured style.
func keymapStyle(cmd *cobra.Command, configured string) (string, error) {
	style, _ := cmd.Flags().GetString("keymap")
	switch style {
	case "":
		return configured, nil
	case keymap.StyleVim, keymap.StyleEmacs, keymap.StyleArrows:
		return style, nil
	default:
		return "", &cli.UsageError{Err: fmt.Errorf("invalid --keymap %q (must be vim, emacs, or arrows)", style)}
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	opts := cli.GetOptions(cmd)

	cfg, err := cli.LoadConfig(opts)
	if err != nil {
		return err
	}
	style, err := keymapStyle(cmd, cfg.TUI.Keymap)
	if err != nil {
		return err
	}

	// the TUI owns the terminal; logs only go to the file sink
	logging.SetGlobalOutput(io.Discard)
	defer logging.SetGlobalOutput(os.Stderr)
	logger := logging.NewLogger("tui")

	theme.Use(cfg.TUI.Theme)
	tui.InitializeTUI()

	var overrides keymap.Overrides
	if err := cfg.UnmarshalExtension("keys", &overrides); err != nil {
		logger.WithError(err).Warn("Ignoring invalid 'keys' section")
	}
	keys := keymap.Load(style, overrides)

	seed, src, err := loadRecords(cfg)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"path":     src.Path,
		"snapshot": src.FromSnapshot,
		"records":  len(seed),
	}).Info("Starting TUI")

	modelOpts := listform.Options{
		Title:  cfg.TUI.Title,
		Seed:   seed,
		Keys:   &keys,
		Logger: logger,
	}
	if cfg.AutosaveEnabled() {
		modelOpts.Persist = func(recs []records.Record) error {
			return state.Save(src.Path, recs)
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	noWatch, _ := cmd.Flags().GetBool("no-watch")
	if cfg.WatchEnabled() && !noWatch {
		changes, err := watchSnapshot(ctx, src.Path, logger)
		if err != nil {
			logger.WithError(err).Warn("Snapshot watching disabled")
		} else {
			modelOpts.Changes = changes
		}
	}

	model := listform.New(modelOpts)

	// first run: write the seed (with its generated ids) so the file exists
	if modelOpts.Persist != nil && !src.FromSnapshot {
		if err := modelOpts.Persist(model.Controller().Records()); err != nil {
			return err
		}
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	logger.WithField("records", model.Controller().Len()).Info("TUI closed")
	return nil
}

// watchSnapshot starts a state.Watcher on path and returns the channel its
// changes are delivered on. The watcher stops when ctx is cancelled.
func watchSnapshot(ctx context.Context, path string, logger *logrus.Entry) (<-chan []records.Record, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	changes := make(chan []records.Record, 1)
	w, err := state.NewWatcher(path, state.DefaultDebounce, latestOnly(changes))
	if err != nil {
		return nil, err
	}

	logger.WithField("path", w.Path()).Debug("Watching snapshot")
	go w.Start(ctx)
	return changes, nil
}

// latestOnly returns a callback that leaves only the newest records in the
// one-slot channel ch. It never blocks, even once nothing reads ch.
func latestOnly(ch chan []records.Record) func([]records.Record) {
	return func(recs []records.Record) {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- recs:
		default:
		}
	}
}
