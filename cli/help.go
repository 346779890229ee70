package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/rolodex/tui/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// HelpExtrasFunc renders additional help sections to w.
type HelpExtrasFunc func(w io.Writer, t *theme.Theme)

var (
	helpExtras   = make(map[*cobra.Command]HelpExtrasFunc)
	helpExtrasMu sync.RWMutex
)

const (
	maxWidth = 60
	minWidth = 40
)

// getTerminalWidth returns the terminal width capped at maxWidth.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minWidth || width > maxWidth {
		return maxWidth
	}
	return width
}

// wrapText wraps text to width, keeping existing line breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = maxWidth
	}

	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			out = append(out, paragraph)
			continue
		}
		var line string
		for _, word := range strings.Fields(paragraph) {
			switch {
			case line == "":
				line = word
			case len(line)+1+len(word) <= width:
				line += " " + word
			default:
				out = append(out, line)
				line = word
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// SetStyledHelp installs the styled help page on cmd.
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
}

// ApplyStyledHelpRecursive installs the styled help page on cmd and every
// subcommand, and silences cobra's usage dump on errors. Call it after all
// subcommands are added.
func ApplyStyledHelpRecursive(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
	cmd.SetUsageFunc(func(*cobra.Command) error { return nil })
	for _, sub := range cmd.Commands() {
		ApplyStyledHelpRecursive(sub)
	}
}

// SetStyledHelpWithExtras installs the styled help page on cmd with an
// extra section printed after the examples.
func SetStyledHelpWithExtras(cmd *cobra.Command, extras HelpExtrasFunc) {
	helpExtrasMu.Lock()
	helpExtras[cmd] = extras
	helpExtrasMu.Unlock()
	cmd.SetHelpFunc(styledHelpFunc)
}

// UsageError is a mistake in how a command was invoked (bad flag, stray
// argument) as opposed to a failure while running it.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// IsUsageError reports whether err, or anything it wraps, is a UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return stderrors.As(err, &ue)
}

func flagError(_ *cobra.Command, err error) error {
	return &UsageError{Err: err}
}

// NoArgs is cobra.NoArgs reporting a UsageError.
func NoArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}

// PrintError prints a usage mistake for cmd followed by a pointer to its help.
func PrintError(cmd *cobra.Command, err error) {
	t := theme.DefaultTheme
	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "%s %s\n", t.Error.Bold(true).Render("Error:"), err.Error())
	fmt.Fprintln(w, t.Muted.Render(fmt.Sprintf("Run '%s --help' for usage.", cmd.CommandPath())))
}

// parseDescription splits a long description into body text and the
// block following an "Examples:" line.
func parseDescription(long string) (description string, examples string) {
	for _, marker := range []string{"\nExamples:\n", "\nExample:\n"} {
		if idx := strings.Index(long, marker); idx != -1 {
			return strings.TrimSpace(long[:idx]), strings.TrimSpace(long[idx+len(marker):])
		}
	}
	return long, ""
}

// parseChoices splits a usage string of the form "Label: a, b, or c" into
// "Label:" and its choices. Anything else is returned unchanged.
func parseChoices(usage string) (description string, choices []string) {
	label, list, ok := strings.Cut(usage, ": ")
	if !ok {
		return usage, nil
	}
	parts := strings.Split(list, ", ")
	if len(parts) < 3 {
		return usage, nil
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(strings.TrimPrefix(p, "or "))
	}
	return label + ":", parts
}

// helpPrinter renders one command's help page.
type helpPrinter struct {
	w     io.Writer
	t     *theme.Theme
	width int

	title   lipgloss.Style
	heading lipgloss.Style
	command lipgloss.Style
	sub     lipgloss.Style
	flag    lipgloss.Style
	italic  lipgloss.Style
}

func newHelpPrinter(w io.Writer) *helpPrinter {
	t := theme.DefaultTheme
	return &helpPrinter{
		w:       w,
		t:       t,
		width:   getTerminalWidth() - 2,
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Orange),
		heading: lipgloss.NewStyle().Italic(true).Foreground(t.Colors.Orange),
		command: lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Cyan),
		sub:     lipgloss.NewStyle().Foreground(t.Colors.Green),
		flag:    lipgloss.NewStyle().Foreground(t.Colors.Violet),
		italic:  lipgloss.NewStyle().Italic(true),
	}
}

func (p *helpPrinter) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, " "+format+"\n", args...)
}

func (p *helpPrinter) section(name string) {
	fmt.Fprintln(p.w)
	p.printf("%s", p.heading.Render(name))
}

func (p *helpPrinter) text(s string, style lipgloss.Style) {
	for _, line := range strings.Split(wrapText(s, p.width), "\n") {
		p.printf("%s", style.Render(line))
	}
}

func (p *helpPrinter) header(cmd *cobra.Command, description string) {
	p.printf("%s", p.title.Render(strings.ToUpper(cmd.CommandPath())))
	if cmd.Short != "" {
		p.text(cmd.Short, p.italic)
	}
	if description != "" && description != cmd.Short {
		fmt.Fprintln(p.w)
		p.text(description, lipgloss.NewStyle())
	}
}

func (p *helpPrinter) usage(cmd *cobra.Command) {
	if !cmd.Runnable() && !cmd.HasSubCommands() {
		return
	}
	p.section("USAGE")
	if cmd.Runnable() {
		p.printf("%s", cmd.UseLine())
	}
	if cmd.HasSubCommands() {
		p.printf("%s [command]", cmd.CommandPath())
	}
}

func (p *helpPrinter) commands(cmd *cobra.Command) {
	if !cmd.HasAvailableSubCommands() {
		return
	}
	var subs []*cobra.Command
	nameWidth := 0
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			subs = append(subs, sub)
			nameWidth = max(nameWidth, len(sub.Name()))
		}
	}

	p.section("COMMANDS")
	for _, sub := range subs {
		pad := strings.Repeat(" ", nameWidth-len(sub.Name()))
		p.printf("%s%s  %s", p.command.Render(sub.Name()), pad, sub.Short)
	}
}

// flags lists local flags: one compact line on parent commands, a table
// with defaults and choices on leaf commands.
func (p *helpPrinter) flags(cmd *cobra.Command) {
	var visible []*pflag.Flag
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			visible = append(visible, f)
		}
	})
	if len(visible) == 0 {
		return
	}

	if cmd.HasAvailableSubCommands() {
		names := make([]string, 0, len(visible))
		for _, f := range visible {
			names = append(names, strings.TrimSpace(flagName(f)))
		}
		fmt.Fprintln(p.w)
		p.printf("%s", p.t.Muted.Render("Flags: "+strings.Join(names, ", ")))
		return
	}

	nameWidth := 0
	for _, f := range visible {
		nameWidth = max(nameWidth, len(flagName(f)))
	}

	p.section("FLAGS")
	for _, f := range visible {
		name := flagName(f)
		usage, choices := parseChoices(f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "[]" {
			usage += p.t.Muted.Render(fmt.Sprintf(" (default: %s)", f.DefValue))
		}
		p.printf("%s%s  %s", p.flag.Render(name), strings.Repeat(" ", nameWidth-len(name)), usage)
		for _, choice := range choices {
			p.printf("%s  %s", strings.Repeat(" ", nameWidth), p.t.Muted.Render("• "+choice))
		}
	}
}

// examples styles comment lines muted and colours the command words of
// the others.
func (p *helpPrinter) examples(cmd *cobra.Command, block string) {
	if block == "" {
		return
	}
	rootName := cmd.Root().Name()

	p.section("EXAMPLES")
	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			fmt.Fprintln(p.w)
		case strings.HasPrefix(trimmed, "#"):
			p.printf("%s", p.t.Muted.Render(trimmed))
		default:
			p.printf("  %s", p.exampleLine(trimmed, rootName))
		}
	}
}

func (p *helpPrinter) exampleLine(line, rootName string) string {
	words := strings.Fields(line)
	for i, word := range words {
		switch {
		case i == 0 && word == rootName:
			words[i] = p.command.Render(word)
		case strings.HasPrefix(word, "-"):
			words[i] = p.flag.Render(word)
		case i == 1:
			words[i] = p.sub.Render(word)
		}
	}
	return strings.Join(words, " ")
}

func styledHelpFunc(cmd *cobra.Command, _ []string) {
	p := newHelpPrinter(cmd.OutOrStdout())

	description, examples := cmd.Short, ""
	if cmd.Long != "" {
		description, examples = parseDescription(cmd.Long)
	}
	if cmd.Example != "" {
		examples = cmd.Example
	}

	p.header(cmd, description)
	p.usage(cmd)
	p.commands(cmd)
	p.flags(cmd)
	p.examples(cmd, examples)

	helpExtrasMu.RLock()
	extras := helpExtras[cmd]
	helpExtrasMu.RUnlock()
	if extras != nil {
		extras(p.w, p.t)
	}

	if cmd.HasSubCommands() {
		fmt.Fprintln(p.w)
		p.printf("Use \"%s [command] --help\" for more information.", cmd.CommandPath())
	}
}

// flagName returns "-f, --flag" or "    --flag" so long names line up.
func flagName(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	return "    --" + f.Name
}
