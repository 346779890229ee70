// Package cmd wires the rolodex commands.
package cmd

import (
	"fmt"
	"io"

	"github.com/grovetools/rolodex/cli"
	"github.com/grovetools/rolodex/tui/theme"
	"github.com/grovetools/rolodex/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the rolodex command tree. Running it without a
// subcommand opens the interactive list.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand("rolodex", "Keep a list of people and edit them in the terminal")
	root.Long = `Keep a list of people and edit them in the terminal.

Records are shown in a list; the selected one is edited in a form next to
it. Changes are saved to a YAML snapshot (.rolodex/records.yml by default)
and edits made to that file while the TUI runs are picked up live.

Examples:
  # open the list
  rolodex

  # print the stored records as JSON
  rolodex list --json

  # follow the TUI log
  rolodex logs -f
`
	root.Version = version.Version
	root.Args = cli.NoArgs
	root.RunE = runTUI
	addTUIFlags(root)

	root.AddCommand(
		NewTUICmd(),
		NewListCmd(),
		NewConfigCmd(),
		NewSchemaCmd(),
		NewLogsCmd(),
		cli.NewVersionCommand("rolodex"),
	)

	cli.ApplyStyledHelpRecursive(root)
	cli.SetStyledHelpWithExtras(root, func(w io.Writer, t *theme.Theme) {
		fmt.Fprintln(w, "\n "+t.Highlight.Italic(true).Render("CONFIG FILES"))
		fmt.Fprintln(w, " rolodex.yml, rolodex.yaml, .rolodex.yml or rolodex.toml, searched upward")
		fmt.Fprintln(w, " "+t.Muted.Render("$XDG_CONFIG_HOME/rolodex/rolodex.yml is merged underneath"))
	})

	return root
}
