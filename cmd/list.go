package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/rolodex/cli"
	"github.com/grovetools/rolodex/records"
	"github.com/grovetools/rolodex/tui/components/table"
	"github.com/spf13/cobra"
)

// NewListCmd creates the `list` command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the stored records",
		Long: `Prints the records from the snapshot, or the configured seed records
when no snapshot has been written yet.

Examples:
  rolodex list
  rolodex list --json
`,
		Args: cli.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			logger := cli.GetLogger(cmd)

			cfg, err := cli.LoadConfig(opts)
			if err != nil {
				return err
			}

			recs, src, err := loadRecords(cfg)
			if err != nil {
				return err
			}
			logger.WithField("path", src.Path).Debugf("Loaded %d records", len(recs))

			out := cmd.OutOrStdout()
			if opts.JSONOutput {
				if recs == nil {
					recs = []records.Record{}
				}
				data, err := json.MarshalIndent(recs, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			showNumbers, _ := cmd.Flags().GetBool("numbers")
			tableOpts := table.DefaultOptions()
			tableOpts.ShowRowNumbers = showNumbers
			fmt.Fprintln(out, table.RenderRecords(recs, tableOpts))
			return nil
		},
	}
	cmd.Flags().BoolP("numbers", "n", false, "Show row numbers")
	return cmd
}
