package cmd

import (
	"fmt"

	"github.com/grovetools/rolodex/cli"
	"github.com/grovetools/rolodex/config"
	"github.com/spf13/cobra"
)

// NewSchemaCmd creates the `schema` command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema for rolodex.yml",
		Long: `Prints the JSON schema used to validate rolodex.yml.

Examples:
  # point your editor's YAML language server at it
  rolodex schema > rolodex.schema.json
`,
		Args: cli.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
