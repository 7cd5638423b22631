// Package sheets provides the sheets command, which lists the sheets of a
// workbook so a central document sheet can be chosen.
package sheets

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bimmap/internal/cmd/application"
	"github.com/agentstation/bimmap/internal/cmd/output"
	"github.com/agentstation/bimmap/internal/cmd/table"
)

// NewCommand creates the sheets command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "sheets <file>",
		GroupID: "core",
		Short:   "List the sheets of a workbook",
		Example: `  bimmap sheets central.xlsx
  bimmap run --sheet "$(bimmap sheets central.xlsx -o json | jq -r '.[0]')"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}
			format = output.DetectFormat(string(format))

			client, err := app.Client()
			if err != nil {
				return err
			}

			names, err := client.Sheets(args[0])
			if err != nil {
				return err
			}

			return output.Write(cmd.OutOrStdout(), format, table.SheetsToTableData(names), names)
		},
	}
}
