// Package export provides the export command, which writes the resolved
// tables to a new workbook.
package export

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bimmap/internal/cmd/alerts"
	"github.com/agentstation/bimmap/internal/cmd/application"
	"github.com/agentstation/bimmap/internal/cmd/globals"
	"github.com/agentstation/bimmap/pkg/export"
)

// DefaultOutput is the file written when --out is not given.
const DefaultOutput = "bimmap.xlsx"

// NewCommand creates the export command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "output",
		Short:   "Write the resolved tables to an xlsx workbook",
		Long: `Export writes one sheet per table: entities, attributes, relationships,
object_labels and attribute_labels. Absent values are left blank.`,
		Example: `  bimmap export --vp vp.xlsx --central central.xlsx --out resolved.xlsx`,
		Args:    cobra.NoArgs,
	}

	sources := globals.AddSourceFlags(cmd)
	cmd.Flags().StringVar(&out, "out", DefaultOutput, "xlsx file to write")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		bundle, err := sources.Run(cmd, app)
		if err != nil {
			return err
		}

		if err := export.SaveWorkbook(out, bundle); err != nil {
			return err
		}

		flags := globals.Parse(cmd)
		return alerts.NewWriter(cmd.ErrOrStderr(), flags.NoColor, flags.Quiet).Success(
			"Wrote %d entities, %d attributes and %d relationships to %s",
			len(bundle.Entities), len(bundle.Attributes), len(bundle.Relationships), out)
	}

	return cmd
}
