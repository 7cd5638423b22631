// Package diagram provides the diagram command, which renders the data model
// and its QA charts as an HTML page.
package diagram

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/bimmap/internal/cmd/alerts"
	"github.com/agentstation/bimmap/internal/cmd/application"
	"github.com/agentstation/bimmap/internal/cmd/globals"
	"github.com/agentstation/bimmap/pkg/constants"
	"github.com/agentstation/bimmap/pkg/diagram"
	"github.com/agentstation/bimmap/pkg/errors"
	"github.com/agentstation/bimmap/pkg/report"
)

// DefaultOutput is the file written when --out is not given.
const DefaultOutput = "bimmap-diagram.html"

// NewCommand creates the diagram command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var (
		out  string
		topN int
	)

	cmd := &cobra.Command{
		Use:     "diagram",
		GroupID: "output",
		Short:   "Render the data model as an interactive HTML diagram",
		Long: `Diagram renders the resolved entities as a force-directed graph coloured
by source system, together with the relationship type and entity system
distributions and the entities with the most attributes.`,
		Example: `  bimmap diagram --vp vp.xlsx --central central.xlsx --out model.html`,
		Args:    cobra.NoArgs,
	}

	sources := globals.AddSourceFlags(cmd)
	cmd.Flags().StringVar(&out, "out", DefaultOutput, "HTML file to write")
	cmd.Flags().IntVar(&topN, "top", 0, "Number of entities in the attribute count chart (default 15)")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		bundle, err := sources.Run(cmd, app)
		if err != nil {
			return err
		}

		if topN <= 0 {
			topN = app.Settings().TopN
		}
		graph := diagram.Build(bundle)
		rep := report.Build(bundle, topN)

		f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
		if err != nil {
			return errors.WrapIO("create", out, err)
		}
		if err := diagram.RenderHTML(f, graph, rep); err != nil {
			_ = f.Close()
			return errors.WrapResource("render", "diagram", out, err)
		}
		if err := f.Close(); err != nil {
			return errors.WrapIO("close", out, err)
		}

		flags := globals.Parse(cmd)
		return alerts.NewWriter(cmd.ErrOrStderr(), flags.NoColor, flags.Quiet).Success(
			"Wrote diagram of %d entities and %d relationships to %s",
			len(graph.Nodes), len(graph.Edges), out)
	}

	return cmd
}
