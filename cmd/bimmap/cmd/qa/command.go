// Package qa provides the qa command, which reports data-quality issues found
// while reconciling.
package qa

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bimmap/internal/cmd/alerts"
	"github.com/agentstation/bimmap/internal/cmd/application"
	"github.com/agentstation/bimmap/internal/cmd/globals"
	"github.com/agentstation/bimmap/internal/cmd/output"
	"github.com/agentstation/bimmap/pkg/errors"
	"github.com/agentstation/bimmap/pkg/report"
)

// ErrIssuesFound is returned in strict mode when the report lists any issue.
var ErrIssuesFound = errors.New("data-quality issues found")

// NewCommand creates the qa command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var (
		topN   int
		strict bool
	)

	cmd := &cobra.Command{
		Use:     "qa",
		GroupID: "core",
		Short:   "Report entities, attributes and relationships that did not reconcile",
		Long: `QA runs the pipeline and reports:
  - entities and attributes no system label matched
  - relationship endpoints that name no entity
  - relationship type and entity system distributions
  - the entities with the most attributes
  - foreign keys whose Identifying flag is neither Yes nor No`,
		Example: `  bimmap qa --vp vp.xlsx --central central.xlsx
  bimmap qa --top 5 -o yaml
  bimmap qa --strict   # exit 1 when any issue is found`,
		Args: cobra.NoArgs,
	}

	sources := globals.AddSourceFlags(cmd)
	cmd.Flags().IntVar(&topN, "top", 0, "Number of entities in the attribute count ranking (default 15)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any issue is found")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		format, err := output.ParseFormat(app.OutputFormat())
		if err != nil {
			return err
		}
		format = output.DetectFormat(string(format))

		bundle, err := sources.Run(cmd, app)
		if err != nil {
			return err
		}

		if topN <= 0 {
			topN = app.Settings().TopN
		}
		rep := report.Build(bundle, topN)

		if err := output.WriteReport(cmd.OutOrStdout(), format, rep); err != nil {
			return err
		}

		if !rep.HasIssues() {
			return nil
		}
		flags := globals.Parse(cmd)
		if err := alerts.NewWriter(cmd.ErrOrStderr(), flags.NoColor, flags.Quiet).Warning(
			"%d entity and %d attribute mismatches, %d missing parents, %d missing children",
			len(rep.EntityMismatches), len(rep.AttributeMismatches),
			len(rep.MissingParents), len(rep.MissingChildren)); err != nil {
			return err
		}
		if strict {
			return ErrIssuesFound
		}
		return nil
	}

	return cmd
}
