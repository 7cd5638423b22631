// Package run provides the run command, which prints the resolved tables.
package run

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bimmap/internal/cmd/application"
	"github.com/agentstation/bimmap/internal/cmd/constants"
	"github.com/agentstation/bimmap/internal/cmd/globals"
	"github.com/agentstation/bimmap/internal/cmd/output"
	"github.com/agentstation/bimmap/pkg/types"
)

// selectors maps --table values to bundle tables.
var selectors = map[string]types.TableName{
	constants.TableEntities:      types.TableEntities,
	constants.TableAttributes:    types.TableAttributes,
	constants.TableRelationships: types.TableRelationships,
	constants.TableObjects:       types.TableObjectLabels,
	constants.TableLabels:        types.TableAttributeLabels,
}

// NewCommand creates the run command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var tableName string

	cmd := &cobra.Command{
		Use:     "run",
		GroupID: "core",
		Short:   "Reconcile the VP export with the central document",
		Long: `Run loads the VP data-model export and the central document, reconciles
the system labels and prints the resolved tables.

Tables:
  entities       - entities with their owning systems
  attributes     - attributes with their owning entity and systems
  relationships  - parent/child relationships between entities
  objects        - reconciled BIM object labels
  labels         - reconciled BIM attribute labels
  all            - every table plus run statistics`,
		Example: `  bimmap run --vp vp.xlsx --central central.xlsx
  bimmap run --table entities -o wide
  bimmap run --table relationships -o json`,
		Args: cobra.NoArgs,
	}

	sources := globals.AddSourceFlags(cmd)
	cmd.Flags().StringVarP(&tableName, "table", "t", constants.TableAll,
		"Table to print: entities, attributes, relationships, objects, labels, all")
	_ = cmd.RegisterFlagCompletionFunc("table",
		cobra.FixedCompletions(constants.Tables, cobra.ShellCompDirectiveNoFileComp))

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		name, ok := selectors[tableName]
		if !ok && tableName != constants.TableAll {
			return fmt.Errorf("unknown table %q: must be one of: entities, attributes, relationships, objects, labels, all", tableName)
		}

		format, err := output.ParseFormat(app.OutputFormat())
		if err != nil {
			return err
		}
		format = output.DetectFormat(string(format))

		bundle, err := sources.Run(cmd, app)
		if err != nil {
			return err
		}

		if tableName == constants.TableAll {
			return output.WriteBundle(cmd.OutOrStdout(), format, bundle)
		}
		return output.WriteTable(cmd.OutOrStdout(), format, bundle, name)
	}

	return cmd
}
