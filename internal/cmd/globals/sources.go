package globals

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bimmap"
	"github.com/agentstation/bimmap/internal/cmd/application"
	"github.com/agentstation/bimmap/pkg/datamodel"
)

// SourceFlags select the two input workbooks and the central document sheet.
type SourceFlags struct {
	VPFile       string
	CentralDoc   string
	CentralSheet string
}

// AddSourceFlags adds the input selection flags to a command.
func AddSourceFlags(cmd *cobra.Command) *SourceFlags {
	flags := &SourceFlags{}

	cmd.Flags().StringVar(&flags.VPFile, "vp", "",
		"VP data-model export (xlsx)")
	cmd.Flags().StringVar(&flags.CentralDoc, "central", "",
		"Central document mapping BIM objects to source systems (xlsx)")
	cmd.Flags().StringVar(&flags.CentralSheet, "sheet", "",
		"Central document sheet (default Linear, or the first sheet)")

	return flags
}

// Resolve fills unset flags from the configured settings.
func (f *SourceFlags) Resolve(settings application.Settings) SourceFlags {
	resolved := *f
	if resolved.VPFile == "" {
		resolved.VPFile = settings.VPFile
	}
	if resolved.CentralDoc == "" {
		resolved.CentralDoc = settings.CentralDoc
	}
	if resolved.CentralSheet == "" {
		resolved.CentralSheet = settings.CentralSheet
	}
	return resolved
}

// ClientOptions returns the client options the resolved flags call for.
func (f SourceFlags) ClientOptions() []bimmap.Option {
	var opts []bimmap.Option
	if f.CentralSheet != "" {
		opts = append(opts, bimmap.WithCentralSheet(f.CentralSheet))
	}
	return opts
}

// Run resolves the flags against the app settings and runs the pipeline.
func (f *SourceFlags) Run(cmd *cobra.Command, app application.Application) (*datamodel.Bundle, error) {
	src := f.Resolve(app.Settings())

	client, err := app.Client(src.ClientOptions()...)
	if err != nil {
		return nil, err
	}

	app.Logger().Debug().
		Str("vp_file", src.VPFile).
		Str("central_doc", src.CentralDoc).
		Str("central_sheet", src.CentralSheet).
		Msg("Running pipeline")

	return client.Run(cmd.Context(), src.VPFile, src.CentralDoc)
}
