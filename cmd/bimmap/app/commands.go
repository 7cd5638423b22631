package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/bimmap/cmd/bimmap/cmd/diagram"
	"github.com/agentstation/bimmap/cmd/bimmap/cmd/export"
	"github.com/agentstation/bimmap/cmd/bimmap/cmd/qa"
	"github.com/agentstation/bimmap/cmd/bimmap/cmd/run"
	"github.com/agentstation/bimmap/cmd/bimmap/cmd/sheets"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(run.NewCommand(a))
	rootCmd.AddCommand(qa.NewCommand(a))
	rootCmd.AddCommand(sheets.NewCommand(a))

	// Output commands
	rootCmd.AddCommand(diagram.NewCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "bimmap %s\n", a.version)
			if a.config.Verbose {
				_, _ = fmt.Fprintf(w, "  commit:   %s\n", a.commit)
				_, _ = fmt.Fprintf(w, "  built:    %s\n", a.date)
				_, _ = fmt.Fprintf(w, "  built by: %s\n", a.builtBy)
				_, _ = fmt.Fprintf(w, "  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
