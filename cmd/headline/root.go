package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	dataDir string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "headline",
		Short:         "Headliner designs styled headlines and exports them as JSON, CSS, HTML and React",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the studio
			if len(args) == 0 {
				return runStudio(cmd, flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Directory holding the live headline and saved headlines (default $HEADLINER_HOME or ~/.headliner)")

	cmd.AddCommand(newStudioCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newSetCmd(flags))
	cmd.AddCommand(newResetCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newSaveCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newLoadCmd(flags))
	cmd.AddCommand(newRemoveCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
