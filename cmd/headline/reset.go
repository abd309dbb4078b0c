package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the live headline to the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd, flags, "reset", nil)
			if err != nil {
				return err
			}
			if _, err := app.Session.Reset(); err != nil {
				return newCommandError("reset", "saving the live headline", err, dataDirSuggestion)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Restored default headline")
			return nil
		},
	}

	return cmd
}
