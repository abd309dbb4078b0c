package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLoadCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <id>",
		Short: "Make a saved headline the live headline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, flags, args[0])
		},
	}

	return cmd
}

func runLoad(cmd *cobra.Command, flags *rootFlags, id string) error {
	if strings.TrimSpace(id) == "" {
		return newCommandError("load", "validating headline ID", errors.New("headline ID cannot be empty"), "Provide the ID you wish to load.")
	}

	app, err := openApp(cmd, flags, "load", nil)
	if err != nil {
		return err
	}

	entry, err := app.Library.Get(id)
	if err != nil {
		return newCommandError("load", fmt.Sprintf("looking up headline %q", id), err, "Run 'headline list' to view saved headlines.")
	}

	if _, err := app.Session.Replace(entry.Settings); err != nil {
		return newCommandError("load", "saving the live headline", err, dataDirSuggestion)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Loaded '%s'\n", entry.Name)
	return nil
}
