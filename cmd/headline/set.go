package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headliner/internal/settings"
)

func newSetCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set key=value...",
		Short: "Change fields of the live headline",
		Long: `Change one or more fields of the live headline. String fields take the value
literally; numbers, booleans and lists are given as JSON, for example:

  headline set text="Launch Day" fontSize=64 gradientEnabled=true
  headline set 'gradientColors=["#ef4444","#eab308"]'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, flags, args)
		},
	}

	return cmd
}

func runSet(cmd *cobra.Command, flags *rootFlags, assignments []string) error {
	app, err := openApp(cmd, flags, "set", nil)
	if err != nil {
		return err
	}

	// Apply every assignment to a scratch copy first so a bad argument
	// leaves the live headline untouched.
	next := app.Session.Current()
	for _, assignment := range assignments {
		patch, err := settings.AssignmentPatch(next, assignment)
		if err != nil {
			return newCommandError("set", fmt.Sprintf("parsing %q", assignment), err, "Use key=value with one of: "+strings.Join(settings.FieldNames(), ", ")+".")
		}
		next, err = settings.ApplyPatch(next, patch)
		if err != nil {
			return newCommandError("set", fmt.Sprintf("applying %q", assignment), err, "Give numbers, booleans and lists as JSON values.")
		}
	}

	if err := settings.Validate(next); err != nil {
		return newCommandError("set", "validating the updated headline", err, "Fix the reported field and retry.")
	}

	if _, err := app.Session.Replace(next); err != nil {
		return newCommandError("set", "saving the live headline", err, dataDirSuggestion)
	}

	for _, assignment := range assignments {
		key, _, _ := strings.Cut(assignment, "=")
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Set %s\n", strings.TrimSpace(key))
	}
	return nil
}
