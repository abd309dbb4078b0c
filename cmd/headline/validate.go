package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headliner/internal/settings"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check a headline configuration for errors",
		Long:  `Check a JSON or YAML headline configuration. Without FILE the live headline is checked.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runValidateFile(cmd, args[0])
			}
			return runValidateSession(cmd, flags)
		},
	}

	return cmd
}

func runValidateFile(cmd *cobra.Command, path string) error {
	if err := validateConfigPath(path); err != nil {
		return newCommandError("validate", "locating configuration", err, "Check the file path and try again.")
	}

	cfg, err := settings.LoadFile(path)
	if err != nil {
		return newCommandError("validate", "parsing configuration", err, "Fix the syntax error at the reported line.")
	}
	if err := settings.Validate(cfg); err != nil {
		return newCommandError("validate", "checking configuration", err, "Fix the reported field and retry.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid\n", path)
	return nil
}

func runValidateSession(cmd *cobra.Command, flags *rootFlags) error {
	app, err := openApp(cmd, flags, "validate", nil)
	if err != nil {
		return err
	}
	if err := settings.Validate(app.Session.Current()); err != nil {
		return newCommandError("validate", "checking the live headline", err, "Use 'headline set' to fix the field, or 'headline reset'.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Live headline is valid")
	return nil
}
