package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type removeOptions struct {
	force bool
}

func newRemoveCmd(flags *rootFlags) *cobra.Command {
	opts := &removeOptions{}

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a saved headline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, flags, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Remove without confirmation")

	return cmd
}

func runRemove(cmd *cobra.Command, flags *rootFlags, id string, opts *removeOptions) error {
	if strings.TrimSpace(id) == "" {
		return newCommandError("remove", "validating headline ID", errors.New("headline ID cannot be empty"), "Provide the ID you wish to remove.")
	}

	app, err := openApp(cmd, flags, "remove", nil)
	if err != nil {
		return err
	}

	entry, err := app.Library.Get(id)
	if err != nil {
		return newCommandError("remove", fmt.Sprintf("looking up headline %q", id), err, "Run 'headline list' to view saved headlines.")
	}

	if !opts.force {
		confirmed, err := confirmRemoval(cmd, id, entry.Name)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := app.Library.Remove(id); err != nil {
		return newCommandError("remove", fmt.Sprintf("removing headline %q", id), err, dataDirSuggestion)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed '%s' (%s)\n", entry.Name, id)
	return nil
}

func confirmRemoval(cmd *cobra.Command, id, name string) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("remove", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Remove saved headline '%s' (%s)? [y/N]: ", name, id)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
