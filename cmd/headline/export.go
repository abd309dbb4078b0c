package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/headliner/internal/export"
)

const formatAll = "all"

type exportOptions struct {
	format     string
	configPath string
	outDir     string
	check      bool
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate JSON, CSS, HTML or React code for a headline",
		Long: `Generate export artifacts for the live headline, or for a configuration file
passed with --config. Artifacts are printed unless --out names a directory to
write them into.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "css", "Artifact to generate: json, css, html, react or all")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Headline configuration file (JSON or YAML)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Directory to write artifact files into")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Verify every artifact describes the same styling")

	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts *exportOptions) error {
	formats, err := selectFormats(opts.format)
	if err != nil {
		return newCommandError("export", "selecting format", err, "Use one of: json, css, html, react, all.")
	}

	app, err := openApp(cmd, flags, "export", nil)
	if err != nil {
		return err
	}

	cfg, err := loadSettings(app, opts.configPath, "export")
	if err != nil {
		return err
	}

	artifacts, err := export.Generate(cfg)
	if err != nil {
		return newCommandError("export", "generating artifacts", err, "Report this issue with the configuration that triggered it.")
	}

	if opts.check {
		if issues := export.CheckConsistency(cfg, artifacts); len(issues) > 0 {
			for _, issue := range issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s\n", issue)
			}
			return newCommandError("export", "checking artifact consistency", fmt.Errorf("%d inconsistencies found", len(issues)), "Report this issue with the configuration that triggered it.")
		}
		app.Log.Debug("Artifacts are consistent")
	}

	if strings.TrimSpace(opts.outDir) == "" {
		return printArtifacts(cmd, formats, artifacts)
	}

	deliverer := export.NewDeliverer(nil, opts.outDir, app.Log)
	for _, f := range formats {
		res := deliverer.Download(f, artifacts.Get(f))
		if !res.OK() {
			return newCommandError("export", fmt.Sprintf("writing %s", f.Label()), res.Err, "Check that the output directory is writable.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", res.Target)
	}

	return nil
}

func selectFormats(id string) ([]export.Format, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == formatAll {
		return export.Formats, nil
	}
	if id == "" {
		return nil, errors.New("format cannot be empty")
	}
	f, err := export.ParseFormat(id)
	if err != nil {
		return nil, err
	}
	return []export.Format{f}, nil
}

func printArtifacts(cmd *cobra.Command, formats []export.Format, artifacts export.Artifacts) error {
	out := cmd.OutOrStdout()
	if len(formats) == 1 {
		_, err := fmt.Fprintln(out, artifacts.Get(formats[0]))
		return err
	}

	for i, f := range formats {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "== %s (%s) ==\n", f.Label(), f.Filename())
		fmt.Fprintln(out, artifacts.Get(f))
	}
	return nil
}
