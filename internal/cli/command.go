// Package cli wires the projsize command line: flags, help text and the
// scan-then-report flow.
package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/projsize/internal/projsize"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	var options projsize.Options

	allowedOutputs := []string{"table", "json"}
	allowedSorts := []string{projsize.SortByName, projsize.SortBySize}

	cmd := &cobra.Command{
		Use:   "projsize [flags] root",
		Short: "Report disk usage of target subfolders across project directories",
		Long: heredoc.Doc(`
			projsize scans a root directory containing project folders and reports
			disk usage for a configurable set of target subfolder names (e.g.
			"Email", "Incoming") found anywhere beneath each project.

			Folder names are matched case-insensitively with whitespace and
			punctuation stripped, so "Data In", "data-in" and "DATA_IN" all refer
			to the same target. When one target folder is nested inside another,
			the nested folder's size is subtracted from its ancestor so that
			space is never counted twice.

			Results are printed as a table (or JSON with -o json) and can
			additionally be exported to a CSV file with --export-csv.
		`),
		Args:          cobra.ExactArgs(1),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			options.Root = args[0]

			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if !slices.Contains(allowedSorts, options.SortBy) {
				return fmt.Errorf("invalid sort order %q: must be one of %v", options.SortBy, allowedSorts)
			}

			return logic(options)
		},
	}

	flags := cmd.Flags()

	flags.StringSliceVarP(
		&options.Targets,
		"targets",
		"t",
		projsize.DefaultTargets,
		"Target folder names to match (case and punctuation insensitive)",
	)
	flags.StringVar(&options.CSVPath, "export-csv", "", "Write one CSV row per match to the given path")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	flags.StringVar(&options.SortBy, "sort", projsize.SortByName, "Row ordering: name or size")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.SortFlags = false

	return cmd.Execute()
}
