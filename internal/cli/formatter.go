package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/projsize/internal/projsize"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// csvHeader defines the CSV export columns, in order.
//
//nolint:gochecknoglobals // Config constant
var csvHeader = []string{"project", "target_name", "size_bytes", "size_readable", "relative_path"}

// PrintJSON outputs the report in JSON format.
func PrintJSON(report *projsize.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the report in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(report *projsize.Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	if len(report.Matches) == 0 {
		fmt.Fprintln(w, "\nNo target folders found.")
	} else {
		fmt.Fprintln(w, "\nTarget folders:\t\t\t")
		fmt.Fprintln(w, "  Project\tTarget\tSize\tPath")

		for _, m := range report.Matches {
			size := projsize.FormatBytes(m.AdjustedBytes)
			if m.Clamped {
				size += " (clamped)"
			}

			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", m.Project, m.TargetName, size, m.RelPath)
		}
	}

	// Stats summary
	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Projects scanned:\t%d\n", report.ProjectCount)

	if len(report.EmptyProjects) > 0 {
		fmt.Fprintf(w, "Projects without targets:\t%d\n", len(report.EmptyProjects))
	}

	fmt.Fprintf(w, "Target folders found:\t%d\n", len(report.Matches))
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(report.TotalBytes)), report.TotalBytes) //nolint:gosec // Adjusted sizes are non-negative

	if report.ErrorCount > 0 {
		fmt.Fprintf(w, "Entries skipped:\t%d\n", report.ErrorCount)
	}

	if report.ClampedCount > 0 {
		fmt.Fprintf(w, "Clamped sizes:\t%d\n", report.ClampedCount)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", report.Elapsed)

	return w.Flush()
}

// ExportCSV writes one row per match to path, creating parent directories
// if absent. The size_bytes column carries the nesting-adjusted size and
// size_readable its human-readable rendering.
func ExportCSV(report *projsize.Report, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory %q: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file %q: %w", path, err)
	}

	writeErr := writeCSV(report, file)

	if err := file.Close(); err != nil && writeErr == nil {
		return fmt.Errorf("closing export file %q: %w", path, err)
	}

	return writeErr
}

func writeCSV(report *projsize.Report, out io.Writer) error {
	w := csv.NewWriter(out)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, m := range report.Matches {
		record := []string{
			m.Project,
			m.TargetName,
			strconv.FormatInt(m.AdjustedBytes, 10),
			projsize.FormatBytes(m.AdjustedBytes),
			m.RelPath,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV output: %w", err)
	}

	return nil
}
