package projsize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrRootNotFound indicates the scan root is missing or not a directory.
// It is the only fatal condition: everything below the root degrades to
// partial or zero results.
var ErrRootNotFound = errors.New("root directory not found")

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// Run scans the immediate subdirectories of opt.Root as projects, locates
// target folders in each, computes their sizes, adjusts for nesting, and
// returns the aggregated report. Matches are ordered per opt.SortBy.
//
// The scan can be cancelled via ctx. Progress updates (files seen, bytes
// summed) are sent to progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Report, error) {
	log := logger{enabled: opt.Debug}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	root := filepath.Clean(opt.Root)

	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrRootNotFound, opt.Root, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrRootNotFound, opt.Root)
	}

	targets := NewTargetSet(opt.Targets)
	if targets.Len() == 0 {
		targets = NewTargetSet(DefaultTargets)
	}

	log.printf("[debug]: target names:\n")

	for _, name := range targets.Names() {
		log.printf("[debug]:   - %s (%s)\n", name, Normalize(name))
	}

	collector := newCollector()

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start progress reporter goroutine
	startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)

	start := time.Now()

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing root %q: %w", root, err)
	}

	report := &Report{
		Root:    root,
		Targets: targets.Names(),
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		project := Project{
			Name: entry.Name(),
			Path: filepath.Join(root, entry.Name()),
		}
		report.ProjectCount++

		log.printf("[debug]: scanning project: %s\n", project.Name)

		matches, err := scanProject(ctx, project, targets, collector, log)
		if err != nil {
			return nil, err
		}

		if len(matches) == 0 {
			log.printf("[debug]:   no target folders found\n")

			report.EmptyProjects = append(report.EmptyProjects, project.Name)

			continue
		}

		report.ClampedCount += Adjust(matches)
		report.Matches = append(report.Matches, matches...)
	}

	SortMatches(report.Matches, opt.SortBy)

	for _, match := range report.Matches {
		report.TotalBytes += match.AdjustedBytes
	}

	report.ErrorCount = collector.errors()
	report.Elapsed = time.Since(start)

	return report, nil
}

// scanProject locates target folders under one project and populates their
// raw sizes. Adjustment happens afterwards over the full match set. The only
// error returned is context cancellation.
func scanProject(ctx context.Context, project Project, targets TargetSet, c *collector, log logger) ([]Match, error) {
	located := Locate(project.Path, targets)

	matches := make([]Match, 0, len(located))

	for _, loc := range located {
		log.printf("[debug]:   found %q at %s\n", loc.TargetName, loc.RelPath)

		size, err := folderSize(ctx, filepath.Join(project.Path, filepath.FromSlash(loc.RelPath)), c)
		if err != nil {
			return nil, err
		}

		matches = append(matches, Match{
			Project:       project.Name,
			TargetName:    loc.TargetName,
			RelPath:       loc.RelPath,
			Depth:         loc.Depth,
			SizeBytes:     size,
			AdjustedBytes: size,
		})
	}

	return matches, nil
}
