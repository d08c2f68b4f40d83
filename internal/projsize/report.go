package projsize

import (
	"cmp"
	"slices"
	"time"
)

// DefaultTargets contains the built-in target folder names.
//
//nolint:gochecknoglobals // Config constant
var DefaultTargets = []string{"Email", "Incoming", "Data In", "Data Out", "Outgoing"}

// Sort orderings accepted by Options.SortBy.
const (
	// SortByName orders matches by project name, then target name, then path.
	SortByName = "name"
	// SortBySize orders matches by adjusted size descending, names breaking ties.
	SortBySize = "size"
)

// Project is a directory found immediately under the scan root.
type Project struct {
	// Name is the directory name of the project.
	Name string `json:"name"`
	// Path is the absolute or root-relative path to the project directory.
	Path string `json:"path"`
}

// Match is a located target folder within a project.
type Match struct {
	// Project is the name of the owning project.
	Project string `json:"project"`
	// TargetName is the configured target name the folder matched.
	TargetName string `json:"target_name"`
	// RelPath is the folder's path relative to the project root, slash-separated.
	RelPath string `json:"relative_path"`
	// Depth is the folder's depth below the project root (direct child = 1).
	Depth int `json:"depth"`
	// SizeBytes is the raw accumulated size of all files under the folder.
	SizeBytes int64 `json:"size_bytes"`
	// AdjustedBytes is the size after subtracting nested target folders.
	AdjustedBytes int64 `json:"adjusted_size_bytes"`
	// Clamped indicates the adjusted size went negative and was clamped to zero.
	Clamped bool `json:"clamped,omitempty"`
}

// Report holds the aggregated results of a scan.
type Report struct {
	// Root is the cleaned root path that was scanned.
	Root string `json:"root"`
	// Targets are the configured target names, duplicates removed.
	Targets []string `json:"targets"`
	// ProjectCount is the number of project directories scanned.
	ProjectCount int `json:"project_count"`
	// EmptyProjects lists projects in which no target folder was found.
	EmptyProjects []string `json:"empty_projects,omitempty"`
	// Matches are all located target folders across all projects.
	Matches []Match `json:"matches"`
	// TotalBytes is the sum of all adjusted sizes.
	TotalBytes int64 `json:"total_bytes"`
	// ErrorCount is the number of entries skipped due to filesystem errors.
	ErrorCount int64 `json:"error_count"`
	// ClampedCount is the number of matches whose adjusted size was clamped.
	ClampedCount int `json:"clamped_count,omitempty"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a scan and CLI behavior.
type Options struct {
	// Root is the directory whose immediate subdirectories are the projects.
	Root string
	// Targets are the target folder names to match.
	Targets []string
	// CSVPath is the optional path for a CSV export ("" = no export).
	CSVPath string
	// Output represents output format (table or json).
	Output string
	// SortBy selects the row ordering (SortByName or SortBySize).
	SortBy string
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
}

// TargetSet is an ordered set of target names with normalized membership.
// Names whose normalized forms collide keep only the first occurrence.
type TargetSet struct {
	names  []string
	lookup map[string]string
}

// NewTargetSet builds a TargetSet from raw names, dropping names that
// normalize to the empty string and normalized duplicates.
func NewTargetSet(names []string) TargetSet {
	set := TargetSet{lookup: make(map[string]string, len(names))}

	for _, name := range names {
		key := Normalize(name)
		if key == "" {
			continue
		}

		if _, ok := set.lookup[key]; ok {
			continue
		}

		set.names = append(set.names, name)
		set.lookup[key] = name
	}

	return set
}

// Match returns the configured target name that folder matches, if any.
func (t TargetSet) Match(folder string) (string, bool) {
	name, ok := t.lookup[Normalize(folder)]

	return name, ok
}

// Names returns the configured names in their original order.
func (t TargetSet) Names() []string {
	return slices.Clone(t.names)
}

// Len returns the number of distinct targets in the set.
func (t TargetSet) Len() int {
	return len(t.names)
}

// SortMatches orders matches deterministically according to sortBy.
// SortByName orders by project, target name, then path; SortBySize orders by
// adjusted size descending with the name ordering breaking ties.
func SortMatches(matches []Match, sortBy string) {
	byName := func(a, b Match) int {
		return cmp.Or(
			cmp.Compare(a.Project, b.Project),
			cmp.Compare(a.TargetName, b.TargetName),
			cmp.Compare(a.RelPath, b.RelPath),
		)
	}

	switch sortBy {
	case SortBySize:
		slices.SortStableFunc(matches, func(a, b Match) int {
			return cmp.Or(cmp.Compare(b.AdjustedBytes, a.AdjustedBytes), byName(a, b))
		})
	default:
		slices.SortStableFunc(matches, byName)
	}
}
