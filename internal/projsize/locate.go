package projsize

import (
	"os"
	"path"
	"path/filepath"
)

// Located pairs a matched directory with the target name it matched.
type Located struct {
	// RelPath is the directory's path relative to the project root,
	// slash-separated.
	RelPath string
	// TargetName is the configured target name that matched.
	TargetName string
	// Depth is the directory's depth below the project root (direct child = 1).
	Depth int
}

// Locate walks projectRoot depth-first in directory-listing order and returns
// every directory whose normalized name matches a target. The project root
// itself is never considered. Descent continues inside a matched directory to
// find other target names nested within it, but the matched name is excluded
// for that subtree: a target folder is not expected to contain a same-named
// target, and suppressing it keeps the match set free of self-nesting.
//
// Results are deterministic: os.ReadDir returns entries sorted by name.
// Unreadable directories are skipped. Returns an empty slice when nothing
// matches.
func Locate(projectRoot string, targets TargetSet) []Located {
	var found []Located

	locateDir(projectRoot, "", 1, targets, nil, &found)

	return found
}

func locateDir(dir, rel string, depth int, targets TargetSet, excluded map[string]struct{}, found *[]Located) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		// Symlinked directories report IsDir() == false here, so links are
		// neither matched nor descended into.
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		childRel := path.Join(rel, name)
		childExcluded := excluded

		key := Normalize(name)
		if _, skip := excluded[key]; !skip {
			if target, ok := targets.Match(name); ok {
				*found = append(*found, Located{
					RelPath:    childRel,
					TargetName: target,
					Depth:      depth,
				})

				childExcluded = make(map[string]struct{}, len(excluded)+1)
				for k := range excluded {
					childExcluded[k] = struct{}{}
				}
				childExcluded[key] = struct{}{}
			}
		}

		locateDir(filepath.Join(dir, name), childRel, depth+1, targets, childExcluded, found)
	}
}
