package projsize

import "strings"

// Adjust computes adjusted sizes for one project's matches. Every match
// starts at its raw size; for each pair where one match's path is a strict
// descendant of another's, the descendant's RAW size is subtracted from the
// ancestor's adjusted size. Raw sizes are used so that an ancestor loses
// exactly the sum of all distinct nested targets regardless of how deeply
// they nest under each other.
//
// An adjusted size that goes negative (filesystem changed mid-scan) is
// clamped to zero and the match flagged. Returns the number of clamped
// matches.
func Adjust(matches []Match) int {
	for i := range matches {
		matches[i].AdjustedBytes = matches[i].SizeBytes
		matches[i].Clamped = false
	}

	clamped := 0

	for i := range matches {
		for j := range matches {
			if i == j {
				continue
			}

			if isStrictDescendant(matches[j].RelPath, matches[i].RelPath) {
				matches[i].AdjustedBytes -= matches[j].SizeBytes
			}
		}

		if matches[i].AdjustedBytes < 0 {
			matches[i].AdjustedBytes = 0
			matches[i].Clamped = true
			clamped++
		}
	}

	return clamped
}

// isStrictDescendant reports whether child lies strictly below parent.
// Both paths are slash-separated and relative to the same project root;
// paths are unique within a project, so equality never counts.
func isStrictDescendant(child, parent string) bool {
	return child != parent && strings.HasPrefix(child, parent+"/")
}
