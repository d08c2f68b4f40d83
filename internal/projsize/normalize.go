package projsize

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes a folder name for matching: the name is lowercased
// and every rune that is not a letter or digit is removed. Two folder names
// refer to the same target iff their normalized forms are equal.
func Normalize(name string) string {
	var b strings.Builder

	b.Grow(len(name))

	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
