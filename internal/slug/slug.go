// Package slug derives storage keys from human readable names.
package slug

import (
	"strings"
	"unicode"
)

// Make lower-cases s and replaces every maximal run of white space
// with a single hyphen. Leading and trailing runs become hyphens too.
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inSpace := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}

	return b.String()
}
