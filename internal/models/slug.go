package models

import "strings"

// ValidSlug reports whether slug names a single entry inside a content
// directory: not empty, not "." or "..", and without path separators.
func ValidSlug(slug string) bool {
	switch slug {
	case "", ".", "..":
		return false
	}
	return !strings.ContainsAny(slug, `/\`)
}
