// Package derive computes the indexed filter fields of catalog entities from
// their raw nested attributes.
//
// Every function here is pure: it reads an entity and returns a patch. Callers
// merge the patch with Apply right before persisting. A nil field in a patch
// means there was no source data for it and the entity keeps its current value.
package derive

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases name, replaces every run of characters outside [a-z0-9]
// with a single hyphen and trims hyphens from both ends.
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// slugFor returns a slug only when the entity has none yet
func slugFor(current, name string) *string {
	if strings.TrimSpace(current) != "" || strings.TrimSpace(name) == "" {
		return nil
	}
	slug := Slugify(name)
	if slug == "" {
		return nil
	}
	return &slug
}
