// Package localization resolves translated entity text and enum labels in the
// two catalog languages, falling back to the other language when a row is
// missing.
package localization

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
)

// NormalizeLang picks the content language for a caller supplied value.
// The value is trimmed and lowercased; a supported code is used as is, a
// regional tag such as "en-GB" resolves to its base language, and anything
// else falls back to the primary language.
func NormalizeLang(raw string) dnd5e.Lang {
	value := strings.ToLower(strings.TrimSpace(raw))
	if lang := dnd5e.Lang(value); lang.IsSupported() {
		return lang
	}

	if value != "" {
		if tag, err := language.Parse(value); err == nil {
			base, _ := tag.Base()
			if lang := dnd5e.Lang(base.String()); lang.IsSupported() {
				return lang
			}
		}
	}

	return dnd5e.PrimaryLang
}

// SupportedLangs returns the catalog languages, primary first
func SupportedLangs() []dnd5e.Lang {
	return []dnd5e.Lang{dnd5e.PrimaryLang, dnd5e.SecondaryLang}
}

func supportedOrPrimary(lang dnd5e.Lang) dnd5e.Lang {
	if lang.IsSupported() {
		return lang
	}
	return dnd5e.PrimaryLang
}
