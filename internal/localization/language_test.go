package localization_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/localization"
)

func TestNormalizeLang(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want dnd5e.Lang
	}{
		{name: "primary", raw: "ru", want: dnd5e.LangRU},
		{name: "secondary", raw: "en", want: dnd5e.LangEN},
		{name: "upper case", raw: "EN", want: dnd5e.LangEN},
		{name: "padded", raw: "  en ", want: dnd5e.LangEN},
		{name: "regional tag", raw: "en-GB", want: dnd5e.LangEN},
		{name: "regional primary", raw: "ru_RU", want: dnd5e.LangRU},
		{name: "unsupported", raw: "de", want: dnd5e.PrimaryLang},
		{name: "garbage", raw: "not a language", want: dnd5e.PrimaryLang},
		{name: "empty", raw: "", want: dnd5e.PrimaryLang},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, localization.NormalizeLang(tt.raw))
		})
	}
}

func TestSupportedLangs(t *testing.T) {
	langs := localization.SupportedLangs()

	assert.Equal(t, []dnd5e.Lang{dnd5e.PrimaryLang, dnd5e.SecondaryLang}, langs)
	for _, lang := range langs {
		assert.True(t, lang.IsSupported())
		assert.NotEqual(t, lang, lang.Fallback())
		assert.Equal(t, lang, lang.Fallback().Fallback())
	}
}
