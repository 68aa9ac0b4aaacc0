package dnd5e

import "time"

// Lang is a supported content language code
type Lang string

// Supported languages. Primary is the default for unknown input and the
// fallback for Secondary; Secondary is the fallback for Primary.
const (
	LangRU Lang = "ru"
	LangEN Lang = "en"

	PrimaryLang   = LangRU
	SecondaryLang = LangEN
)

// String returns the language code
func (l Lang) String() string {
	return string(l)
}

// IsSupported reports whether l is one of the two catalog languages
func (l Lang) IsSupported() bool {
	return l == PrimaryLang || l == SecondaryLang
}

// Fallback returns the other supported language
func (l Lang) Fallback() Lang {
	if l == SecondaryLang {
		return PrimaryLang
	}
	return SecondaryLang
}

// TextBlock is a named paragraph such as a trait or an action
type TextBlock struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Translation holds localized text for one entity in one language.
// The block fields are only populated for monsters.
type Translation struct {
	EntityType  string `json:"entity_type" yaml:"entity_type"`
	EntityID    string `json:"entity_id" yaml:"entity_id"`
	Lang        Lang   `json:"lang" yaml:"lang"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Traits           []TextBlock `json:"traits,omitempty" yaml:"traits,omitempty"`
	Actions          []TextBlock `json:"actions,omitempty" yaml:"actions,omitempty"`
	Reactions        []TextBlock `json:"reactions,omitempty" yaml:"reactions,omitempty"`
	LegendaryActions []TextBlock `json:"legendary_actions,omitempty" yaml:"legendary_actions,omitempty"`
	Spellcasting     []TextBlock `json:"spellcasting,omitempty" yaml:"spellcasting,omitempty"`

	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"-"`
}

// EnumLabel is the display label of one enum code in one language
type EnumLabel struct {
	EnumType    string   `json:"enum_type" yaml:"enum_type"`
	Code        string   `json:"code" yaml:"code"`
	Lang        Lang     `json:"lang" yaml:"lang"`
	Label       string   `json:"label" yaml:"label"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Synonyms    []string `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
}
