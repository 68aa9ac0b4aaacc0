package catalog

import (
	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/localization"
)

// MonsterEnvelope is a monster with its localized text and enum labels
type MonsterEnvelope struct {
	Monster     *dnd5e.Monster                      `json:"entity"`
	Translation *dnd5e.Translation                  `json:"translation"`
	Labels      map[string]localization.LabeledCode `json:"labels"`
}

// SpellEnvelope is a spell with its localized text and enum labels
type SpellEnvelope struct {
	Spell       *dnd5e.Spell                        `json:"entity"`
	Translation *dnd5e.Translation                  `json:"translation"`
	Labels      map[string]localization.LabeledCode `json:"labels"`
}

// Page bounds a list. A zero Limit returns everything after Offset.
type Page struct {
	Limit  int
	Offset int
}

// MonsterFilter narrows ListMonsters on derived fields. Nil fields match all.
type MonsterFilter struct {
	IsFlying      *bool
	HasDarkvision *bool
	HasBlindsight *bool
	HasTruesight  *bool
}

// SpellFilter narrows ListSpells on derived fields. Nil or empty fields match all.
type SpellFilter struct {
	Level           *int
	School          string
	IsConcentration *bool
	DamageType      string
	SaveAbility     string
	CastingTime     string
	AttackRoll      *bool
}

// CreateMonsterInput defines the request for creating a monster
type CreateMonsterInput struct {
	Monster *dnd5e.Monster
}

// CreateMonsterOutput defines the response for creating a monster
type CreateMonsterOutput struct {
	Monster *dnd5e.Monster
}

// UpdateMonsterInput defines the request for replacing a monster
type UpdateMonsterInput struct {
	Monster *dnd5e.Monster
}

// UpdateMonsterOutput defines the response for replacing a monster
type UpdateMonsterOutput struct {
	Monster *dnd5e.Monster
}

// GetMonsterInput defines the request for reading a monster by ID
type GetMonsterInput struct {
	ID   string
	Lang string
}

// GetMonsterBySlugInput defines the request for reading a monster by slug
type GetMonsterBySlugInput struct {
	Slug string
	Lang string
}

// GetMonsterOutput defines the response for reading a monster
type GetMonsterOutput struct {
	Envelope *MonsterEnvelope
}

// ListMonstersInput defines the request for listing monsters
type ListMonstersInput struct {
	Lang   string
	Filter MonsterFilter
	Page   Page
}

// ListMonstersOutput defines the response for listing monsters.
// Total counts every match before paging.
type ListMonstersOutput struct {
	Envelopes []*MonsterEnvelope
	Total     int
}

// DeleteMonsterInput defines the request for deleting a monster
type DeleteMonsterInput struct {
	ID string
}

// DeleteMonsterOutput defines the response for deleting a monster
type DeleteMonsterOutput struct{}

// RollMonsterHitPointsInput defines the request for rolling a monster's hit points
type RollMonsterHitPointsInput struct {
	ID string
}

// RollMonsterHitPointsOutput defines the result of a hit point roll
type RollMonsterHitPointsOutput struct {
	Expression string
	Rolls      []int
	Modifier   int
	Total      int
}

// CreateSpellInput defines the request for creating a spell
type CreateSpellInput struct {
	Spell *dnd5e.Spell
}

// CreateSpellOutput defines the response for creating a spell
type CreateSpellOutput struct {
	Spell *dnd5e.Spell
}

// UpdateSpellInput defines the request for replacing a spell
type UpdateSpellInput struct {
	Spell *dnd5e.Spell
}

// UpdateSpellOutput defines the response for replacing a spell
type UpdateSpellOutput struct {
	Spell *dnd5e.Spell
}

// GetSpellInput defines the request for reading a spell by ID
type GetSpellInput struct {
	ID   string
	Lang string
}

// GetSpellBySlugInput defines the request for reading a spell by slug
type GetSpellBySlugInput struct {
	Slug string
	Lang string
}

// GetSpellOutput defines the response for reading a spell
type GetSpellOutput struct {
	Envelope *SpellEnvelope
}

// ListSpellsInput defines the request for listing spells
type ListSpellsInput struct {
	Lang   string
	Filter SpellFilter
	Page   Page
}

// ListSpellsOutput defines the response for listing spells
type ListSpellsOutput struct {
	Envelopes []*SpellEnvelope
	Total     int
}

// DeleteSpellInput defines the request for deleting a spell
type DeleteSpellInput struct {
	ID string
}

// DeleteSpellOutput defines the response for deleting a spell
type DeleteSpellOutput struct{}

// UpsertTranslationInput defines the request for storing a translation
type UpsertTranslationInput struct {
	Translation *dnd5e.Translation
}

// UpsertTranslationOutput defines the response for storing a translation
type UpsertTranslationOutput struct {
	Translation *dnd5e.Translation
}

// UpsertEnumLabelInput defines the request for storing an enum label
type UpsertEnumLabelInput struct {
	Label *dnd5e.EnumLabel
}

// UpsertEnumLabelOutput defines the response for storing an enum label
type UpsertEnumLabelOutput struct {
	Label *dnd5e.EnumLabel
}

// ListEnumLabelsInput defines the request for listing the labels of one enum type
type ListEnumLabelsInput struct {
	EnumType string
	Lang     string
}

// ListEnumLabelsOutput defines the response for listing enum labels
type ListEnumLabelsOutput struct {
	Labels []*dnd5e.EnumLabel
}
