package dnd5e

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

var _ core.Entity = (*Spell)(nil)

// Spell is a spell entry in the catalog.
//
// Damage, SavingThrow and Area are free-form descriptors. CastingTimeText holds
// the text as written in the source; CastingTime holds its canonical code.
type Spell struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Slug            string   `json:"slug,omitempty" yaml:"slug,omitempty"`
	Level           int      `json:"level" yaml:"level"`
	School          string   `json:"school,omitempty" yaml:"school,omitempty"`
	Range           string   `json:"range,omitempty" yaml:"range,omitempty"`
	Components      []string `json:"components,omitempty" yaml:"components,omitempty"`
	Ritual          bool     `json:"ritual,omitempty" yaml:"ritual,omitempty"`
	Classes         []string `json:"classes,omitempty" yaml:"classes,omitempty"`
	Duration        string   `json:"duration,omitempty" yaml:"duration,omitempty"`
	CastingTimeText string   `json:"casting_time_text,omitempty" yaml:"casting_time_text,omitempty"`

	Damage      map[string]any `json:"damage,omitempty" yaml:"damage,omitempty"`
	SavingThrow map[string]any `json:"saving_throw,omitempty" yaml:"saving_throw,omitempty"`
	Area        map[string]any `json:"area,omitempty" yaml:"area,omitempty"`

	// Derived. AttackRoll and Targeting may also be set explicitly by the
	// author and are never replaced once set.
	IsConcentration *bool   `json:"is_concentration,omitempty" yaml:"is_concentration,omitempty"`
	DamageType      *string `json:"damage_type,omitempty" yaml:"damage_type,omitempty"`
	SaveAbility     *string `json:"save_ability,omitempty" yaml:"save_ability,omitempty"`
	AttackRoll      *bool   `json:"attack_roll,omitempty" yaml:"attack_roll,omitempty"`
	Targeting       *string `json:"targeting,omitempty" yaml:"targeting,omitempty"`
	CastingTime     *string `json:"casting_time,omitempty" yaml:"casting_time,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"-"`
}

// GetID returns the spell's ID
func (s *Spell) GetID() string {
	return s.ID
}

// GetType returns the entity type used for translation lookups
func (s *Spell) GetType() string {
	return EntityTypeSpell
}
