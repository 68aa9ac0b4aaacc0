package dnd5e

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

var _ core.Entity = (*Monster)(nil)

// Monster is a creature entry in the catalog.
//
// Senses and Speeds are kept as loosely structured maps because upstream data
// is inconsistent. The derived fields below them exist only to make filtering
// cheap; a nil derived field means the source data was absent.
type Monster struct {
	ID              string `json:"id" yaml:"id"`
	Name            string `json:"name" yaml:"name"`
	Slug            string `json:"slug,omitempty" yaml:"slug,omitempty"`
	Size            string `json:"size,omitempty" yaml:"size,omitempty"`
	Type            string `json:"type,omitempty" yaml:"type,omitempty"`
	Alignment       string `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	ArmorClass      int    `json:"armor_class,omitempty" yaml:"armor_class,omitempty"`
	HitPoints       int    `json:"hit_points,omitempty" yaml:"hit_points,omitempty"`
	HitDice         string `json:"hit_dice,omitempty" yaml:"hit_dice,omitempty"`
	ChallengeRating string `json:"challenge_rating,omitempty" yaml:"challenge_rating,omitempty"`

	Senses   map[string]any `json:"senses,omitempty" yaml:"senses,omitempty"`
	Speeds   map[string]any `json:"speeds,omitempty" yaml:"speeds,omitempty"`
	SpeedFly *int           `json:"speed_fly,omitempty" yaml:"speed_fly,omitempty"`

	// Derived
	IsFlying         *bool `json:"is_flying,omitempty" yaml:"is_flying,omitempty"`
	HasDarkvision    *bool `json:"has_darkvision,omitempty" yaml:"has_darkvision,omitempty"`
	DarkvisionRange  *int  `json:"darkvision_range,omitempty" yaml:"darkvision_range,omitempty"`
	HasBlindsight    *bool `json:"has_blindsight,omitempty" yaml:"has_blindsight,omitempty"`
	BlindsightRange  *int  `json:"blindsight_range,omitempty" yaml:"blindsight_range,omitempty"`
	HasTruesight     *bool `json:"has_truesight,omitempty" yaml:"has_truesight,omitempty"`
	TruesightRange   *int  `json:"truesight_range,omitempty" yaml:"truesight_range,omitempty"`
	TremorsenseRange *int  `json:"tremorsense_range,omitempty" yaml:"tremorsense_range,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"-"`
}

// GetID returns the monster's ID
func (m *Monster) GetID() string {
	return m.ID
}

// GetType returns the entity type used for translation lookups
func (m *Monster) GetType() string {
	return EntityTypeMonster
}
