package testutils

import (
	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
)

// CreateTestMonster returns an adult red dragon with raw fields only.
// Derived fields are left nil so tests can exercise the derivers.
func CreateTestMonster(id string) *dnd5e.Monster {
	fly := 80
	return &dnd5e.Monster{
		ID:              id,
		Name:            "Adult Red Dragon",
		Size:            "huge",
		Type:            "dragon",
		Alignment:       "chaotic_evil",
		ArmorClass:      19,
		HitPoints:       256,
		HitDice:         "19d12+133",
		ChallengeRating: "17",
		Senses: map[string]any{
			dnd5e.SenseBlindsight: 60,
			dnd5e.SenseDarkvision: "120",
		},
		Speeds:   map[string]any{"walk": 40, "climb": 40, "fly": 80},
		SpeedFly: &fly,
	}
}

// CreateTestSpell returns Fireball with raw fields only
func CreateTestSpell(id string) *dnd5e.Spell {
	return &dnd5e.Spell{
		ID:              id,
		Name:            "Fireball",
		Level:           3,
		School:          "evocation",
		Range:           "150 feet",
		Components:      []string{"V", "S", "M"},
		Classes:         []string{"sorcerer", "wizard"},
		Duration:        "",
		CastingTimeText: "1 action",
		Damage:          map[string]any{"type": "fire", "dice": "8d6"},
		SavingThrow:     map[string]any{"ability": "dex", "success": "half"},
		Area:            map[string]any{"shape": "sphere", "size": 20},
	}
}

// CreateTestTranslation returns a translation row for an entity
func CreateTestTranslation(entityType, entityID string, lang dnd5e.Lang, name string) *dnd5e.Translation {
	return &dnd5e.Translation{
		EntityType:  entityType,
		EntityID:    entityID,
		Lang:        lang,
		Name:        name,
		Description: name + " description",
	}
}

// CreateTestEnumLabel returns a label row
func CreateTestEnumLabel(enumType, code string, lang dnd5e.Lang, label string) *dnd5e.EnumLabel {
	return &dnd5e.EnumLabel{
		EnumType: enumType,
		Code:     code,
		Lang:     lang,
		Label:    label,
	}
}
