package localization_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/localization"
)

func strPtr(s string) *string { return &s }

func TestMonsterLabelFields(t *testing.T) {
	m := &dnd5e.Monster{Size: "large", Type: "dragon"}

	fields := localization.MonsterLabelFields(m)

	assert.Equal(t, []localization.LabeledField{
		{Field: "size", EnumType: dnd5e.EnumTypeCreatureSize, Code: "large"},
		{Field: "type", EnumType: dnd5e.EnumTypeCreatureType, Code: "dragon"},
	}, fields)
	assert.Nil(t, localization.MonsterLabelFields(nil))
}

func TestSpellLabelFields(t *testing.T) {
	s := &dnd5e.Spell{
		School:      "evocation",
		DamageType:  strPtr("fire"),
		CastingTime: strPtr(dnd5e.CastingTimeAction),
		Targeting:   strPtr(""),
	}

	fields := localization.SpellLabelFields(s)

	require.Len(t, fields, 3)
	assert.Equal(t, "school", fields[0].Field)
	assert.Equal(t, "damage_type", fields[1].Field)
	assert.Equal(t, dnd5e.EnumTypeCastingTime, fields[2].EnumType)
}

func TestCodesByType(t *testing.T) {
	codes := localization.CodesByType(
		localization.MonsterLabelFields(&dnd5e.Monster{Size: "large", Type: "dragon"}),
		localization.MonsterLabelFields(&dnd5e.Monster{Size: "tiny"}),
	)

	assert.Equal(t, map[string][]string{
		dnd5e.EnumTypeCreatureSize: {"large", "tiny"},
		dnd5e.EnumTypeCreatureType: {"dragon"},
	}, codes)
}

func TestApplyLabels(t *testing.T) {
	fields := []localization.LabeledField{
		{Field: "school", EnumType: dnd5e.EnumTypeSpellSchool, Code: "evocation"},
		{Field: "damage_type", EnumType: dnd5e.EnumTypeDamageType, Code: "psychic"},
	}
	labels := map[localization.LabelKey]string{
		{EnumType: dnd5e.EnumTypeSpellSchool, Code: "evocation"}: "Evocation",
	}

	got := localization.ApplyLabels(fields, labels)

	assert.Equal(t, map[string]localization.LabeledCode{
		"school":      {Code: "evocation", Label: "Evocation"},
		"damage_type": {Code: "psychic", Label: "psychic"},
	}, got)
}
