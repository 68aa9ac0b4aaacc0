package derive_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/vladmesh/dnd-helper-sub000/internal/derive"
	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
)

type SpellDeriveTestSuite struct {
	suite.Suite
}

func TestSpellDeriveSuite(t *testing.T) {
	suite.Run(t, new(SpellDeriveTestSuite))
}

func (s *SpellDeriveTestSuite) TestConcentration() {
	testCases := []struct {
		name     string
		duration string
		prior    *bool
		expected *bool
	}{
		{name: "concentration text", duration: "Concentration, up to 1 minute", expected: boolPtr(true)},
		{name: "case insensitive", duration: "CONCENTRATION, up to 10 minutes", expected: boolPtr(true)},
		{name: "plain duration", duration: "Instantaneous", expected: boolPtr(false)},
		{name: "duration overwrites prior", duration: "1 hour", prior: boolPtr(true), expected: boolPtr(false)},
		{name: "missing duration keeps prior", duration: "", prior: boolPtr(true), expected: boolPtr(true)},
		{name: "missing duration stays unset", duration: "   ", expected: nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sp := &dnd5e.Spell{Duration: tc.duration, IsConcentration: tc.prior}

			derive.Spell(sp).Apply(sp)

			s.Equal(tc.expected, sp.IsConcentration)
		})
	}
}

func (s *SpellDeriveTestSuite) TestDamageAndSave() {
	sp := &dnd5e.Spell{
		Name:        "Fireball",
		Damage:      map[string]any{"type": "fire", "dice": "8d6"},
		SavingThrow: map[string]any{"ability": "dex"},
		DamageType:  stringPtr("cold"),
	}

	derive.Spell(sp).Apply(sp)

	s.Equal(stringPtr("fire"), sp.DamageType)
	s.Equal(stringPtr("dex"), sp.SaveAbility)
	s.Nil(sp.AttackRoll, "a save spell is not an attack")
	s.Equal("fireball", sp.Slug)
}

func (s *SpellDeriveTestSuite) TestMalformedDescriptors() {
	sp := &dnd5e.Spell{
		Damage:      map[string]any{"type": 7},
		SavingThrow: map[string]any{"ability": []string{"dex"}},
		DamageType:  stringPtr("acid"),
		SaveAbility: stringPtr("con"),
	}

	f := derive.Spell(sp)

	s.Nil(f.DamageType)
	s.Nil(f.SaveAbility)
	f.Apply(sp)
	s.Equal(stringPtr("acid"), sp.DamageType)
	s.Equal(stringPtr("con"), sp.SaveAbility)
}

func (s *SpellDeriveTestSuite) TestAttackRoll() {
	testCases := []struct {
		name        string
		damage      map[string]any
		savingThrow map[string]any
		prior       *bool
		expected    *bool
	}{
		{
			name:        "damage without save sets attack roll",
			damage:      map[string]any{"type": "fire"},
			savingThrow: map[string]any{},
			expected:    boolPtr(true),
		},
		{
			name:        "explicit false is preserved",
			damage:      map[string]any{"type": "fire"},
			savingThrow: map[string]any{},
			prior:       boolPtr(false),
			expected:    boolPtr(false),
		},
		{
			name:        "save ability blocks attack roll",
			damage:      map[string]any{"type": "fire"},
			savingThrow: map[string]any{"ability": "dex"},
			expected:    nil,
		},
		{
			name:        "non-string save ability still blocks attack roll",
			damage:      map[string]any{"type": "fire"},
			savingThrow: map[string]any{"ability": 5},
			expected:    nil,
		},
		{
			name:     "no damage leaves unset",
			expected: nil,
		},
		{
			name:        "save without ability key still allows attack",
			damage:      map[string]any{"dice": "1d10"},
			savingThrow: map[string]any{"success": "half"},
			expected:    boolPtr(true),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sp := &dnd5e.Spell{Damage: tc.damage, SavingThrow: tc.savingThrow, AttackRoll: tc.prior}

			derive.Spell(sp).Apply(sp)

			s.Equal(tc.expected, sp.AttackRoll)
		})
	}
}

func (s *SpellDeriveTestSuite) TestTargeting() {
	testCases := []struct {
		name     string
		area     map[string]any
		prior    *string
		expected *string
	}{
		{name: "area sets point", area: map[string]any{"type": "sphere", "size": 20}, expected: stringPtr(dnd5e.TargetingPoint)},
		{name: "empty area ignored", area: map[string]any{}, expected: nil},
		{name: "explicit targeting kept", area: map[string]any{"type": "cone"}, prior: stringPtr("SELF"), expected: stringPtr("SELF")},
		{name: "empty targeting counts as unset", area: map[string]any{"type": "cube"}, prior: stringPtr(""), expected: stringPtr(dnd5e.TargetingPoint)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sp := &dnd5e.Spell{Area: tc.area, Targeting: tc.prior}

			derive.Spell(sp).Apply(sp)

			s.Equal(tc.expected, sp.Targeting)
		})
	}
}

func (s *SpellDeriveTestSuite) TestCastingTime() {
	sp := &dnd5e.Spell{CastingTimeText: "1 bonus action", CastingTime: stringPtr("action")}

	derive.Spell(sp).Apply(sp)

	s.Equal(stringPtr(dnd5e.CastingTimeBonusAction), sp.CastingTime)
	s.Equal("1 bonus action", sp.CastingTimeText, "raw text is kept")

	untouched := &dnd5e.Spell{CastingTime: stringPtr("1m")}
	derive.Spell(untouched).Apply(untouched)
	s.Equal(stringPtr("1m"), untouched.CastingTime)
}

func (s *SpellDeriveTestSuite) TestIdempotent() {
	sp := &dnd5e.Spell{
		Name:            "Hunter's Mark",
		Duration:        "Concentration, up to 1 hour",
		CastingTimeText: "1 bonus action",
		Damage:          map[string]any{"type": "force"},
		Area:            map[string]any{"type": "line"},
	}

	derive.Spell(sp).Apply(sp)
	first := *sp

	derive.Spell(sp).Apply(sp)

	s.Equal(first, *sp)
	s.Equal("hunter-s-mark", sp.Slug)
}

func (s *SpellDeriveTestSuite) TestNilSpell() {
	s.Equal(derive.SpellFields{}, derive.Spell(nil))
	s.NotPanics(func() { derive.SpellFields{}.Apply(nil) })
}
