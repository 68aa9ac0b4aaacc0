package derive

import (
	"strings"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
)

const concentrationMarker = "concentration"

// SpellFields is the patch produced by Spell
type SpellFields struct {
	Slug            *string
	IsConcentration *bool
	DamageType      *string
	SaveAbility     *string
	AttackRoll      *bool
	Targeting       *string
	CastingTime     *string
}

// Spell computes the filter fields of s. Each rule is independent:
//   - duration, damage type, save ability and casting time overwrite the
//     current value whenever their source is present
//   - attack roll and targeting are only filled while still unset
func Spell(s *dnd5e.Spell) SpellFields {
	var f SpellFields
	if s == nil {
		return f
	}

	f.Slug = slugFor(s.Slug, s.Name)

	if duration := strings.TrimSpace(s.Duration); duration != "" {
		concentration := strings.Contains(strings.ToLower(duration), concentrationMarker)
		f.IsConcentration = &concentration
	}

	if damageType, ok := stringAttr(s.Damage, "type"); ok {
		f.DamageType = &damageType
	}

	if ability, ok := stringAttr(s.SavingThrow, "ability"); ok {
		f.SaveAbility = &ability
	}

	// any ability key means a save, even one whose value is not a usable string
	_, hasAbility := s.SavingThrow["ability"]
	if s.AttackRoll == nil && len(s.Damage) > 0 && !hasAbility {
		attack := true
		f.AttackRoll = &attack
	}

	if (s.Targeting == nil || *s.Targeting == "") && len(s.Area) > 0 {
		targeting := dnd5e.TargetingPoint
		f.Targeting = &targeting
	}

	if text := strings.TrimSpace(s.CastingTimeText); text != "" {
		code := NormalizeCastingTime(text)
		f.CastingTime = &code
	}

	return f
}

// Apply merges the patch into s, leaving fields without a value untouched
func (f SpellFields) Apply(s *dnd5e.Spell) {
	if s == nil {
		return
	}
	if f.Slug != nil {
		s.Slug = *f.Slug
	}
	setBool(&s.IsConcentration, f.IsConcentration)
	setString(&s.DamageType, f.DamageType)
	setString(&s.SaveAbility, f.SaveAbility)
	setBool(&s.AttackRoll, f.AttackRoll)
	setString(&s.Targeting, f.Targeting)
	setString(&s.CastingTime, f.CastingTime)
}
