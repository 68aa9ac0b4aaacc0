package derive

import (
	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
)

// MonsterFields is the patch produced by Monster
type MonsterFields struct {
	Slug             *string
	IsFlying         *bool
	HasDarkvision    *bool
	DarkvisionRange  *int
	HasBlindsight    *bool
	BlindsightRange  *int
	HasTruesight     *bool
	TruesightRange   *int
	TremorsenseRange *int
}

// Monster computes the sense and flight fields of m.
// Only senses and speed_fly are read; every other attribute is ignored.
func Monster(m *dnd5e.Monster) MonsterFields {
	var f MonsterFields
	if m == nil {
		return f
	}

	f.Slug = slugFor(m.Slug, m.Name)

	if m.SpeedFly != nil {
		flying := *m.SpeedFly > 0
		f.IsFlying = &flying
	}

	f.HasDarkvision, f.DarkvisionRange = senseFields(m.Senses, dnd5e.SenseDarkvision)
	f.HasBlindsight, f.BlindsightRange = senseFields(m.Senses, dnd5e.SenseBlindsight)
	f.HasTruesight, f.TruesightRange = senseFields(m.Senses, dnd5e.SenseTruesight)
	_, f.TremorsenseRange = senseFields(m.Senses, dnd5e.SenseTremorsense)

	return f
}

// Apply merges the patch into m, leaving fields without a value untouched
func (f MonsterFields) Apply(m *dnd5e.Monster) {
	if m == nil {
		return
	}
	if f.Slug != nil {
		m.Slug = *f.Slug
	}
	setBool(&m.IsFlying, f.IsFlying)
	setBool(&m.HasDarkvision, f.HasDarkvision)
	setInt(&m.DarkvisionRange, f.DarkvisionRange)
	setBool(&m.HasBlindsight, f.HasBlindsight)
	setInt(&m.BlindsightRange, f.BlindsightRange)
	setBool(&m.HasTruesight, f.HasTruesight)
	setInt(&m.TruesightRange, f.TruesightRange)
	setInt(&m.TremorsenseRange, f.TremorsenseRange)
}

// senseFields returns the has/range pair for a sense key.
// Both are nil when the key is missing or its value is not a number.
func senseFields(senses map[string]any, key string) (*bool, *int) {
	raw, ok := senses[key]
	if !ok || raw == nil {
		return nil, nil
	}
	rng, ok := toInt(raw)
	if !ok {
		return nil, nil
	}
	has := rng > 0
	return &has, &rng
}

func setBool(dst **bool, v *bool) {
	if v == nil {
		return
	}
	b := *v
	*dst = &b
}

func setInt(dst **int, v *int) {
	if v == nil {
		return
	}
	i := *v
	*dst = &i
}

func setString(dst **string, v *string) {
	if v == nil {
		return
	}
	s := *v
	*dst = &s
}
