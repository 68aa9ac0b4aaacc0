package localization

import (
	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
)

// LabeledField is one enum-valued field present on an entity
type LabeledField struct {
	Field    string
	EnumType string
	Code     string
}

// LabeledCode is the presentation of an enum field: its code and the label
// to show for it. Label falls back to the code when no label row exists.
type LabeledCode struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// MonsterLabelFields lists the enum-valued fields set on m
func MonsterLabelFields(m *dnd5e.Monster) []LabeledField {
	if m == nil {
		return nil
	}
	return presentFields(
		LabeledField{Field: "size", EnumType: dnd5e.EnumTypeCreatureSize, Code: m.Size},
		LabeledField{Field: "type", EnumType: dnd5e.EnumTypeCreatureType, Code: m.Type},
		LabeledField{Field: "alignment", EnumType: dnd5e.EnumTypeAlignment, Code: m.Alignment},
	)
}

// SpellLabelFields lists the enum-valued fields set on s
func SpellLabelFields(s *dnd5e.Spell) []LabeledField {
	if s == nil {
		return nil
	}
	return presentFields(
		LabeledField{Field: "school", EnumType: dnd5e.EnumTypeSpellSchool, Code: s.School},
		LabeledField{Field: "damage_type", EnumType: dnd5e.EnumTypeDamageType, Code: deref(s.DamageType)},
		LabeledField{Field: "save_ability", EnumType: dnd5e.EnumTypeAbility, Code: deref(s.SaveAbility)},
		LabeledField{Field: "casting_time", EnumType: dnd5e.EnumTypeCastingTime, Code: deref(s.CastingTime)},
		LabeledField{Field: "targeting", EnumType: dnd5e.EnumTypeTargeting, Code: deref(s.Targeting)},
	)
}

// CodesByType groups the codes of any number of field lists for ResolveLabels
func CodesByType(fieldSets ...[]LabeledField) map[string][]string {
	codes := make(map[string][]string)
	for _, fields := range fieldSets {
		for _, f := range fields {
			codes[f.EnumType] = append(codes[f.EnumType], f.Code)
		}
	}
	return codes
}

// ApplyLabels builds the field name -> {code, label} map of one entity
func ApplyLabels(fields []LabeledField, labels map[LabelKey]string) map[string]LabeledCode {
	out := make(map[string]LabeledCode, len(fields))
	for _, f := range fields {
		label, ok := labels[LabelKey{EnumType: f.EnumType, Code: f.Code}]
		if !ok || label == "" {
			label = f.Code
		}
		out[f.Field] = LabeledCode{Code: f.Code, Label: label}
	}
	return out
}

func presentFields(candidates ...LabeledField) []LabeledField {
	fields := make([]LabeledField, 0, len(candidates))
	for _, f := range candidates {
		if f.Code != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
