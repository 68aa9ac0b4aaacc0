package dnd5e

// Entity types used to key translations and repositories
const (
	EntityTypeMonster = "monster"
	EntityTypeSpell   = "spell"
)

// Enum types that carry localized labels
const (
	EnumTypeCreatureSize = "creature_size"
	EnumTypeCreatureType = "creature_type"
	EnumTypeAlignment    = "alignment"
	EnumTypeSpellSchool  = "spell_school"
	EnumTypeDamageType   = "damage_type"
	EnumTypeAbility      = "ability"
	EnumTypeCastingTime  = "casting_time"
	EnumTypeTargeting    = "targeting"
)

// Sense keys recognized in a monster's senses map
const (
	SenseDarkvision  = "darkvision"
	SenseBlindsight  = "blindsight"
	SenseTruesight   = "truesight"
	SenseTremorsense = "tremorsense"
)

// Canonical casting time codes
const (
	CastingTimeBonusAction = "bonus_action"
	CastingTimeReaction    = "reaction"
	CastingTimeAction      = "action"
	CastingTimeTenMinutes  = "10m"
	CastingTimeOneMinute   = "1m"
	CastingTimeEightHours  = "8h"
	CastingTimeOneHour     = "1h"
)

// TargetingPoint is assigned to spells that carry an area descriptor
const TargetingPoint = "POINT"
