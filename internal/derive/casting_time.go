package derive

import (
	"strings"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
)

type castingTimeRule struct {
	code     string
	equals   []string
	contains []string
	prefixes []string
}

func (r castingTimeRule) matches(text string) bool {
	for _, e := range r.equals {
		if text == e {
			return true
		}
	}
	for _, c := range r.contains {
		if strings.Contains(text, c) {
			return true
		}
	}
	for _, p := range r.prefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}

// castingTimeLadder is evaluated top to bottom and the first match wins.
// The patterns overlap ("1 bonus action" also reads as an action), so the
// order must not change.
var castingTimeLadder = []castingTimeRule{
	{code: dnd5e.CastingTimeBonusAction, contains: []string{"bonus action"}},
	{code: dnd5e.CastingTimeReaction, contains: []string{"reaction"}},
	{code: dnd5e.CastingTimeAction, equals: []string{"action"}, contains: []string{"1 action"}},
	{code: dnd5e.CastingTimeTenMinutes, contains: []string{"10 minute", "10 min"}, prefixes: []string{"10m"}},
	{code: dnd5e.CastingTimeOneMinute, contains: []string{"1 minute", "1 min"}, prefixes: []string{"1m"}},
	{code: dnd5e.CastingTimeEightHours, contains: []string{"8 hour"}, prefixes: []string{"8h"}},
	{code: dnd5e.CastingTimeOneHour, contains: []string{"1 hour"}, prefixes: []string{"1h"}},
}

// NormalizeCastingTime maps free casting-time text to a canonical code.
// Text that matches no rule is returned lowercased and otherwise unchanged.
func NormalizeCastingTime(text string) string {
	normalized := strings.ToLower(text)
	for _, rule := range castingTimeLadder {
		if rule.matches(normalized) {
			return rule.code
		}
	}
	return normalized
}
