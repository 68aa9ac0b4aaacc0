package client

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	spellID          string
	spellSlug        string
	spellLevel       int
	spellSchool      string
	spellDamageType  string
	spellSaveAbility string
	spellCastingTime string
	labelEnumType    string
)

var getSpellCmd = &cobra.Command{
	Use:   "get-spell",
	Short: "Get a spell by ID or slug",
	RunE: func(_ *cobra.Command, _ []string) error {
		switch {
		case spellID != "":
			return call("GetSpell", map[string]any{"id": spellID})
		case spellSlug != "":
			return call("GetSpellBySlug", map[string]any{"slug": spellSlug})
		default:
			return errors.New("either --id or --slug is required")
		}
	},
}

var listSpellsCmd = &cobra.Command{
	Use:   "list-spells",
	Short: "List spells filtered by level, school and derived fields",
	Long: `List spells. Casting time takes a canonical code:
- bonus_action
- reaction
- action
- 1m
- 10m
- 1h
- 8h`,
	RunE: runListSpells,
}

var listLabelsCmd = &cobra.Command{
	Use:   "list-labels",
	Short: "List the labels of one enum type",
	RunE: func(_ *cobra.Command, _ []string) error {
		if labelEnumType == "" {
			return errors.New("--type is required")
		}
		return call("ListEnumLabels", map[string]any{"enum_type": labelEnumType})
	},
}

func init() {
	getSpellCmd.Flags().StringVar(&spellID, "id", "", "Spell ID")
	getSpellCmd.Flags().StringVar(&spellSlug, "slug", "", "Spell slug")

	listSpellsCmd.Flags().IntVar(&spellLevel, "level", -1, "Spell level (0-9, where 0 = cantrips)")
	listSpellsCmd.Flags().StringVar(&spellSchool, "school", "", "Spell school (e.g. evocation)")
	listSpellsCmd.Flags().Bool("concentration", false, "Filter on concentration")
	listSpellsCmd.Flags().Bool("attack-roll", false, "Filter on spells that need an attack roll")
	listSpellsCmd.Flags().StringVar(&spellDamageType, "damage-type", "", "Damage type (e.g. fire)")
	listSpellsCmd.Flags().StringVar(&spellSaveAbility, "save", "", "Saving throw ability (e.g. dex)")
	listSpellsCmd.Flags().StringVar(&spellCastingTime, "casting-time", "", "Canonical casting time")
	listSpellsCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of spells")
	listSpellsCmd.Flags().IntVar(&listOffset, "offset", 0, "Number of spells to skip")

	listLabelsCmd.Flags().StringVar(&labelEnumType, "type", "", "Enum type (e.g. creature_size)")
}

func runListSpells(cmd *cobra.Command, _ []string) error {
	if spellLevel > 9 {
		return fmt.Errorf("spell level must be between 0 and 9, got %d", spellLevel)
	}

	filter := map[string]any{}
	if spellLevel >= 0 {
		filter["level"] = spellLevel
	}
	for field, value := range map[string]string{
		"school":       spellSchool,
		"damage_type":  spellDamageType,
		"save_ability": spellSaveAbility,
		"casting_time": spellCastingTime,
	} {
		if value != "" {
			filter[field] = value
		}
	}
	if v, ok := optionalBool(cmd, "concentration"); ok {
		filter["is_concentration"] = v
	}
	if v, ok := optionalBool(cmd, "attack-roll"); ok {
		filter["attack_roll"] = v
	}

	return call("ListSpells", map[string]any{
		"filter": filter,
		"limit":  listLimit,
		"offset": listOffset,
	})
}
