package client

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	monsterID   string
	monsterSlug string
	listLimit   int
	listOffset  int
)

var getMonsterCmd = &cobra.Command{
	Use:   "get-monster",
	Short: "Get a monster by ID or slug",
	RunE: func(_ *cobra.Command, _ []string) error {
		switch {
		case monsterID != "":
			return call("GetMonster", map[string]any{"id": monsterID})
		case monsterSlug != "":
			return call("GetMonsterBySlug", map[string]any{"slug": monsterSlug})
		default:
			return errors.New("either --id or --slug is required")
		}
	},
}

var listMonstersCmd = &cobra.Command{
	Use:   "list-monsters",
	Short: "List monsters filtered by senses and movement",
	Long: `List monsters. Boolean filters only apply when given, e.g.
  client list-monsters --flying --darkvision=false`,
	RunE: runListMonsters,
}

var rollHitPointsCmd = &cobra.Command{
	Use:   "roll-hp",
	Short: "Roll fresh hit points from a monster's hit dice",
	RunE: func(_ *cobra.Command, _ []string) error {
		if monsterID == "" {
			return errors.New("--id is required")
		}
		return call("RollMonsterHitPoints", map[string]any{"id": monsterID})
	},
}

func init() {
	getMonsterCmd.Flags().StringVar(&monsterID, "id", "", "Monster ID")
	getMonsterCmd.Flags().StringVar(&monsterSlug, "slug", "", "Monster slug")

	listMonstersCmd.Flags().Bool("flying", false, "Only flying (or, with =false, non-flying) monsters")
	listMonstersCmd.Flags().Bool("darkvision", false, "Filter on darkvision")
	listMonstersCmd.Flags().Bool("blindsight", false, "Filter on blindsight")
	listMonstersCmd.Flags().Bool("truesight", false, "Filter on truesight")
	listMonstersCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of monsters")
	listMonstersCmd.Flags().IntVar(&listOffset, "offset", 0, "Number of monsters to skip")

	rollHitPointsCmd.Flags().StringVar(&monsterID, "id", "", "Monster ID")
}

func runListMonsters(cmd *cobra.Command, _ []string) error {
	filter := map[string]any{}
	for flag, field := range map[string]string{
		"flying":     "is_flying",
		"darkvision": "has_darkvision",
		"blindsight": "has_blindsight",
		"truesight":  "has_truesight",
	} {
		if v, ok := optionalBool(cmd, flag); ok {
			filter[field] = v
		}
	}

	return call("ListMonsters", map[string]any{
		"filter": filter,
		"limit":  listLimit,
		"offset": listOffset,
	})
}
