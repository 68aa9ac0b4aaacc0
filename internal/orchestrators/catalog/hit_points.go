package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/monster"
)

// maxHitDice bounds a single roll; the largest SRD creature rolls 33 dice
const maxHitDice = 100

// hitDicePattern matches notation like "19d12+133", "2d8" or "3d6 - 2"
var hitDicePattern = regexp.MustCompile(`^(\d+)d(\d+)\s*(?:([+-])\s*(\d+))?$`)

// RollMonsterHitPoints rolls a fresh hit point total from the monster's hit dice
func (o *orchestrator) RollMonsterHitPoints(
	ctx context.Context,
	input *RollMonsterHitPointsInput,
) (*RollMonsterHitPointsOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	out, err := o.monsterRepo.Get(ctx, monster.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	count, size, modifier, err := parseHitDice(out.Monster.HitDice)
	if err != nil {
		return nil, err
	}

	rolls, err := o.roller.RollN(count, size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll hit dice")
	}

	total := modifier
	for _, r := range rolls {
		total += r
	}
	// a creature always has at least one hit point
	if total < 1 {
		total = 1
	}

	return &RollMonsterHitPointsOutput{
		Expression: formatHitDice(count, size, modifier),
		Rolls:      rolls,
		Modifier:   modifier,
		Total:      total,
	}, nil
}

func parseHitDice(notation string) (count, size, modifier int, err error) {
	matches := hitDicePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if matches == nil {
		return 0, 0, 0, errors.FailedPreconditionf("monster has no usable hit dice: %q", notation)
	}

	count, _ = strconv.Atoi(matches[1])
	size, _ = strconv.Atoi(matches[2])
	if count <= 0 || size <= 0 {
		return 0, 0, 0, errors.FailedPreconditionf("hit dice count and size must be positive: %q", notation)
	}
	if count > maxHitDice {
		return 0, 0, 0, errors.FailedPreconditionf("hit dice count above %d: %q", maxHitDice, notation)
	}

	if matches[4] != "" {
		modifier, _ = strconv.Atoi(matches[4])
		if matches[3] == "-" {
			modifier = -modifier
		}
	}

	return count, size, modifier, nil
}

func formatHitDice(count, size, modifier int) string {
	switch {
	case modifier > 0:
		return fmt.Sprintf("%dd%d+%d", count, size, modifier)
	case modifier < 0:
		return fmt.Sprintf("%dd%d%d", count, size, modifier)
	default:
		return fmt.Sprintf("%dd%d", count, size)
	}
}
