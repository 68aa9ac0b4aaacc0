// Package catalog implements the catalog orchestrator: the write path that
// derives filter fields before persisting, and the read path that assembles
// localized envelopes.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/vladmesh/dnd-helper-sub000/internal/orchestrators/catalog Service

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/localization"
	"github.com/vladmesh/dnd-helper-sub000/internal/pkg/clock"
	"github.com/vladmesh/dnd-helper-sub000/internal/pkg/idgen"
	enumlabel "github.com/vladmesh/dnd-helper-sub000/internal/repositories/enum_label"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/monster"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/spell"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/translation"
)

// Service defines the catalog operations
type Service interface {
	CreateMonster(ctx context.Context, input *CreateMonsterInput) (*CreateMonsterOutput, error)
	UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*UpdateMonsterOutput, error)
	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)
	GetMonsterBySlug(ctx context.Context, input *GetMonsterBySlugInput) (*GetMonsterOutput, error)
	ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error)
	DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error)
	RollMonsterHitPoints(ctx context.Context, input *RollMonsterHitPointsInput) (*RollMonsterHitPointsOutput, error)

	CreateSpell(ctx context.Context, input *CreateSpellInput) (*CreateSpellOutput, error)
	UpdateSpell(ctx context.Context, input *UpdateSpellInput) (*UpdateSpellOutput, error)
	GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error)
	GetSpellBySlug(ctx context.Context, input *GetSpellBySlugInput) (*GetSpellOutput, error)
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)
	DeleteSpell(ctx context.Context, input *DeleteSpellInput) (*DeleteSpellOutput, error)

	UpsertTranslation(ctx context.Context, input *UpsertTranslationInput) (*UpsertTranslationOutput, error)
	UpsertEnumLabel(ctx context.Context, input *UpsertEnumLabelInput) (*UpsertEnumLabelOutput, error)
	ListEnumLabels(ctx context.Context, input *ListEnumLabelsInput) (*ListEnumLabelsOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	MonsterRepo     monster.Repository
	SpellRepo       spell.Repository
	TranslationRepo translation.Repository
	EnumLabelRepo   enumlabel.Repository
	IDGenerator     idgen.Generator
	Clock           clock.Clock
	DiceRoller      dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}
	if c.TranslationRepo == nil {
		vb.RequiredField("TranslationRepo")
	}
	if c.EnumLabelRepo == nil {
		vb.RequiredField("EnumLabelRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	monsterRepo     monster.Repository
	spellRepo       spell.Repository
	translationRepo translation.Repository
	enumLabelRepo   enumlabel.Repository
	idGen           idgen.Generator
	clock           clock.Clock
	roller          dice.Roller

	translations *localization.TranslationResolver
	labels       *localization.LabelResolver
}

// NewOrchestrator creates a new catalog orchestrator with the provided dependencies.
// Clock and DiceRoller default to the system clock and the toolkit's roller.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	translations, err := localization.NewTranslationResolver(&localization.TranslationResolverConfig{
		Repository: cfg.TranslationRepo,
	})
	if err != nil {
		return nil, err
	}

	labels, err := localization.NewLabelResolver(&localization.LabelResolverConfig{
		Repository: cfg.EnumLabelRepo,
	})
	if err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	roller := cfg.DiceRoller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		monsterRepo:     cfg.MonsterRepo,
		spellRepo:       cfg.SpellRepo,
		translationRepo: cfg.TranslationRepo,
		enumLabelRepo:   cfg.EnumLabelRepo,
		idGen:           cfg.IDGenerator,
		clock:           c,
		roller:          roller,
		translations:    translations,
		labels:          labels,
	}, nil
}

// page applies offset and limit to n items and returns the slice bounds
func page(n int, p Page) (int, int, error) {
	if p.Limit < 0 || p.Offset < 0 {
		return 0, 0, errors.InvalidArgument("limit and offset must not be negative")
	}
	start := p.Offset
	if start > n {
		start = n
	}
	end := n
	if p.Limit > 0 && p.Limit < n-start {
		end = start + p.Limit
	}
	return start, end, nil
}
