// Package ingest loads catalog content in bulk: SRD spells from the dnd5e API
// and hand-written seed documents. Entities are matched by slug, so running an
// import twice updates rather than duplicates.
package ingest

import (
	"context"
	"log/slog"

	"github.com/vladmesh/dnd-helper-sub000/internal/clients/external"
	"github.com/vladmesh/dnd-helper-sub000/internal/derive"
	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/orchestrators/catalog"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/monster"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/spell"
)

// Service defines the bulk load operations
type Service interface {
	ImportSpells(ctx context.Context, input *ImportSpellsInput) (*ImportOutput, error)
	Seed(ctx context.Context, input *SeedInput) (*ImportOutput, error)
}

// ImportSpellsInput narrows which SRD spells are imported
type ImportSpellsInput struct {
	Level   *int
	ClassID string
}

// SeedInput carries a parsed seed document
type SeedInput struct {
	Document *Document
}

// ImportOutput counts what a load wrote
type ImportOutput struct {
	Created      int
	Updated      int
	Translations int
	Labels       int
}

// Config holds the dependencies for the ingest orchestrator.
// Client is only needed for ImportSpells.
type Config struct {
	Catalog     catalog.Service
	MonsterRepo monster.Repository
	SpellRepo   spell.Repository
	Client      external.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	catalog     catalog.Service
	monsterRepo monster.Repository
	spellRepo   spell.Repository
	client      external.Client
}

// NewOrchestrator creates a new ingest orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalog:     cfg.Catalog,
		monsterRepo: cfg.MonsterRepo,
		spellRepo:   cfg.SpellRepo,
		client:      cfg.Client,
	}, nil
}

func (o *orchestrator) ImportSpells(ctx context.Context, input *ImportSpellsInput) (*ImportOutput, error) {
	if o.client == nil {
		return nil, errors.FailedPrecondition("no dnd5e API client configured")
	}
	if input == nil {
		input = &ImportSpellsInput{}
	}

	spells, err := o.client.ListSpells(ctx, &external.ListSpellsInput{
		Level:   input.Level,
		ClassID: input.ClassID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch SRD spells")
	}

	out := &ImportOutput{}
	for _, sp := range spells {
		created, err := o.upsertSpell(ctx, sp)
		if err != nil {
			return out, err
		}
		out.count(created)
	}

	slog.InfoContext(ctx, "imported SRD spells",
		"created", out.Created,
		"updated", out.Updated)

	return out, nil
}

// Seed writes labels first, then entities, then translations, since
// translations may name entities created earlier in the same document.
func (o *orchestrator) Seed(ctx context.Context, input *SeedInput) (*ImportOutput, error) {
	if input == nil || input.Document == nil {
		return nil, errors.InvalidArgument("seed document is required")
	}
	doc := input.Document
	out := &ImportOutput{}

	for _, label := range doc.EnumLabels {
		if _, err := o.catalog.UpsertEnumLabel(ctx, &catalog.UpsertEnumLabelInput{Label: label}); err != nil {
			return out, errors.Wrapf(err, "failed to seed label %s/%s", label.EnumType, label.Code)
		}
		out.Labels++
	}

	for _, m := range doc.Monsters {
		created, err := o.upsertMonster(ctx, m)
		if err != nil {
			return out, err
		}
		out.count(created)
	}

	for _, sp := range doc.Spells {
		created, err := o.upsertSpell(ctx, sp)
		if err != nil {
			return out, err
		}
		out.count(created)
	}

	for _, st := range doc.Translations {
		if err := o.seedTranslation(ctx, st); err != nil {
			return out, err
		}
		out.Translations++
	}

	slog.InfoContext(ctx, "seed applied",
		"created", out.Created,
		"updated", out.Updated,
		"translations", out.Translations,
		"labels", out.Labels)

	return out, nil
}

func (o *orchestrator) upsertMonster(ctx context.Context, m *dnd5e.Monster) (bool, error) {
	if m == nil {
		return false, errors.InvalidArgument("monster cannot be nil")
	}
	candidate := *m
	// imported records carry whatever key their source used
	if candidate.Slug == "" {
		candidate.Slug = derive.Slugify(candidate.Name)
	} else {
		candidate.Slug = derive.Slugify(candidate.Slug)
	}

	existing, err := o.monsterRepo.GetBySlug(ctx, monster.GetBySlugInput{Slug: candidate.Slug})
	switch {
	case err == nil:
		candidate.ID = existing.Monster.ID
		if _, err := o.catalog.UpdateMonster(ctx, &catalog.UpdateMonsterInput{Monster: &candidate}); err != nil {
			return false, errors.Wrapf(err, "failed to update monster %s", candidate.Slug)
		}
		return false, nil
	case errors.IsNotFound(err):
		if _, err := o.catalog.CreateMonster(ctx, &catalog.CreateMonsterInput{Monster: &candidate}); err != nil {
			return false, errors.Wrapf(err, "failed to create monster %s", candidate.Slug)
		}
		return true, nil
	default:
		return false, errors.Wrapf(err, "failed to look up monster %s", candidate.Slug)
	}
}

func (o *orchestrator) upsertSpell(ctx context.Context, sp *dnd5e.Spell) (bool, error) {
	if sp == nil {
		return false, errors.InvalidArgument("spell cannot be nil")
	}
	candidate := *sp
	// imported records carry whatever key their source used
	if candidate.Slug == "" {
		candidate.Slug = derive.Slugify(candidate.Name)
	} else {
		candidate.Slug = derive.Slugify(candidate.Slug)
	}

	existing, err := o.spellRepo.GetBySlug(ctx, spell.GetBySlugInput{Slug: candidate.Slug})
	switch {
	case err == nil:
		candidate.ID = existing.Spell.ID
		if _, err := o.catalog.UpdateSpell(ctx, &catalog.UpdateSpellInput{Spell: &candidate}); err != nil {
			return false, errors.Wrapf(err, "failed to update spell %s", candidate.Slug)
		}
		return false, nil
	case errors.IsNotFound(err):
		if _, err := o.catalog.CreateSpell(ctx, &catalog.CreateSpellInput{Spell: &candidate}); err != nil {
			return false, errors.Wrapf(err, "failed to create spell %s", candidate.Slug)
		}
		return true, nil
	default:
		return false, errors.Wrapf(err, "failed to look up spell %s", candidate.Slug)
	}
}

func (o *orchestrator) seedTranslation(ctx context.Context, st *SeedTranslation) error {
	if st == nil {
		return errors.InvalidArgument("translation cannot be nil")
	}
	t := st.Translation

	if t.EntityID == "" && st.EntitySlug != "" {
		id, err := o.idForSlug(ctx, t.EntityType, st.EntitySlug)
		if err != nil {
			return err
		}
		t.EntityID = id
	}

	if _, err := o.catalog.UpsertTranslation(ctx, &catalog.UpsertTranslationInput{Translation: &t}); err != nil {
		return errors.Wrapf(err, "failed to seed %s translation of %s %s", t.Lang, t.EntityType, t.EntityID)
	}
	return nil
}

func (o *orchestrator) idForSlug(ctx context.Context, entityType, slug string) (string, error) {
	slug = derive.Slugify(slug)
	switch entityType {
	case dnd5e.EntityTypeMonster:
		out, err := o.monsterRepo.GetBySlug(ctx, monster.GetBySlugInput{Slug: slug})
		if err != nil {
			return "", errors.Wrapf(err, "failed to find monster %s", slug)
		}
		return out.Monster.ID, nil
	case dnd5e.EntityTypeSpell:
		out, err := o.spellRepo.GetBySlug(ctx, spell.GetBySlugInput{Slug: slug})
		if err != nil {
			return "", errors.Wrapf(err, "failed to find spell %s", slug)
		}
		return out.Spell.ID, nil
	default:
		return "", errors.InvalidArgumentf("unknown entity type %q", entityType)
	}
}

func (out *ImportOutput) count(created bool) {
	if created {
		out.Created++
	} else {
		out.Updated++
	}
}
