package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vladmesh/dnd-helper-sub000/internal/derive"
	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/localization"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/monster"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/translation"
)

func (o *orchestrator) CreateMonster(ctx context.Context, input *CreateMonsterInput) (*CreateMonsterOutput, error) {
	if input == nil || input.Monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}

	m := *input.Monster
	if err := validateMonster(&m); err != nil {
		return nil, err
	}
	if m.ID == "" {
		m.ID = o.idGen.Generate()
	}

	derive.Monster(&m).Apply(&m)

	now := o.clock.Now()
	m.CreatedAt = now
	m.UpdatedAt = now

	out, err := o.monsterRepo.Create(ctx, monster.CreateInput{Monster: &m})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create monster")
	}

	slog.InfoContext(ctx, "monster created",
		"monster_id", m.ID,
		"slug", m.Slug)

	return &CreateMonsterOutput{Monster: out.Monster}, nil
}

// UpdateMonster replaces the stored monster. Derived fields are recomputed from
// the new raw attributes; CreatedAt is kept from the stored copy.
func (o *orchestrator) UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*UpdateMonsterOutput, error) {
	if input == nil || input.Monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}
	if input.Monster.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	m := *input.Monster
	if err := validateMonster(&m); err != nil {
		return nil, err
	}

	existing, err := o.monsterRepo.Get(ctx, monster.GetInput{ID: m.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	derive.Monster(&m).Apply(&m)
	m.CreatedAt = existing.Monster.CreatedAt
	m.UpdatedAt = o.clock.Now()

	out, err := o.monsterRepo.Update(ctx, monster.UpdateInput{Monster: &m})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update monster")
	}

	return &UpdateMonsterOutput{Monster: out.Monster}, nil
}

func (o *orchestrator) GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	out, err := o.monsterRepo.Get(ctx, monster.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	envelope, err := o.monsterEnvelope(ctx, out.Monster, localization.NormalizeLang(input.Lang))
	if err != nil {
		return nil, err
	}

	return &GetMonsterOutput{Envelope: envelope}, nil
}

func (o *orchestrator) GetMonsterBySlug(ctx context.Context, input *GetMonsterBySlugInput) (*GetMonsterOutput, error) {
	if input == nil || input.Slug == "" {
		return nil, errors.InvalidArgument("slug is required")
	}

	out, err := o.monsterRepo.GetBySlug(ctx, monster.GetBySlugInput{Slug: derive.Slugify(input.Slug)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	envelope, err := o.monsterEnvelope(ctx, out.Monster, localization.NormalizeLang(input.Lang))
	if err != nil {
		return nil, err
	}

	return &GetMonsterOutput{Envelope: envelope}, nil
}

func (o *orchestrator) ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error) {
	if input == nil {
		input = &ListMonstersInput{}
	}

	out, err := o.monsterRepo.List(ctx, monster.ListInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list monsters")
	}

	matched := make([]*dnd5e.Monster, 0, len(out.Monsters))
	for _, m := range out.Monsters {
		if input.Filter.matches(m) {
			matched = append(matched, m)
		}
	}

	start, end, err := page(len(matched), input.Page)
	if err != nil {
		return nil, err
	}
	monsters := matched[start:end]
	lang := localization.NormalizeLang(input.Lang)

	ids := make([]string, len(monsters))
	fieldSets := make([][]localization.LabeledField, len(monsters))
	for i, m := range monsters {
		ids[i] = m.ID
		fieldSets[i] = localization.MonsterLabelFields(m)
	}

	translations, err := o.translations.ResolveMany(ctx, dnd5e.EntityTypeMonster, ids, lang)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve monster translations")
	}
	labels, err := o.labels.ResolveLabels(ctx, localization.CodesByType(fieldSets...), lang)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve monster labels")
	}

	envelopes := make([]*MonsterEnvelope, len(monsters))
	for i, m := range monsters {
		envelopes[i] = &MonsterEnvelope{
			Monster:     m,
			Translation: translations[m.ID],
			Labels:      localization.ApplyLabels(fieldSets[i], labels),
		}
	}

	slog.DebugContext(ctx, "listed monsters",
		"lang", lang,
		"matched", len(matched),
		"returned", len(envelopes))

	return &ListMonstersOutput{Envelopes: envelopes, Total: len(matched)}, nil
}

// DeleteMonster removes the monster and every translation of it
func (o *orchestrator) DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	if _, err := o.monsterRepo.Delete(ctx, monster.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster")
	}

	if _, err := o.translationRepo.Delete(ctx, translation.DeleteInput{
		EntityType: dnd5e.EntityTypeMonster,
		EntityID:   input.ID,
	}); err != nil {
		slog.WarnContext(ctx, "monster deleted but translations remain",
			"monster_id", input.ID,
			"error", err.Error())
	}

	return &DeleteMonsterOutput{}, nil
}

func (o *orchestrator) monsterEnvelope(ctx context.Context, m *dnd5e.Monster, lang dnd5e.Lang) (*MonsterEnvelope, error) {
	t, err := o.translations.Resolve(ctx, dnd5e.EntityTypeMonster, m.ID, lang)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve monster translation")
	}

	fields := localization.MonsterLabelFields(m)
	labels, err := o.labels.ResolveLabels(ctx, localization.CodesByType(fields), lang)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve monster labels")
	}

	return &MonsterEnvelope{
		Monster:     m,
		Translation: t,
		Labels:      localization.ApplyLabels(fields, labels),
	}, nil
}

func (f MonsterFilter) matches(m *dnd5e.Monster) bool {
	return boolMatches(f.IsFlying, m.IsFlying) &&
		boolMatches(f.HasDarkvision, m.HasDarkvision) &&
		boolMatches(f.HasBlindsight, m.HasBlindsight) &&
		boolMatches(f.HasTruesight, m.HasTruesight)
}

// boolMatches treats an unset derived flag as false
func boolMatches(want, got *bool) bool {
	if want == nil {
		return true
	}
	return *want == (got != nil && *got)
}

func stringMatches(want string, got *string) bool {
	if want == "" {
		return true
	}
	return got != nil && strings.EqualFold(*got, want)
}

func validateMonster(m *dnd5e.Monster) error {
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(m.Name) == "" {
		vb.RequiredField("name")
	}
	validateSlug(vb, m.Slug)
	return vb.Build()
}

// validateSlug rejects a caller-supplied slug that the slug lookups could
// never find again; an empty slug is derived from the name later
func validateSlug(vb *errors.ValidationBuilder, slug string) {
	if slug != "" && slug != derive.Slugify(slug) {
		vb.InvalidField("slug", "must be lowercase letters, digits and single hyphens")
	}
}
