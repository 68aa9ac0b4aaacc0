package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vladmesh/dnd-helper-sub000/internal/derive"
	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/localization"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/spell"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/translation"
)

func (o *orchestrator) CreateSpell(ctx context.Context, input *CreateSpellInput) (*CreateSpellOutput, error) {
	if input == nil || input.Spell == nil {
		return nil, errors.InvalidArgument("spell is required")
	}

	s := *input.Spell
	if err := validateSpell(&s); err != nil {
		return nil, err
	}
	if s.ID == "" {
		s.ID = o.idGen.Generate()
	}

	derive.Spell(&s).Apply(&s)

	now := o.clock.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	out, err := o.spellRepo.Create(ctx, spell.CreateInput{Spell: &s})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create spell")
	}

	slog.InfoContext(ctx, "spell created",
		"spell_id", s.ID,
		"slug", s.Slug)

	return &CreateSpellOutput{Spell: out.Spell}, nil
}

// UpdateSpell replaces the stored spell. The deriver runs on the incoming
// spell, so attack_roll and targeting set by the caller are kept.
func (o *orchestrator) UpdateSpell(ctx context.Context, input *UpdateSpellInput) (*UpdateSpellOutput, error) {
	if input == nil || input.Spell == nil {
		return nil, errors.InvalidArgument("spell is required")
	}
	if input.Spell.ID == "" {
		return nil, errors.InvalidArgument("spell ID is required")
	}

	s := *input.Spell
	if err := validateSpell(&s); err != nil {
		return nil, err
	}

	existing, err := o.spellRepo.Get(ctx, spell.GetInput{ID: s.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell")
	}

	derive.Spell(&s).Apply(&s)
	s.CreatedAt = existing.Spell.CreatedAt
	s.UpdatedAt = o.clock.Now()

	out, err := o.spellRepo.Update(ctx, spell.UpdateInput{Spell: &s})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update spell")
	}

	return &UpdateSpellOutput{Spell: out.Spell}, nil
}

func (o *orchestrator) GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("spell ID is required")
	}

	out, err := o.spellRepo.Get(ctx, spell.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell")
	}

	envelope, err := o.spellEnvelope(ctx, out.Spell, localization.NormalizeLang(input.Lang))
	if err != nil {
		return nil, err
	}

	return &GetSpellOutput{Envelope: envelope}, nil
}

func (o *orchestrator) GetSpellBySlug(ctx context.Context, input *GetSpellBySlugInput) (*GetSpellOutput, error) {
	if input == nil || input.Slug == "" {
		return nil, errors.InvalidArgument("slug is required")
	}

	out, err := o.spellRepo.GetBySlug(ctx, spell.GetBySlugInput{Slug: derive.Slugify(input.Slug)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell")
	}

	envelope, err := o.spellEnvelope(ctx, out.Spell, localization.NormalizeLang(input.Lang))
	if err != nil {
		return nil, err
	}

	return &GetSpellOutput{Envelope: envelope}, nil
}

func (o *orchestrator) ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error) {
	if input == nil {
		input = &ListSpellsInput{}
	}

	out, err := o.spellRepo.List(ctx, spell.ListInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list spells")
	}

	matched := make([]*dnd5e.Spell, 0, len(out.Spells))
	for _, s := range out.Spells {
		if input.Filter.matches(s) {
			matched = append(matched, s)
		}
	}

	start, end, err := page(len(matched), input.Page)
	if err != nil {
		return nil, err
	}
	spells := matched[start:end]
	lang := localization.NormalizeLang(input.Lang)

	ids := make([]string, len(spells))
	fieldSets := make([][]localization.LabeledField, len(spells))
	for i, s := range spells {
		ids[i] = s.ID
		fieldSets[i] = localization.SpellLabelFields(s)
	}

	translations, err := o.translations.ResolveMany(ctx, dnd5e.EntityTypeSpell, ids, lang)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve spell translations")
	}
	labels, err := o.labels.ResolveLabels(ctx, localization.CodesByType(fieldSets...), lang)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve spell labels")
	}

	envelopes := make([]*SpellEnvelope, len(spells))
	for i, s := range spells {
		envelopes[i] = &SpellEnvelope{
			Spell:       s,
			Translation: translations[s.ID],
			Labels:      localization.ApplyLabels(fieldSets[i], labels),
		}
	}

	slog.DebugContext(ctx, "listed spells",
		"lang", lang,
		"matched", len(matched),
		"returned", len(envelopes))

	return &ListSpellsOutput{Envelopes: envelopes, Total: len(matched)}, nil
}

// DeleteSpell removes the spell and every translation of it
func (o *orchestrator) DeleteSpell(ctx context.Context, input *DeleteSpellInput) (*DeleteSpellOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("spell ID is required")
	}

	if _, err := o.spellRepo.Delete(ctx, spell.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete spell")
	}

	if _, err := o.translationRepo.Delete(ctx, translation.DeleteInput{
		EntityType: dnd5e.EntityTypeSpell,
		EntityID:   input.ID,
	}); err != nil {
		slog.WarnContext(ctx, "spell deleted but translations remain",
			"spell_id", input.ID,
			"error", err.Error())
	}

	return &DeleteSpellOutput{}, nil
}

func (o *orchestrator) spellEnvelope(ctx context.Context, s *dnd5e.Spell, lang dnd5e.Lang) (*SpellEnvelope, error) {
	t, err := o.translations.Resolve(ctx, dnd5e.EntityTypeSpell, s.ID, lang)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve spell translation")
	}

	fields := localization.SpellLabelFields(s)
	labels, err := o.labels.ResolveLabels(ctx, localization.CodesByType(fields), lang)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve spell labels")
	}

	return &SpellEnvelope{
		Spell:       s,
		Translation: t,
		Labels:      localization.ApplyLabels(fields, labels),
	}, nil
}

func (f SpellFilter) matches(s *dnd5e.Spell) bool {
	if f.Level != nil && *f.Level != s.Level {
		return false
	}
	if f.School != "" && !strings.EqualFold(f.School, s.School) {
		return false
	}
	return boolMatches(f.IsConcentration, s.IsConcentration) &&
		boolMatches(f.AttackRoll, s.AttackRoll) &&
		stringMatches(f.DamageType, s.DamageType) &&
		stringMatches(f.SaveAbility, s.SaveAbility) &&
		stringMatches(f.CastingTime, s.CastingTime)
}

func validateSpell(s *dnd5e.Spell) error {
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(s.Name) == "" {
		vb.RequiredField("name")
	}
	if s.Level < 0 || s.Level > 9 {
		vb.InvalidField("level", "must be between 0 and 9")
	}
	validateSlug(vb, s.Slug)
	return vb.Build()
}
