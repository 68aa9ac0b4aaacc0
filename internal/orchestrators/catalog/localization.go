package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/localization"
	enumlabel "github.com/vladmesh/dnd-helper-sub000/internal/repositories/enum_label"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/monster"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/spell"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/translation"
)

// UpsertTranslation stores localized text for an existing monster or spell.
// The language must be one of the catalog languages exactly; it is not
// defaulted like read-path languages are.
func (o *orchestrator) UpsertTranslation(ctx context.Context, input *UpsertTranslationInput) (*UpsertTranslationOutput, error) {
	if input == nil || input.Translation == nil {
		return nil, errors.InvalidArgument("translation is required")
	}

	t := *input.Translation
	t.Lang = dnd5e.Lang(strings.ToLower(strings.TrimSpace(string(t.Lang))))

	vb := errors.NewValidationBuilder()
	if t.EntityID == "" {
		vb.RequiredField("entity_id")
	}
	if t.EntityType != dnd5e.EntityTypeMonster && t.EntityType != dnd5e.EntityTypeSpell {
		vb.InvalidField("entity_type", "must be monster or spell")
	}
	if !t.Lang.IsSupported() {
		vb.InvalidField("lang", "must be ru or en")
	}
	if strings.TrimSpace(t.Name) == "" {
		vb.RequiredField("name")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := o.ensureEntity(ctx, t.EntityType, t.EntityID); err != nil {
		return nil, err
	}

	out, err := o.translationRepo.Upsert(ctx, translation.UpsertInput{Translation: &t})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store translation")
	}

	slog.InfoContext(ctx, "translation stored",
		"entity_type", t.EntityType,
		"entity_id", t.EntityID,
		"lang", t.Lang)

	return &UpsertTranslationOutput{Translation: out.Translation}, nil
}

func (o *orchestrator) UpsertEnumLabel(ctx context.Context, input *UpsertEnumLabelInput) (*UpsertEnumLabelOutput, error) {
	if input == nil || input.Label == nil {
		return nil, errors.InvalidArgument("label is required")
	}

	label := *input.Label
	label.Lang = dnd5e.Lang(strings.ToLower(strings.TrimSpace(string(label.Lang))))

	out, err := o.enumLabelRepo.Upsert(ctx, enumlabel.UpsertInput{Label: &label})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store enum label")
	}

	return &UpsertEnumLabelOutput{Label: out.Label}, nil
}

func (o *orchestrator) ListEnumLabels(ctx context.Context, input *ListEnumLabelsInput) (*ListEnumLabelsOutput, error) {
	if input == nil || input.EnumType == "" {
		return nil, errors.InvalidArgument("enum type is required")
	}

	out, err := o.enumLabelRepo.ListByType(ctx, enumlabel.ListByTypeInput{
		EnumType: input.EnumType,
		Lang:     localization.NormalizeLang(input.Lang),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list enum labels")
	}

	return &ListEnumLabelsOutput{Labels: out.Labels}, nil
}

func (o *orchestrator) ensureEntity(ctx context.Context, entityType, id string) error {
	var err error
	switch entityType {
	case dnd5e.EntityTypeMonster:
		_, err = o.monsterRepo.Get(ctx, monster.GetInput{ID: id})
	case dnd5e.EntityTypeSpell:
		_, err = o.spellRepo.Get(ctx, spell.GetInput{ID: id})
	}
	if err != nil {
		return errors.Wrapf(err, "failed to find %s %s", entityType, id)
	}
	return nil
}
