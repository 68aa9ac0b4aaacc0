// Package v1alpha1 handles the catalog grpc service interface
package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/orchestrators/catalog"
)

var _ CatalogServiceServer = (*Handler)(nil)

// HandlerConfig holds dependencies for the catalog handler
type HandlerConfig struct {
	CatalogService catalog.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.CatalogService == nil {
		return errors.InvalidArgument("catalog service is required")
	}
	return nil
}

// Handler implements the catalog gRPC service
type Handler struct {
	catalog catalog.Service
}

// NewHandler creates a new catalog handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		catalog: cfg.CatalogService,
	}, nil
}

// CreateMonster stores a new monster after deriving its filter fields
func (h *Handler) CreateMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in monsterMessage
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.CreateMonster(ctx, &catalog.CreateMonsterInput{Monster: in.Monster})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, monsterMessage{Monster: out.Monster})
}

// UpdateMonster replaces a stored monster
func (h *Handler) UpdateMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in monsterMessage
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.UpdateMonster(ctx, &catalog.UpdateMonsterInput{Monster: in.Monster})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, monsterMessage{Monster: out.Monster})
}

// GetMonster returns the localized envelope of one monster
func (h *Handler) GetMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in idRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	out, err := h.catalog.GetMonster(ctx, &catalog.GetMonsterInput{ID: in.ID, Lang: in.Lang})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, out.Envelope)
}

// GetMonsterBySlug returns the localized envelope of the monster with a slug
func (h *Handler) GetMonsterBySlug(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in slugRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Slug == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("slug is required"))
	}

	out, err := h.catalog.GetMonsterBySlug(ctx, &catalog.GetMonsterBySlugInput{Slug: in.Slug, Lang: in.Lang})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, out.Envelope)
}

// ListMonsters returns a filtered page of monster envelopes
func (h *Handler) ListMonsters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listMonstersRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.ListMonsters(ctx, &catalog.ListMonstersInput{
		Lang: in.Lang,
		Filter: catalog.MonsterFilter{
			IsFlying:      in.Filter.IsFlying,
			HasDarkvision: in.Filter.HasDarkvision,
			HasBlindsight: in.Filter.HasBlindsight,
			HasTruesight:  in.Filter.HasTruesight,
		},
		Page: catalog.Page{Limit: in.Limit, Offset: in.Offset},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, listMonstersResponse{Items: out.Envelopes, Total: out.Total})
}

// DeleteMonster removes a monster and its translations
func (h *Handler) DeleteMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in idRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	if _, err := h.catalog.DeleteMonster(ctx, &catalog.DeleteMonsterInput{ID: in.ID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// RollMonsterHitPoints rolls fresh hit points from a monster's hit dice
func (h *Handler) RollMonsterHitPoints(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in idRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	out, err := h.catalog.RollMonsterHitPoints(ctx, &catalog.RollMonsterHitPointsInput{ID: in.ID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, hitPointsResponse{
		Expression: out.Expression,
		Rolls:      out.Rolls,
		Modifier:   out.Modifier,
		Total:      out.Total,
	})
}

// CreateSpell stores a new spell after deriving its filter fields
func (h *Handler) CreateSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in spellMessage
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.CreateSpell(ctx, &catalog.CreateSpellInput{Spell: in.Spell})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, spellMessage{Spell: out.Spell})
}

// UpdateSpell replaces a stored spell
func (h *Handler) UpdateSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in spellMessage
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.UpdateSpell(ctx, &catalog.UpdateSpellInput{Spell: in.Spell})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, spellMessage{Spell: out.Spell})
}

// GetSpell returns the localized envelope of one spell
func (h *Handler) GetSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in idRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	out, err := h.catalog.GetSpell(ctx, &catalog.GetSpellInput{ID: in.ID, Lang: in.Lang})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, out.Envelope)
}

// GetSpellBySlug returns the localized envelope of the spell with a slug
func (h *Handler) GetSpellBySlug(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in slugRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Slug == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("slug is required"))
	}

	out, err := h.catalog.GetSpellBySlug(ctx, &catalog.GetSpellBySlugInput{Slug: in.Slug, Lang: in.Lang})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, out.Envelope)
}

// ListSpells returns a filtered page of spell envelopes
func (h *Handler) ListSpells(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listSpellsRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.ListSpells(ctx, &catalog.ListSpellsInput{
		Lang: in.Lang,
		Filter: catalog.SpellFilter{
			Level:           in.Filter.Level,
			School:          in.Filter.School,
			IsConcentration: in.Filter.IsConcentration,
			DamageType:      in.Filter.DamageType,
			SaveAbility:     in.Filter.SaveAbility,
			CastingTime:     in.Filter.CastingTime,
			AttackRoll:      in.Filter.AttackRoll,
		},
		Page: catalog.Page{Limit: in.Limit, Offset: in.Offset},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, listSpellsResponse{Items: out.Envelopes, Total: out.Total})
}

// DeleteSpell removes a spell and its translations
func (h *Handler) DeleteSpell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in idRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	if _, err := h.catalog.DeleteSpell(ctx, &catalog.DeleteSpellInput{ID: in.ID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// UpsertTranslation stores localized text for a monster or spell
func (h *Handler) UpsertTranslation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in translationMessage
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.UpsertTranslation(ctx, &catalog.UpsertTranslationInput{Translation: in.Translation})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, translationMessage{Translation: out.Translation})
}

// UpsertEnumLabel stores the label of one enum code
func (h *Handler) UpsertEnumLabel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in enumLabelMessage
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.UpsertEnumLabel(ctx, &catalog.UpsertEnumLabelInput{Label: in.Label})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, enumLabelMessage{Label: out.Label})
}

// ListEnumLabels returns every label of one enum type in one language
func (h *Handler) ListEnumLabels(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in listEnumLabelsRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.ListEnumLabels(ctx, &catalog.ListEnumLabelsInput{EnumType: in.EnumType, Lang: in.Lang})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(ctx, listEnumLabelsResponse{Labels: out.Labels})
}

func (h *Handler) respond(ctx context.Context, v any) (*structpb.Struct, error) {
	out, err := encode(v)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode response", "error", err.Error())
		return nil, errors.ToGRPCError(errors.Internal("failed to encode response"))
	}
	return out, nil
}

func invalidRequest(err error) error {
	return errors.InvalidArgumentf("malformed request: %v", err)
}
