package localization

import (
	"context"
	"log/slog"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/translation"
)

// TranslationResolverConfig holds the dependencies for a TranslationResolver
type TranslationResolverConfig struct {
	Repository translation.Repository
}

// Validate ensures all required dependencies are provided
func (c *TranslationResolverConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	return vb.Build()
}

// TranslationResolver picks the translation of an entity in the requested
// language, falling back to the other supported language. It never
// synthesizes text: when neither row exists the entity has no translation.
type TranslationResolver struct {
	repo translation.Repository
}

// NewTranslationResolver creates a resolver over the given repository
func NewTranslationResolver(cfg *TranslationResolverConfig) (*TranslationResolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &TranslationResolver{repo: cfg.Repository}, nil
}

// Resolve returns the translation of one entity. A nil translation with a nil
// error means neither language has a row. Storage errors are returned as is.
func (r *TranslationResolver) Resolve(
	ctx context.Context,
	entityType, entityID string,
	lang dnd5e.Lang,
) (*dnd5e.Translation, error) {
	if entityType == "" || entityID == "" {
		return nil, nil
	}

	lang = supportedOrPrimary(lang)
	for _, candidate := range []dnd5e.Lang{lang, lang.Fallback()} {
		out, err := r.repo.Get(ctx, translation.GetInput{
			EntityType: entityType,
			EntityID:   entityID,
			Lang:       candidate,
		})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		if out == nil || out.Translation == nil {
			continue
		}
		return out.Translation, nil
	}

	return nil, nil
}

// ResolveMany returns translations for a set of entities of one type, keyed by
// entity ID. It issues one batch fetch for the requested language and, only if
// some entities are still missing, one batch fetch for the fallback language.
// Entities with no row in either language are omitted; empty IDs are skipped.
func (r *TranslationResolver) ResolveMany(
	ctx context.Context,
	entityType string,
	entityIDs []string,
	lang dnd5e.Lang,
) (map[string]*dnd5e.Translation, error) {
	ids := uniqueNonEmpty(entityIDs)
	result := make(map[string]*dnd5e.Translation, len(ids))
	if entityType == "" || len(ids) == 0 {
		return result, nil
	}

	lang = supportedOrPrimary(lang)

	// entity -> language -> row
	byEntity := make(map[string]map[dnd5e.Lang]*dnd5e.Translation, len(ids))

	requested, err := r.fetch(ctx, entityType, ids, lang)
	if err != nil {
		return nil, err
	}
	collect(byEntity, requested, lang)

	var missing []string
	for _, id := range ids {
		if byEntity[id][lang] == nil {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		fallback, err := r.fetch(ctx, entityType, missing, lang.Fallback())
		if err != nil {
			return nil, err
		}
		collect(byEntity, fallback, lang.Fallback())
	}

	for _, id := range ids {
		rows := byEntity[id]
		if t := rows[lang]; t != nil {
			result[id] = t
		} else if t := rows[lang.Fallback()]; t != nil {
			result[id] = t
		}
	}

	slog.DebugContext(ctx, "resolved translations",
		"entity_type", entityType,
		"lang", lang,
		"requested", len(ids),
		"fallback_lookups", len(missing),
		"resolved", len(result))

	return result, nil
}

func (r *TranslationResolver) fetch(
	ctx context.Context,
	entityType string,
	ids []string,
	lang dnd5e.Lang,
) ([]*dnd5e.Translation, error) {
	out, err := r.repo.ListByEntityIDs(ctx, translation.ListByEntityIDsInput{
		EntityType: entityType,
		EntityIDs:  ids,
		Lang:       lang,
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return out.Translations, nil
}

// collect files rows under the language they were fetched for
func collect(byEntity map[string]map[dnd5e.Lang]*dnd5e.Translation, rows []*dnd5e.Translation, lang dnd5e.Lang) {
	for _, t := range rows {
		if t == nil || t.EntityID == "" {
			continue
		}
		if byEntity[t.EntityID] == nil {
			byEntity[t.EntityID] = make(map[dnd5e.Lang]*dnd5e.Translation, 2)
		}
		byEntity[t.EntityID][lang] = t
	}
}

func uniqueNonEmpty(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
