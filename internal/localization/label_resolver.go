package localization

import (
	"context"
	"log/slog"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	enumlabel "github.com/vladmesh/dnd-helper-sub000/internal/repositories/enum_label"
)

// LabelKey identifies one enum code
type LabelKey struct {
	EnumType string
	Code     string
}

// LabelResolverConfig holds the dependencies for a LabelResolver
type LabelResolverConfig struct {
	Repository enumlabel.Repository
}

// Validate ensures all required dependencies are provided
func (c *LabelResolverConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	return vb.Build()
}

// LabelResolver looks up display labels for enum codes of any number of types
type LabelResolver struct {
	repo enumlabel.Repository
}

// NewLabelResolver creates a resolver over the given repository
func NewLabelResolver(cfg *LabelResolverConfig) (*LabelResolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &LabelResolver{repo: cfg.Repository}, nil
}

// ResolveLabels returns the label of every requested (type, code) pair that
// has one. All pairs are fetched together for the requested language; pairs
// still missing are fetched together once more for the fallback language.
// Empty input returns an empty map without touching storage. Unknown codes are
// omitted and the caller decides how to present them.
func (r *LabelResolver) ResolveLabels(
	ctx context.Context,
	codesByType map[string][]string,
	lang dnd5e.Lang,
) (map[LabelKey]string, error) {
	wanted := flattenCodes(codesByType)
	result := make(map[LabelKey]string, len(wanted))
	if len(wanted) == 0 {
		return result, nil
	}

	lang = supportedOrPrimary(lang)

	if err := r.fill(ctx, result, wanted, groupByType(wanted), lang); err != nil {
		return nil, err
	}

	missing := make([]LabelKey, 0)
	for _, key := range wanted {
		if _, ok := result[key]; !ok {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		if err := r.fill(ctx, result, missing, groupByType(missing), lang.Fallback()); err != nil {
			return nil, err
		}
	}

	slog.DebugContext(ctx, "resolved enum labels",
		"lang", lang,
		"requested", len(wanted),
		"fallback_lookups", len(missing),
		"resolved", len(result))

	return result, nil
}

// fill fetches labels for keys and stores the ones not yet resolved
func (r *LabelResolver) fill(
	ctx context.Context,
	result map[LabelKey]string,
	keys []LabelKey,
	codesByType map[string][]string,
	lang dnd5e.Lang,
) error {
	out, err := r.repo.ListByCodes(ctx, enumlabel.ListByCodesInput{
		CodesByType: codesByType,
		Lang:        lang,
	})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	wanted := make(map[LabelKey]struct{}, len(keys))
	for _, key := range keys {
		wanted[key] = struct{}{}
	}

	for _, label := range out.Labels {
		if label == nil {
			continue
		}
		key := LabelKey{EnumType: label.EnumType, Code: label.Code}
		if _, ok := wanted[key]; !ok {
			continue
		}
		if _, done := result[key]; done {
			continue
		}
		result[key] = label.Label
	}
	return nil
}

// flattenCodes turns the per-type code sets into a deduplicated key list
func flattenCodes(codesByType map[string][]string) []LabelKey {
	var keys []LabelKey
	seen := make(map[LabelKey]struct{})
	for enumType, codes := range codesByType {
		if enumType == "" {
			continue
		}
		for _, code := range codes {
			if code == "" {
				continue
			}
			key := LabelKey{EnumType: enumType, Code: code}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}

func groupByType(keys []LabelKey) map[string][]string {
	grouped := make(map[string][]string)
	for _, key := range keys {
		grouped[key.EnumType] = append(grouped[key.EnumType], key.Code)
	}
	return grouped
}
