package enumlabel

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	redisclient "github.com/vladmesh/dnd-helper-sub000/internal/redis"
)

const (
	labelKeyPrefix   = "enum_label:"
	typeIndexPrefix  = "enum_label:index:"
	errLabelNil      = "label cannot be nil"
	errEnumTypeEmpty = "enum type cannot be empty"
	errLangInvalid   = "language must be one of ru, en"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis enum label repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed enum label repository.
// Labels live under enum_label:<type>:<lang>:<code>; a set per type and
// language indexes the codes for ListByType.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Key returns the Redis key of one label
func Key(enumType, code string, lang dnd5e.Lang) string {
	return fmt.Sprintf("%s%s:%s:%s", labelKeyPrefix, enumType, lang, code)
}

func indexKey(enumType string, lang dnd5e.Lang) string {
	return fmt.Sprintf("%s%s:%s", typeIndexPrefix, enumType, lang)
}

func (r *redisRepository) ListByCodes(ctx context.Context, input ListByCodesInput) (*ListByCodesOutput, error) {
	if !input.Lang.IsSupported() {
		return nil, errors.InvalidArgument(errLangInvalid)
	}

	var keys []string
	for enumType, codes := range input.CodesByType {
		if enumType == "" {
			continue
		}
		for _, code := range codes {
			if code == "" {
				continue
			}
			keys = append(keys, Key(enumType, code, input.Lang))
		}
	}
	if len(keys) == 0 {
		return &ListByCodesOutput{}, nil
	}

	labels, err := r.mget(ctx, keys)
	if err != nil {
		return nil, err
	}

	return &ListByCodesOutput{Labels: labels}, nil
}

func (r *redisRepository) ListByType(ctx context.Context, input ListByTypeInput) (*ListByTypeOutput, error) {
	if input.EnumType == "" {
		return nil, errors.InvalidArgument(errEnumTypeEmpty)
	}
	if !input.Lang.IsSupported() {
		return nil, errors.InvalidArgument(errLangInvalid)
	}

	codes, err := r.client.SMembers(ctx, indexKey(input.EnumType, input.Lang)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s codes", input.EnumType)
	}
	if len(codes) == 0 {
		return &ListByTypeOutput{}, nil
	}
	sort.Strings(codes)

	keys := make([]string, 0, len(codes))
	for _, code := range codes {
		keys = append(keys, Key(input.EnumType, code, input.Lang))
	}

	labels, err := r.mget(ctx, keys)
	if err != nil {
		return nil, err
	}

	return &ListByTypeOutput{Labels: labels}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if err := validateLabel(input.Label); err != nil {
		return nil, err
	}
	label := input.Label

	data, err := json.Marshal(label)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal label")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, Key(label.EnumType, label.Code, label.Lang), data, 0)
	pipe.SAdd(ctx, indexKey(label.EnumType, label.Lang), label.Code)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store label")
	}

	return &UpsertOutput{Label: label}, nil
}

func (r *redisRepository) mget(ctx context.Context, keys []string) ([]*dnd5e.EnumLabel, error) {
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get labels")
	}

	labels := make([]*dnd5e.EnumLabel, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var label dnd5e.EnumLabel
		if err := json.Unmarshal([]byte(raw), &label); err != nil {
			slog.WarnContext(ctx, "skipping unreadable label",
				"key", keys[i],
				"error", err.Error())
			continue
		}
		labels = append(labels, &label)
	}
	return labels, nil
}

func validateLabel(label *dnd5e.EnumLabel) error {
	if label == nil {
		return errors.InvalidArgument(errLabelNil)
	}
	vb := errors.NewValidationBuilder()
	if label.EnumType == "" {
		vb.RequiredField("enum_type")
	}
	if label.Code == "" {
		vb.RequiredField("code")
	}
	if label.Label == "" {
		vb.RequiredField("label")
	}
	if !label.Lang.IsSupported() {
		vb.InvalidField("lang", errLangInvalid)
	}
	return vb.Build()
}
