package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/pkg/clock"
	redisclient "github.com/vladmesh/dnd-helper-sub000/internal/redis"
)

const (
	translationKeyPrefix = "translation:"

	// Error messages
	errTranslationNil  = "translation cannot be nil"
	errEntityTypeEmpty = "entity type cannot be empty"
	errEntityIDEmpty   = "entity ID cannot be empty"
	errLangInvalid     = "language must be one of ru, en"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis translation repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed translation repository.
// Each translation is one JSON value under translation:<type>:<id>:<lang>.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// Key returns the Redis key of one translation
func Key(entityType, entityID string, lang dnd5e.Lang) string {
	return fmt.Sprintf("%s%s:%s:%s", translationKeyPrefix, entityType, entityID, lang)
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityType, input.EntityID, input.Lang); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, Key(input.EntityType, input.EntityID, input.Lang)).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("%s %s has no %s translation",
				input.EntityType, input.EntityID, input.Lang)
		}
		return nil, errors.Wrapf(err, "failed to get translation")
	}

	var t dnd5e.Translation
	if err := json.Unmarshal([]byte(result), &t); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal translation")
	}

	return &GetOutput{Translation: &t}, nil
}

func (r *redisRepository) ListByEntityIDs(
	ctx context.Context,
	input ListByEntityIDsInput,
) (*ListByEntityIDsOutput, error) {
	if input.EntityType == "" {
		return nil, errors.InvalidArgument(errEntityTypeEmpty)
	}
	if !input.Lang.IsSupported() {
		return nil, errors.InvalidArgument(errLangInvalid)
	}

	keys := make([]string, 0, len(input.EntityIDs))
	for _, id := range input.EntityIDs {
		if id == "" {
			continue
		}
		keys = append(keys, Key(input.EntityType, id, input.Lang))
	}
	if len(keys) == 0 {
		return &ListByEntityIDsOutput{}, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get translations")
	}

	translations := make([]*dnd5e.Translation, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var t dnd5e.Translation
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			slog.WarnContext(ctx, "skipping unreadable translation",
				"key", keys[i],
				"error", err.Error())
			continue
		}
		translations = append(translations, &t)
	}

	return &ListByEntityIDsOutput{Translations: translations}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	t := input.Translation
	if t == nil {
		return nil, errors.InvalidArgument(errTranslationNil)
	}
	if err := validateKey(t.EntityType, t.EntityID, t.Lang); err != nil {
		return nil, err
	}

	stored := *t
	stored.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal translation")
	}

	if err := r.client.Set(ctx, Key(t.EntityType, t.EntityID, t.Lang), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store translation")
	}

	return &UpsertOutput{Translation: &stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.EntityType == "" {
		return nil, errors.InvalidArgument(errEntityTypeEmpty)
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	deleted, err := r.client.Del(ctx,
		Key(input.EntityType, input.EntityID, dnd5e.PrimaryLang),
		Key(input.EntityType, input.EntityID, dnd5e.SecondaryLang),
	).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete translations")
	}

	return &DeleteOutput{Deleted: deleted}, nil
}

func validateKey(entityType, entityID string, lang dnd5e.Lang) error {
	if entityType == "" {
		return errors.InvalidArgument(errEntityTypeEmpty)
	}
	if entityID == "" {
		return errors.InvalidArgument(errEntityIDEmpty)
	}
	if !lang.IsSupported() {
		return errors.InvalidArgument(errLangInvalid)
	}
	return nil
}
