package spell

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	redisclient "github.com/vladmesh/dnd-helper-sub000/internal/redis"
)

const (
	spellKeyPrefix = "spell:"
	slugKeyPrefix  = "spell:slug:"
	indexKey       = "spell:index"

	// Error messages
	errSpellNil     = "spell cannot be nil"
	errSpellIDEmpty = "spell ID cannot be empty"
	errSlugEmpty    = "slug cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis spell repository.
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

// NewRedis creates a new Redis-backed spell repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	sp := input.Spell
	if sp == nil {
		return nil, errors.InvalidArgument(errSpellNil)
	}
	if sp.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	key := spellKeyPrefix + sp.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("spell with ID %s already exists", sp.ID)
	}
	if err := r.checkSlugFree(ctx, sp.Slug, sp.ID); err != nil {
		return nil, err
	}

	data, err := json.Marshal(sp)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal spell")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, indexKey, sp.ID)
	if sp.Slug != "" {
		pipe.Set(ctx, slugKeyPrefix+sp.Slug, sp.ID, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create spell")
	}

	return &CreateOutput{Spell: sp}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	result, err := r.client.Get(ctx, spellKeyPrefix+input.ID).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("spell with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get spell")
	}

	var sp dnd5e.Spell
	if err := json.Unmarshal([]byte(result), &sp); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal spell")
	}

	return &GetOutput{Spell: &sp}, nil
}

func (r *redisRepository) GetBySlug(ctx context.Context, input GetBySlugInput) (*GetBySlugOutput, error) {
	if input.Slug == "" {
		return nil, errors.InvalidArgument(errSlugEmpty)
	}

	id, err := r.client.Get(ctx, slugKeyPrefix+input.Slug).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("spell with slug %s not found", input.Slug)
		}
		return nil, errors.Wrapf(err, "failed to resolve slug")
	}

	out, err := r.Get(ctx, GetInput{ID: id})
	if err != nil {
		return nil, err
	}

	return &GetBySlugOutput{Spell: out.Spell}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	sp := input.Spell
	if sp == nil {
		return nil, errors.InvalidArgument(errSpellNil)
	}
	if sp.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: sp.ID})
	if err != nil {
		return nil, err
	}
	if err := r.checkSlugFree(ctx, sp.Slug, sp.ID); err != nil {
		return nil, err
	}

	data, err := json.Marshal(sp)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal spell")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, spellKeyPrefix+sp.ID, data, 0)
	if oldSlug := existing.Spell.Slug; oldSlug != sp.Slug {
		if oldSlug != "" {
			pipe.Del(ctx, slugKeyPrefix+oldSlug)
		}
		if sp.Slug != "" {
			pipe.Set(ctx, slugKeyPrefix+sp.Slug, sp.ID, 0)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update spell")
	}

	return &UpdateOutput{Spell: sp}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, spellKeyPrefix+input.ID)
	pipe.SRem(ctx, indexKey, input.ID)
	if existing.Spell.Slug != "" {
		pipe.Del(ctx, slugKeyPrefix+existing.Spell.Slug)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete spell")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list spell IDs")
	}
	if len(ids) == 0 {
		return &ListOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = spellKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spells")
	}

	spells := make([]*dnd5e.Spell, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "spell missing, cleaning up index",
				"spell_id", ids[i])
			r.client.SRem(ctx, indexKey, ids[i])
			continue
		}
		var sp dnd5e.Spell
		if err := json.Unmarshal([]byte(raw), &sp); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal spell %s", ids[i])
		}
		spells = append(spells, &sp)
	}

	sort.Slice(spells, func(i, j int) bool {
		if spells[i].Slug != spells[j].Slug {
			return spells[i].Slug < spells[j].Slug
		}
		return spells[i].ID < spells[j].ID
	})

	return &ListOutput{Spells: spells}, nil
}

// checkSlugFree fails when slug is already mapped to a spell other than id
func (r *redisRepository) checkSlugFree(ctx context.Context, slug, id string) error {
	if slug == "" {
		return nil
	}

	owner, err := r.client.Get(ctx, slugKeyPrefix+slug).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to check slug")
	}
	if owner != id {
		return errors.AlreadyExistsf("spell with slug %s already exists", slug)
	}
	return nil
}
