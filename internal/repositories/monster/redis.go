package monster

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
	monsterKeyPrefix = "monster:"
	slugKeyPrefix    = "monster:slug:"
	indexKey         = "monster:index"

	// Error messages
	errMonsterNil     = "monster cannot be nil"
	errMonsterIDEmpty = "monster ID cannot be empty"
	errSlugEmpty      = "slug cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis monster repository.
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

// NewRedis creates a new Redis-backed monster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	m := input.Monster
	if m == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if m.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	key := monsterKeyPrefix + m.ID
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("monster with ID %s already exists", m.ID)
	}
	if err := r.checkSlugFree(ctx, m.Slug, m.ID); err != nil {
		return nil, err
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, indexKey, m.ID)
	if m.Slug != "" {
		pipe.Set(ctx, slugKeyPrefix+m.Slug, m.ID, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create monster")
	}

	return &CreateOutput{Monster: m}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	result, err := r.client.Get(ctx, monsterKeyPrefix+input.ID).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("monster with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	var m dnd5e.Monster
	if err := json.Unmarshal([]byte(result), &m); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal monster")
	}

	return &GetOutput{Monster: &m}, nil
}

func (r *redisRepository) GetBySlug(ctx context.Context, input GetBySlugInput) (*GetBySlugOutput, error) {
	if input.Slug == "" {
		return nil, errors.InvalidArgument(errSlugEmpty)
	}

	id, err := r.client.Get(ctx, slugKeyPrefix+input.Slug).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("monster with slug %s not found", input.Slug)
		}
		return nil, errors.Wrapf(err, "failed to resolve slug")
	}

	out, err := r.Get(ctx, GetInput{ID: id})
	if err != nil {
		return nil, err
	}

	return &GetBySlugOutput{Monster: out.Monster}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	m := input.Monster
	if m == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if m.ID == "" {
		return nil, errors.InvalidArgument(errMonsterIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: m.ID})
	if err != nil {
		return nil, err
	}
	if err := r.checkSlugFree(ctx, m.Slug, m.ID); err != nil {
		return nil, err
	}

	data, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, monsterKeyPrefix+m.ID, data, 0)
	if oldSlug := existing.Monster.Slug; oldSlug != m.Slug {
		if oldSlug != "" {
			pipe.Del(ctx, slugKeyPrefix+oldSlug)
		}
		if m.Slug != "" {
			pipe.Set(ctx, slugKeyPrefix+m.Slug, m.ID, 0)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update monster")
	}

	return &UpdateOutput{Monster: m}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, monsterKeyPrefix+input.ID)
	pipe.SRem(ctx, indexKey, input.ID)
	if existing.Monster.Slug != "" {
		pipe.Del(ctx, slugKeyPrefix+existing.Monster.Slug)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list monster IDs")
	}
	if len(ids) == 0 {
		return &ListOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = monsterKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monsters")
	}

	monsters := make([]*dnd5e.Monster, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "monster missing, cleaning up index",
				"monster_id", ids[i])
			r.client.SRem(ctx, indexKey, ids[i])
			continue
		}
		var m dnd5e.Monster
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal monster %s", ids[i])
		}
		monsters = append(monsters, &m)
	}

	sort.Slice(monsters, func(i, j int) bool {
		if monsters[i].Slug != monsters[j].Slug {
			return monsters[i].Slug < monsters[j].Slug
		}
		return monsters[i].ID < monsters[j].ID
	})

	return &ListOutput{Monsters: monsters}, nil
}

// checkSlugFree fails when slug is already mapped to a monster other than id
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
		return errors.AlreadyExistsf("monster with slug %s already exists", slug)
	}
	return nil
}
