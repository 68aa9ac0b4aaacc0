package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/vladmesh/dnd-helper-sub000/internal/config"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/orchestrators/catalog"
	"github.com/vladmesh/dnd-helper-sub000/internal/pkg/idgen"
	redisclient "github.com/vladmesh/dnd-helper-sub000/internal/redis"
	enumlabel "github.com/vladmesh/dnd-helper-sub000/internal/repositories/enum_label"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/monster"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/spell"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/translation"
	"github.com/vladmesh/dnd-helper-sub000/internal/sqlite"
)

const redisPingTimeout = 5 * time.Second

// deps is everything the catalog commands share
type deps struct {
	cfg         *config.Config
	catalog     catalog.Service
	monsterRepo monster.Repository
	spellRepo   spell.Repository

	closers []func() error
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			slog.Warn("failed to close dependency", "error", err.Error())
		}
	}
}

// newLogger builds the process logger from the configured format and level
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == config.LogFormatText {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// loadDeps reads configuration and wires the storage and catalog layers.
// Callers must Close the result.
func loadDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	slog.SetDefault(newLogger(cfg))

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		PoolSize:        cfg.RedisPoolSize,
		MinIdleConns:    cfg.RedisMinIdleConns,
		ConnMaxIdleTime: cfg.RedisIdleTimeout,
		MaxRetries:      3,
		UseTLS:          cfg.RedisTLS,
	})
	if err != nil {
		return nil, errors.InvalidArgumentf("failed to create redis client: %v", err)
	}

	d := &deps{cfg: cfg}
	d.closers = append(d.closers, client.Close)

	if err := redisclient.Ping(ctx, client, redisPingTimeout); err != nil {
		d.Close()
		return nil, errors.Unavailablef("redis at %s: %v", cfg.RedisAddr, err)
	}

	d.monsterRepo, err = monster.NewRedis(&monster.RedisConfig{Client: client})
	if err != nil {
		d.Close()
		return nil, err
	}

	d.spellRepo, err = spell.NewRedis(&spell.RedisConfig{Client: client})
	if err != nil {
		d.Close()
		return nil, err
	}

	translationRepo, enumLabelRepo, err := d.localizationRepos(ctx, client)
	if err != nil {
		d.Close()
		return nil, err
	}

	d.catalog, err = catalog.NewOrchestrator(&catalog.Config{
		MonsterRepo:     d.monsterRepo,
		SpellRepo:       d.spellRepo,
		TranslationRepo: translationRepo,
		EnumLabelRepo:   enumLabelRepo,
		IDGenerator:     idgen.NewUUID(""),
	})
	if err != nil {
		d.Close()
		return nil, err
	}

	slog.InfoContext(ctx, "catalog dependencies ready",
		"redis", cfg.RedisAddr,
		"localization_store", cfg.LocalizationStore)

	return d, nil
}

func (d *deps) localizationRepos(
	ctx context.Context,
	client redisclient.Client,
) (translation.Repository, enumlabel.Repository, error) {
	if d.cfg.LocalizationStore != config.StoreSQLite {
		translationRepo, err := translation.NewRedis(&translation.RedisConfig{Client: client})
		if err != nil {
			return nil, nil, err
		}
		enumLabelRepo, err := enumlabel.NewRedis(&enumlabel.RedisConfig{Client: client})
		if err != nil {
			return nil, nil, err
		}
		return translationRepo, enumLabelRepo, nil
	}

	db, err := openSQLite(ctx, d.cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	d.closers = append(d.closers, db.Close)

	translationRepo, err := translation.NewSQLite(&translation.SQLiteConfig{DB: db})
	if err != nil {
		return nil, nil, err
	}
	enumLabelRepo, err := enumlabel.NewSQLite(&enumlabel.SQLiteConfig{DB: db})
	if err != nil {
		return nil, nil, err
	}
	return translationRepo, enumLabelRepo, nil
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.Unavailablef("sqlite: %v", err)
	}
	if err := sqlite.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, errors.Internalf("sqlite schema: %v", err)
	}
	return db, nil
}
