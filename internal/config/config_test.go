package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladmesh/dnd-helper-sub000/internal/config"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 5*time.Minute, cfg.RedisIdleTimeout)
	assert.Equal(t, config.StoreRedis, cfg.LocalizationStore)
	assert.Equal(t, config.LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Equal(t, 30*time.Second, cfg.DND5eAPITimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CATALOG_GRPC_PORT", "6000")
	t.Setenv("CATALOG_REDIS_ADDR", "redis:6380")
	t.Setenv("CATALOG_LOCALIZATION_STORE", "sqlite")
	t.Setenv("CATALOG_SQLITE_PATH", "/data/catalog.db")
	t.Setenv("CATALOG_LOG_FORMAT", "text")
	t.Setenv("CATALOG_LOG_LEVEL", "DEBUG")
	t.Setenv("CATALOG_REDIS_TLS", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, config.StoreSQLite, cfg.LocalizationStore)
	assert.Equal(t, "/data/catalog.db", cfg.SQLitePath)
	assert.True(t, cfg.RedisTLS)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("CATALOG_GRPC_PORT", "not-a-port")

	_, err := config.Load()
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			GRPCPort:          50051,
			RedisAddr:         "localhost:6379",
			LocalizationStore: config.StoreRedis,
			LogFormat:         config.LogFormatJSON,
			LogLevel:          "info",
		}
	}

	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "port out of range", mutate: func(c *config.Config) { c.GRPCPort = 70000 }, field: "CATALOG_GRPC_PORT"},
		{name: "missing redis", mutate: func(c *config.Config) { c.RedisAddr = "" }, field: "CATALOG_REDIS_ADDR"},
		{name: "unknown store", mutate: func(c *config.Config) { c.LocalizationStore = "postgres" }, field: "CATALOG_LOCALIZATION_STORE"},
		{
			name: "sqlite without path",
			mutate: func(c *config.Config) {
				c.LocalizationStore = config.StoreSQLite
				c.SQLitePath = ""
			},
			field: "CATALOG_SQLITE_PATH",
		},
		{name: "bad log format", mutate: func(c *config.Config) { c.LogFormat = "xml" }, field: "CATALOG_LOG_FORMAT"},
		{name: "bad log level", mutate: func(c *config.Config) { c.LogLevel = "verbose" }, field: "CATALOG_LOG_LEVEL"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}
