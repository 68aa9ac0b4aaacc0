// Package config loads the catalog server configuration from CATALOG_*
// environment variables.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
)

// Localization store backends
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config is the server configuration
type Config struct {
	GRPCPort int `env:"CATALOG_GRPC_PORT" envDefault:"50051"`

	RedisAddr         string        `env:"CATALOG_REDIS_ADDR"           envDefault:"localhost:6379"`
	RedisPoolSize     int           `env:"CATALOG_REDIS_POOL_SIZE"      envDefault:"10"`
	RedisMinIdleConns int           `env:"CATALOG_REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	RedisIdleTimeout  time.Duration `env:"CATALOG_REDIS_IDLE_TIMEOUT"   envDefault:"5m"`
	RedisTLS          bool          `env:"CATALOG_REDIS_TLS"`

	// LocalizationStore picks where translations and enum labels live.
	// Entities always live in Redis.
	LocalizationStore string `env:"CATALOG_LOCALIZATION_STORE" envDefault:"redis"`
	SQLitePath        string `env:"CATALOG_SQLITE_PATH"        envDefault:"catalog.db"`

	LogFormat string `env:"CATALOG_LOG_FORMAT" envDefault:"json"`
	LogLevel  string `env:"CATALOG_LOG_LEVEL"  envDefault:"info"`

	DND5eAPIBaseURL string        `env:"CATALOG_DND5E_API_URL"`
	DND5eAPITimeout time.Duration `env:"CATALOG_DND5E_API_TIMEOUT" envDefault:"30s"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.InvalidArgumentf("parse env: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that env tags cannot
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.InvalidField("CATALOG_GRPC_PORT", "must be between 1 and 65535")
	}
	if c.RedisAddr == "" {
		vb.RequiredField("CATALOG_REDIS_ADDR")
	}
	if c.RedisPoolSize < 0 {
		vb.InvalidField("CATALOG_REDIS_POOL_SIZE", "must not be negative")
	}

	switch c.LocalizationStore {
	case StoreRedis:
	case StoreSQLite:
		if c.SQLitePath == "" {
			vb.RequiredField("CATALOG_SQLITE_PATH")
		}
	default:
		vb.InvalidField("CATALOG_LOCALIZATION_STORE", "must be redis or sqlite")
	}

	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatText {
		vb.InvalidField("CATALOG_LOG_FORMAT", "must be json or text")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.InvalidField("CATALOG_LOG_LEVEL", "must be debug, info, warn or error")
	}

	return vb.Build()
}

// SlogLevel returns the configured log level, info when unrecognized
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
