// Package config loads server configuration from the environment.
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

// StoreDriver selects the avatar store
type StoreDriver string

// Supported store drivers
const (
	StoreMemory   StoreDriver = "memory"
	StoreRedis    StoreDriver = "redis"
	StoreSQLite   StoreDriver = "sqlite"
	StorePostgres StoreDriver = "postgres"
)

// Config is the server configuration
type Config struct {
	GRPCPort         int           `env:"GRPC_PORT"          envDefault:"50051"`
	StoreDriver      StoreDriver   `env:"STORE_DRIVER"       envDefault:"sqlite"`
	SQLitePath       string        `env:"SQLITE_PATH"        envDefault:"data/oripheon.db"`
	RedisAddr        string        `env:"REDIS_ADDR"`
	PostgresDSN      string        `env:"POSTGRES_DSN"`
	LogLevel         string        `env:"LOG_LEVEL"          envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT"         envDefault:"text"`
	ListDefaultLimit int           `env:"LIST_DEFAULT_LIMIT" envDefault:"20"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT"   envDefault:"30s"`
}

// Load parses the environment into a Config. It does not validate, so
// flags can override fields first.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// LoadFrom parses an explicit environment map, for tests
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks ranges and driver-specific requirements
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 1, 65535, vb)

	switch c.StoreDriver {
	case StoreMemory:
	case StoreRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			vb.Field("REDIS_ADDR", "is required when STORE_DRIVER=redis")
		}
	case StoreSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			vb.Field("SQLITE_PATH", "is required when STORE_DRIVER=sqlite")
		}
	case StorePostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			vb.Field("POSTGRES_DSN", "is required when STORE_DRIVER=postgres")
		}
	default:
		vb.Fieldf("STORE_DRIVER", "unknown driver %q", c.StoreDriver)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.InvalidField("LOG_LEVEL", c.LogLevel)
	}
	errors.ValidateEnum("LOG_FORMAT", strings.ToLower(c.LogFormat), []string{"text", "json"}, vb)
	errors.ValidateRange("LIST_DEFAULT_LIMIT", c.ListDefaultLimit, 1, 100, vb)
	if c.ShutdownTimeout <= 0 {
		vb.Field("SHUTDOWN_TIMEOUT", "must be positive")
	}

	return vb.Build()
}

// ParseLevel maps debug|info|warn|error to a slog level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
