package config_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/oripheon-api/internal/config"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.LoadFrom(map[string]string{})
	s.Require().NoError(err)

	s.Equal(50051, cfg.GRPCPort)
	s.Equal(config.StoreSQLite, cfg.StoreDriver)
	s.Equal("data/oripheon.db", cfg.SQLitePath)
	s.Equal(20, cfg.ListDefaultLimit)
	s.Equal(30*time.Second, cfg.ShutdownTimeout)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestOverrides() {
	cfg, err := config.LoadFrom(map[string]string{
		"GRPC_PORT":        "6000",
		"STORE_DRIVER":     "redis",
		"REDIS_ADDR":       "localhost:6379",
		"LOG_LEVEL":        "debug",
		"LOG_FORMAT":       "json",
		"SHUTDOWN_TIMEOUT": "5s",
	})
	s.Require().NoError(err)
	s.Require().NoError(cfg.Validate())

	s.Equal(6000, cfg.GRPCPort)
	s.Equal(config.StoreRedis, cfg.StoreDriver)
	s.Equal(5*time.Second, cfg.ShutdownTimeout)
}

func (s *ConfigTestSuite) TestParseFailure() {
	_, err := config.LoadFrom(map[string]string{"GRPC_PORT": "many"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{name: "redis without addr", env: map[string]string{"STORE_DRIVER": "redis"}, field: "REDIS_ADDR"},
		{name: "postgres without dsn", env: map[string]string{"STORE_DRIVER": "postgres"}, field: "POSTGRES_DSN"},
		{name: "unknown driver", env: map[string]string{"STORE_DRIVER": "mongo"}, field: "STORE_DRIVER"},
		{name: "bad port", env: map[string]string{"GRPC_PORT": "70000"}, field: "GRPC_PORT"},
		{name: "bad level", env: map[string]string{"LOG_LEVEL": "loud"}, field: "LOG_LEVEL"},
		{name: "bad format", env: map[string]string{"LOG_FORMAT": "xml"}, field: "LOG_FORMAT"},
		{name: "limit too high", env: map[string]string{"LIST_DEFAULT_LIMIT": "500"}, field: "LIST_DEFAULT_LIMIT"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg, err := config.LoadFrom(tc.env)
			s.Require().NoError(err)

			err = cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestNewLogger() {
	var buf bytes.Buffer
	cfg := &config.Config{LogLevel: "warn", LogFormat: "json"}
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "id", "avatar-1")
	s.NotContains(buf.String(), "hidden")
	s.Contains(buf.String(), `"id":"avatar-1"`)

	level, err := config.ParseLevel("ERROR")
	s.Require().NoError(err)
	s.Equal(slog.LevelError, level)
}
