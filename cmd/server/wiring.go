package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/config"
	"github.com/KirkDiggler/oripheon-api/internal/engine"
	"github.com/KirkDiggler/oripheon-api/internal/engine/banks"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/orchestrators/avatar"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/clock"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/random"
	redisclient "github.com/KirkDiggler/oripheon-api/internal/redis"
	"github.com/KirkDiggler/oripheon-api/internal/repositories/avatars"
)

// openLocal runs the avatar commands in-process against the configured store
func openLocal(ctx context.Context) (avatar.Service, func(), error) {
	return newService(ctx, cfg)
}

// newService builds the avatar service for the configured store. The
// returned cleanup releases the store.
func newService(ctx context.Context, c *config.Config) (avatar.Service, func(), error) {
	repo, cleanup, err := newStore(ctx, c)
	if err != nil {
		return nil, nil, err
	}

	eng, err := engine.New(&engine.Config{
		Names: banks.NewInMemory(),
		Seeds: random.New(),
	})
	if err != nil {
		cleanup()
		return nil, nil, errors.Wrap(err, "failed to create engine")
	}

	svc, err := avatar.NewOrchestrator(&avatar.Config{
		Engine:           eng,
		Repository:       repo,
		IDGenerator:      idgen.NewUUID(""),
		Clock:            clock.New(),
		ListDefaultLimit: c.ListDefaultLimit,
	})
	if err != nil {
		cleanup()
		return nil, nil, errors.Wrap(err, "failed to create avatar orchestrator")
	}

	return svc, cleanup, nil
}

func newStore(ctx context.Context, c *config.Config) (avatars.Repository, func(), error) {
	slog.DebugContext(ctx, "opening avatar store", "driver", c.StoreDriver)

	switch c.StoreDriver {
	case config.StoreMemory:
		return avatars.NewMemory(), func() {}, nil

	case config.StoreRedis:
		client, err := newRedisClient(c.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		closeClient := func() { _ = client.Close() }
		if err := redisclient.Ping(ctx, client); err != nil {
			closeClient()
			return nil, nil, err
		}
		repo, err := avatars.NewRedis(&avatars.RedisConfig{Client: client})
		if err != nil {
			closeClient()
			return nil, nil, err
		}
		return repo, closeClient, nil

	case config.StoreSQLite:
		store, err := avatars.NewSQLite(ctx, &avatars.SQLiteConfig{Path: c.SQLitePath})
		if err != nil {
			return nil, nil, err
		}
		return store, closer(store), nil

	case config.StorePostgres:
		store, err := avatars.NewPostgres(ctx, &avatars.PostgresConfig{DSN: c.PostgresDSN})
		if err != nil {
			return nil, nil, err
		}
		return store, closer(store), nil
	}

	return nil, nil, errors.InvalidArgumentf("unknown store driver %q", c.StoreDriver)
}

// newRedisClient treats a comma separated address list as a cluster
func newRedisClient(addr string) (redisclient.Client, error) {
	endpoints := strings.Split(addr, ",")
	if len(endpoints) > 1 {
		for i := range endpoints {
			endpoints[i] = strings.TrimSpace(endpoints[i])
		}
		return redisclient.NewClusterClient(endpoints, nil)
	}
	return redisclient.NewClient(strings.TrimSpace(addr), nil)
}

func closer(store avatars.Store) func() {
	return func() {
		if err := store.Close(); err != nil {
			slog.Warn("failed to close avatar store", "error", err)
		}
	}
}
