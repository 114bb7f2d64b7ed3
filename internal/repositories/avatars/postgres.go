package avatars

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/lib/pq"

	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/clock"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS avatars (
    id TEXT PRIMARY KEY,
    seed BIGINT NOT NULL,
    data TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS avatars_created_idx ON avatars (created_at DESC, id DESC);
`

// PostgresConfig contains configuration for the Postgres avatar repository.
type PostgresConfig struct {
	DSN   string
	Clock clock.Clock
}

// Validate validates the PostgresConfig.
func (cfg *PostgresConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.DSN) == "" {
		return errors.InvalidArgument("postgres dsn cannot be empty")
	}
	return nil
}

// NewPostgres connects, ensures the avatars table exists and returns the
// store. The caller must Close it.
func NewPostgres(ctx context.Context, cfg *PostgresConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Unavailable("failed to ping postgres db").WithCause(err)
	}
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ensure postgres schema")
	}

	return &sqlRepository{
		db:    db,
		clock: c,
		dialect: dialect{
			name:     "postgres",
			numbered: true,
			isUnique: isPostgresUnique,
		},
	}, nil
}

func isPostgresUnique(err error) bool {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
