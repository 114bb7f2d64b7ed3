package avatars

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/clock"
)

// dialect covers what differs between the SQL stores
type dialect struct {
	name string
	// numbered placeholders ($1, $2) instead of ?
	numbered bool
	isUnique func(error) bool
}

// sqlRepository stores avatars as JSON documents in an avatars table with
// id, seed, data, created_at and updated_at columns. Times are unix
// milliseconds.
type sqlRepository struct {
	db      *sql.DB
	dialect dialect
	clock   clock.Clock
}

func (r *sqlRepository) query(q string) string {
	if !r.dialect.numbered {
		return q
	}
	var b strings.Builder
	n := 0
	for _, c := range q {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Close releases the database handle
func (r *sqlRepository) Close() error {
	return r.db.Close()
}

func (r *sqlRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCreate(input.Avatar); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Avatar)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal avatar")
	}

	_, err = r.db.ExecContext(ctx,
		r.query("INSERT INTO avatars (id, seed, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"),
		input.Avatar.ID, input.Avatar.Seed, string(data),
		toMillis(input.Avatar.CreatedAt), toMillis(r.clock.Now()),
	)
	if err != nil {
		if r.dialect.isUnique(err) {
			return nil, errors.AlreadyExistsf("avatar with ID %s already exists", input.Avatar.ID)
		}
		return nil, errors.Wrapf(err, "failed to create avatar")
	}

	slog.DebugContext(ctx, "avatar stored", "store", r.dialect.name, "id", input.Avatar.ID, "seed", input.Avatar.Seed)
	return &CreateOutput{Avatar: input.Avatar.Clone()}, nil
}

func (r *sqlRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAvatarIDEmpty)
	}

	avatar, err := r.load(ctx, r.db, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Avatar: avatar}, nil
}

func (r *sqlRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateUpdate(input.Avatar); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin update")
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := r.load(ctx, tx, input.Avatar.ID)
	if err != nil {
		return nil, err
	}

	updated := input.Avatar.Clone()
	updated.CreatedAt = existing.CreatedAt

	data, err := json.Marshal(updated)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal avatar")
	}

	if _, err := tx.ExecContext(ctx,
		r.query("UPDATE avatars SET seed = ?, data = ?, updated_at = ? WHERE id = ?"),
		updated.Seed, string(data), toMillis(r.clock.Now()), updated.ID,
	); err != nil {
		return nil, errors.Wrapf(err, "failed to update avatar")
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit update")
	}

	slog.DebugContext(ctx, "avatar updated", "store", r.dialect.name, "id", updated.ID, "seed", updated.Seed)
	return &UpdateOutput{Avatar: updated}, nil
}

func (r *sqlRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAvatarIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, r.query("DELETE FROM avatars WHERE id = ?"), input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete avatar")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete avatar")
	}
	if n == 0 {
		return nil, errors.NotFoundf("avatar with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *sqlRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if err := validateList(input); err != nil {
		return nil, err
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM avatars").Scan(&total); err != nil {
		return nil, errors.Wrapf(err, "failed to count avatars")
	}

	rows, err := r.db.QueryContext(ctx,
		r.query("SELECT data FROM avatars ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"),
		input.Limit, input.Offset,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list avatars")
	}
	defer func() { _ = rows.Close() }()

	out := &ListOutput{Avatars: []*entities.Avatar{}, Total: total}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Wrapf(err, "failed to scan avatar")
		}
		avatar, err := decodeAvatar([]byte(data))
		if err != nil {
			return nil, err
		}
		out.Avatars = append(out.Avatars, avatar)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list avatars")
	}
	return out, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *sqlRepository) load(ctx context.Context, q queryer, id string) (*entities.Avatar, error) {
	var data string
	err := q.QueryRowContext(ctx, r.query("SELECT data FROM avatars WHERE id = ?"), id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("avatar with ID %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get avatar")
	}
	return decodeAvatar([]byte(data))
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}
