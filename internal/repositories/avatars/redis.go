package avatars

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
	redisclient "github.com/KirkDiggler/oripheon-api/internal/redis"
)

const (
	avatarKeyPrefix = "avatar:"
	// createdIndexKey scores avatar IDs by createdAt in unix milliseconds
	createdIndexKey = "avatar:index:created"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis avatar repository.
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

// NewRedis creates a new Redis-backed avatar repository. Each avatar is a
// JSON blob under avatar:{id}, indexed by a sorted set on createdAt.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCreate(input.Avatar); err != nil {
		return nil, err
	}

	key := avatarKeyPrefix + input.Avatar.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("avatar with ID %s already exists", input.Avatar.ID)
	}

	data, err := json.Marshal(input.Avatar)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal avatar")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, createdIndexKey, redis.Z{
		Score:  float64(input.Avatar.CreatedAt.UnixMilli()),
		Member: input.Avatar.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create avatar")
	}

	slog.DebugContext(ctx, "avatar stored", "store", "redis", "id", input.Avatar.ID, "seed", input.Avatar.Seed)
	return &CreateOutput{Avatar: input.Avatar.Clone()}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAvatarIDEmpty)
	}

	avatar, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Avatar: avatar}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateUpdate(input.Avatar); err != nil {
		return nil, err
	}

	existing, err := r.load(ctx, input.Avatar.ID)
	if err != nil {
		return nil, err
	}

	updated := input.Avatar.Clone()
	updated.CreatedAt = existing.CreatedAt

	data, err := json.Marshal(updated)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal avatar")
	}

	// XX keeps a concurrent delete from resurrecting the key
	if err := r.client.SetXX(ctx, avatarKeyPrefix+updated.ID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update avatar")
	}

	slog.DebugContext(ctx, "avatar updated", "store", "redis", "id", updated.ID, "seed", updated.Seed)
	return &UpdateOutput{Avatar: updated}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errAvatarIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, avatarKeyPrefix+input.ID)
	pipe.ZRem(ctx, createdIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete avatar")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("avatar with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if err := validateList(input); err != nil {
		return nil, err
	}

	total, err := r.client.ZCard(ctx, createdIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count avatars")
	}

	out := &ListOutput{Avatars: []*entities.Avatar{}, Total: int(total)}
	if int64(input.Offset) >= total {
		return out, nil
	}

	// Equal scores come back in reverse lexical member order, so ties are
	// already ID descending.
	start := int64(input.Offset)
	ids, err := r.client.ZRevRange(ctx, createdIndexKey, start, start+int64(input.Limit)-1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read avatar index")
	}
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = avatarKeyPrefix + id
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get avatars")
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// index entry without a blob; skip rather than fail the page
			slog.WarnContext(ctx, "avatar index entry has no data", "id", ids[i])
			continue
		}
		avatar, err := decodeAvatar([]byte(raw))
		if err != nil {
			return nil, err
		}
		out.Avatars = append(out.Avatars, avatar)
	}
	return out, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*entities.Avatar, error) {
	result, err := r.client.Get(ctx, avatarKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("avatar with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get avatar")
	}
	return decodeAvatar([]byte(result))
}

func decodeAvatar(data []byte) (*entities.Avatar, error) {
	var avatar entities.Avatar
	if err := json.Unmarshal(data, &avatar); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal avatar")
	}
	return &avatar, nil
}
