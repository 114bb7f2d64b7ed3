package avatars

import (
	"context"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/oripheon-api/internal/errors"
	redisclient "github.com/KirkDiggler/oripheon-api/internal/redis"
)

// RepairReport describes how the redis created index differs from the
// stored avatar blobs.
type RepairReport struct {
	Scanned int
	// Unindexed avatars have a blob but no index entry
	Unindexed []string
	// Dangling index entries have no blob
	Dangling []string
	// Corrupt keys hold data that does not decode as an avatar
	Corrupt []string
}

// Clean reports whether nothing needs repair
func (r *RepairReport) Clean() bool {
	return len(r.Unindexed) == 0 && len(r.Dangling) == 0 && len(r.Corrupt) == 0
}

// InspectRedisIndex scans every avatar blob and compares it against the
// created index. Nothing is written.
func InspectRedisIndex(ctx context.Context, client redisclient.Client) (*RepairReport, error) {
	report := &RepairReport{}

	indexed, err := client.ZRange(ctx, createdIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read created index")
	}
	inIndex := make(map[string]bool, len(indexed))
	for _, id := range indexed {
		inIndex[id] = true
	}

	seen := make(map[string]bool, len(indexed))
	iter := client.Scan(ctx, 0, avatarKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == createdIndexKey {
			continue
		}
		id := strings.TrimPrefix(key, avatarKeyPrefix)
		report.Scanned++
		seen[id] = true

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		avatar, err := decodeAvatar(data)
		if err != nil || avatar.ID != id {
			report.Corrupt = append(report.Corrupt, key)
			continue
		}
		if !inIndex[id] {
			report.Unindexed = append(report.Unindexed, id)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan avatar keys")
	}

	for _, id := range indexed {
		if !seen[id] {
			report.Dangling = append(report.Dangling, id)
		}
	}

	return report, nil
}

// RepairRedisIndex applies a report: unindexed avatars are added to the
// index, dangling entries removed and corrupt blobs deleted.
func RepairRedisIndex(ctx context.Context, client redisclient.Client, report *RepairReport) error {
	if report == nil || report.Clean() {
		return nil
	}

	members := make([]redis.Z, 0, len(report.Unindexed))
	for _, id := range report.Unindexed {
		data, err := client.Get(ctx, avatarKeyPrefix+id).Bytes()
		if err != nil {
			return errors.Wrapf(err, "failed to reload avatar %s", id)
		}
		avatar, err := decodeAvatar(data)
		if err != nil {
			return err
		}
		members = append(members, redis.Z{Score: float64(avatar.CreatedAt.UnixMilli()), Member: id})
	}

	pipe := client.TxPipeline()
	if len(members) > 0 {
		pipe.ZAdd(ctx, createdIndexKey, members...)
	}
	for _, id := range report.Dangling {
		pipe.ZRem(ctx, createdIndexKey, id)
	}
	for _, key := range report.Corrupt {
		pipe.Del(ctx, key)
		pipe.ZRem(ctx, createdIndexKey, strings.TrimPrefix(key, avatarKeyPrefix))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to repair created index")
	}
	return nil
}
