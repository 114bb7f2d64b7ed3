package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so stores can take either a single
// node or a cluster client.
type Client interface {
	redis.UniversalClient
}
