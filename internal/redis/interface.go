package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories rely on. It embeds
// redis.UniversalClient so single node and cluster clients both satisfy it.
type Client interface {
	redis.UniversalClient
}
