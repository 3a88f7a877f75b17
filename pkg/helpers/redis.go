package helpers

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the client backing the rate-limit middleware. The
// limiter runs its Lua script against this connection directly, so no
// typed accessors are layered on top.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
