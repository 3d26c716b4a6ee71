package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPingTimeout bounds the startup connectivity check when the caller
// passes no timeout.
const DefaultPingTimeout = 5 * time.Second

// OpenRedis connects and fails fast when the server does not answer a ping
// within pingTimeout.
func OpenRedis(addr string, db int, pingTimeout time.Duration) (*redis.Client, error) {
	if pingTimeout <= 0 {
		pingTimeout = DefaultPingTimeout
	}
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}
