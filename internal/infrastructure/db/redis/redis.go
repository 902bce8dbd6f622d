// Package redis holds the Redis-backed pieces of the jobdeck API. Redis is
// optional at runtime: it backs the login-attempt limiter and is probed by
// the readiness endpoint, nothing else depends on it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pingTimeout bounds the connectivity check at startup.
const pingTimeout = 5 * time.Second

// Config carries the connection settings for the limiter store.
type Config struct {
	Addr string
	DB   int
}

// Connect opens a client against the configured instance and verifies it
// with a ping before handing it out.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
