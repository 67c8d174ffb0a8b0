// Package redis keeps sessions in Redis so several API instances share one
// session set (SESSION_BACKEND=redis).
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config selects the Redis server and logical database holding sessions.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect opens the client behind SessionStore and pings it, so a wrong
// REDIS_ADDR fails at startup instead of on the first login.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("session redis %s: %w", cfg.Addr, err)
	}

	return client, nil
}
