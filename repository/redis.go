package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects and pings the server so misconfiguration fails at
// startup rather than on the first request.
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return client, nil
}

// RedisHealth probes a redis client for readiness checks.
type RedisHealth struct {
	Client *redis.Client
}

func (h RedisHealth) Probe(ctx context.Context) error {
	if h.Client == nil {
		return nil
	}
	return h.Client.Ping(ctx).Err()
}
