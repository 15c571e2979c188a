package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bilgisen/nexus/internal/config"
)

// RedisInterface is the producer side of a redis list used as a work queue.
type RedisInterface interface {
	Push(ctx context.Context, queue string, payload []byte) error
	Close() error
}

type RedisClient struct {
	client *redis.Client
	prefix string
}

func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		prefix: cfg.RedisPrefix,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// Push appends payload to the head of the list; consumers pop from the tail.
func (r *RedisClient) Push(ctx context.Context, queue string, payload []byte) error {
	if err := r.client.LPush(ctx, r.prefix+queue, payload).Err(); err != nil {
		return fmt.Errorf("redis lpush error: %w", err)
	}
	return nil
}
