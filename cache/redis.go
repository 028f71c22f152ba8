package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rpupo63/portfolio-backend/models"
)

// RedisCache stores snapshots in Redis without expiry.
type RedisCache struct {
	client *redis.Client
	prefix string
	closed atomic.Bool
}

// RedisCacheOptions configures the Redis cache.
type RedisCacheOptions struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	// Prefix is prepended to all keys (e.g., "portfolio:")
	Prefix string

	// ConnectTimeout is the timeout for establishing a connection
	ConnectTimeout time.Duration
}

// NewRedisCache connects and pings the server.
func NewRedisCache(opts RedisCacheOptions) (*RedisCache, error) {
	if opts.URL == "" {
		return nil, errors.New("redis URL is required")
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, err
	}
	redisOpts.DialTimeout = opts.ConnectTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisCache{client: client, prefix: opts.Prefix}, nil
}

func (c *RedisCache) key(lang models.Language) string {
	return c.prefix + lang.CacheKey()
}

func (c *RedisCache) Read(ctx context.Context, lang models.Language) (*models.SnapshotPatch, error) {
	if c.closed.Load() {
		return nil, ErrCacheClosed
	}
	data, err := c.client.Get(ctx, c.key(lang)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return decode(data)
}

func (c *RedisCache) Write(ctx context.Context, lang models.Language, snapshot models.Snapshot) error {
	if c.closed.Load() {
		return ErrCacheClosed
	}
	data, err := encode(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(lang), data, 0).Err()
}

// Close releases the connection pool.
func (c *RedisCache) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	return c.client.Close()
}
