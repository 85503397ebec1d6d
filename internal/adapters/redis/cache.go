// Package redis provides a PageCache backed by Redis, for deployments
// where several shell instances share one rendered-page cache.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/arvhem/foyer/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Cache implements ports.PageCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached pages.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached pages.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "foyer:page:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

var _ ports.PageCache = (*Cache)(nil)

func (c *Cache) key(path string) string {
	return c.prefix + path
}

func (c *Cache) indexKey() string {
	return c.prefix + "index"
}

// Get retrieves the rendered HTML for a path.
func (c *Cache) Get(ctx context.Context, path string) (string, error) {
	val, err := c.client.Get(ctx, c.key(path)).Result()
	if err != nil {
		if err == backend.Nil {
			return "", ports.ErrNotCached
		}
		return "", fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, nil
}

// Set stores the rendered HTML for a path, tracking it in the index so
// Clear can remove every entry without a keyspace scan.
func (c *Cache) Set(ctx context.Context, path string, html string) error {
	pipe := c.client.Pipeline()
	pipe.Set(ctx, c.key(path), html, c.ttl)
	pipe.SAdd(ctx, c.indexKey(), path)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Invalidate removes the entry for a path.
func (c *Cache) Invalidate(ctx context.Context, path string) error {
	pipe := c.client.Pipeline()
	pipe.Del(ctx, c.key(path))
	pipe.SRem(ctx, c.indexKey(), path)
	_, err := pipe.Exec(ctx)
	return err
}

// Clear removes all cached pages.
func (c *Cache) Clear(ctx context.Context) error {
	paths, err := c.client.SMembers(ctx, c.indexKey()).Result()
	if err != nil {
		return fmt.Errorf("failed to list cached pages: %w", err)
	}

	pipe := c.client.Pipeline()
	for _, path := range paths {
		pipe.Del(ctx, c.key(path))
	}
	pipe.Del(ctx, c.indexKey())
	_, err = pipe.Exec(ctx)
	return err
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
