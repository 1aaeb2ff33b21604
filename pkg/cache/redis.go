package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-based implementation of Store.
// It allows multiple application instances to share one content cache.
// Namespace isolation is implemented using key prefixes (namespace:key format).
type RedisStore struct {
	prefix string // stored as "namespace:" prefix for Redis keys
	client *redis.Client
	closed bool
	mu     sync.RWMutex
}

// NewRedisStore creates a new Redis cache store for the given namespace.
func NewRedisStore(namespace string, cfg RedisConfig) (*RedisStore, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	client := redis.NewClient(opts)

	// Test connection with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache/redis: failed to connect to %s: %w", cfg.Addr, err)
	}

	prefix := ""
	if namespace != "" {
		prefix = namespace + ":"
	}

	return &RedisStore{
		prefix: prefix,
		client: client,
	}, nil
}

// prefixedKey returns the key with the namespace prefix prepended.
func (r *RedisStore) prefixedKey(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + key
}

// Get retrieves a cached value by key.
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return nil, ErrClosed
	}
	r.mu.RUnlock()

	result, err := r.client.Get(ctx, r.prefixedKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("cache/redis: get failed: %w", err)
	}

	return result, nil
}

// Set stores a value under key, without expiry.
func (r *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	r.mu.RLock()
	if r.closed {
		r.mu.RUnlock()
		return ErrClosed
	}
	r.mu.RUnlock()

	if err := r.client.Set(ctx, r.prefixedKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("cache/redis: set failed: %w", err)
	}
	return nil
}

// Close closes the Redis client.
func (r *RedisStore) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.closed = true
	return r.client.Close()
}
