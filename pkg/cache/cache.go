// Package cache provides a unified content cache abstraction
// with implementations for Memory, LevelDB, and Redis.
//
// Cached entries are raw SVG file contents keyed by resolved file path.
// Content for a given path is treated as immutable for the process
// lifetime, so entries never expire and are never evicted.
package cache

import (
	"context"
	"errors"
)

// Store is a content cache interface. All implementations must be
// thread-safe for concurrent readers; concurrent first-writes to the same
// key may race but are idempotent because values are immutable per key.
type Store interface {
	// Get retrieves a cached value by key.
	// Returns ErrNotFound if the key has not been stored.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under key. Overwriting an existing key is allowed.
	Set(ctx context.Context, key string, value []byte) error

	// Close closes the store and releases resources.
	// After Close is called, all operations return ErrClosed.
	Close() error
}

// Common errors
var (
	// ErrNotFound is returned when a key is not present in the cache.
	ErrNotFound = errors.New("cache: key not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("cache: store is closed")
)

// Config represents the configuration for creating a cache store.
type Config struct {
	// Type specifies the store type: "memory", "leveldb", or "redis".
	// Empty defaults to "memory".
	Type string `yaml:"type" json:"type"`

	// Namespace provides logical isolation within a shared backend.
	// - Memory: unused
	// - LevelDB: appended to the storage directory name
	// - Redis: used as a key prefix
	Namespace string `yaml:"namespace" json:"namespace"`

	// LevelDB-specific config
	LevelDB LevelDBConfig `yaml:"leveldb" json:"leveldb"`

	// Redis-specific config
	Redis RedisConfig `yaml:"redis" json:"redis"`
}

// LevelDBConfig configures the LevelDB store.
type LevelDBConfig struct {
	// Path is the directory path for LevelDB storage.
	// If empty, a directory under the OS cache directory is used.
	Path string `yaml:"path" json:"path"`
}

// RedisConfig configures the Redis store.
type RedisConfig struct {
	// Addr is the Redis server address (host:port)
	Addr string `yaml:"addr" json:"addr"`

	// Password is the Redis password (optional)
	Password string `yaml:"password" json:"password"`

	// DB is the Redis database number (0-15)
	DB int `yaml:"db" json:"db"`

	// PoolSize is the maximum number of socket connections (0 = driver default)
	PoolSize int `yaml:"pool_size" json:"pool_size"`
}

// New creates a new cache store based on the provided config.
func New(cfg Config) (Store, error) {
	switch cfg.Type {
	case "memory", "":
		return NewMemoryStore(), nil
	case "leveldb":
		return NewLevelDBStore(cfg.Namespace, cfg.LevelDB)
	case "redis":
		return NewRedisStore(cfg.Namespace, cfg.Redis)
	default:
		return nil, errors.New("cache: unsupported store type: " + cfg.Type)
	}
}
