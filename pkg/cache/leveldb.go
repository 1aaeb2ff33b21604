package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	lderrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// LevelDBStore is a LevelDB-based implementation of Store.
// It keeps the content cache warm across process restarts.
type LevelDBStore struct {
	db     *leveldb.DB
	closed bool
	mu     sync.RWMutex
}

// NewLevelDBStore creates a new LevelDB cache store.
func NewLevelDBStore(namespace string, cfg LevelDBConfig) (*LevelDBStore, error) {
	dbPath := cfg.Path
	if dbPath == "" {
		// Use OS cache directory if no path specified
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			cacheDir = os.TempDir()
		}

		dirName := "svgkit"
		if namespace != "" {
			// Sanitize namespace for use in directory name
			sanitized := strings.Map(func(r rune) rune {
				if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
					return r
				}
				return '-'
			}, namespace)
			dirName = fmt.Sprintf("%s-%s", dirName, sanitized)
		}

		dbPath = filepath.Join(cacheDir, dirName)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("cache/leveldb: failed to create directory: %w", err)
	}

	opts := &opt.Options{
		Strict:      opt.DefaultStrict,
		Compression: opt.SnappyCompression,
	}

	db, err := leveldb.OpenFile(dbPath, opts)
	if err != nil {
		// Try to recover if database is corrupted
		if _, ok := err.(*lderrors.ErrCorrupted); ok {
			db, err = leveldb.RecoverFile(dbPath, nil)
		}
		if err != nil {
			return nil, fmt.Errorf("cache/leveldb: failed to open database at %s: %w", dbPath, err)
		}
	}

	return &LevelDBStore{db: db}, nil
}

// Get retrieves a cached value by key.
func (l *LevelDBStore) Get(ctx context.Context, key string) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return nil, ErrClosed
	}

	value, err := l.db.Get([]byte(key), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("cache/leveldb: get failed: %w", err)
	}
	return value, nil
}

// Set stores a value under key.
func (l *LevelDBStore) Set(ctx context.Context, key string, value []byte) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return ErrClosed
	}

	if err := l.db.Put([]byte(key), value, nil); err != nil {
		return fmt.Errorf("cache/leveldb: set failed: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (l *LevelDBStore) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	l.closed = true
	return l.db.Close()
}
