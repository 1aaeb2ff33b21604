package svg

import (
	"context"
	"errors"

	"github.com/ideamans/svgkit/pkg/cache"
	"github.com/ideamans/svgkit/pkg/logging"
)

// ContentCache is a read-through cache of icon file contents keyed by
// resolved file path. A degraded cache backend never fails an icon lookup;
// the cache falls back to direct disk reads and logs a warning.
type ContentCache struct {
	store  cache.Store
	files  FileStore
	logger logging.Logger
}

// NewContentCache creates a content cache over the given store and file
// store.
func NewContentCache(store cache.Store, files FileStore, logger logging.Logger) *ContentCache {
	return &ContentCache{
		store:  store,
		files:  files,
		logger: logger.WithModule("cache"),
	}
}

// GetOrLoad returns the content for path. The first call for a given path
// reads the file and stores the result; subsequent calls are served from
// the store without touching the file system.
func (c *ContentCache) GetOrLoad(ctx context.Context, path string) (string, error) {
	cached, err := c.store.Get(ctx, path)
	if err == nil {
		return string(cached), nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		c.logger.Warn("cache read failed, falling back to disk", "path", path, "error", err)
	}

	data, err := c.files.Read(path)
	if err != nil {
		return "", err
	}

	c.logger.Debug("loaded icon content", "path", path, "bytes", len(data))
	if err := c.store.Set(ctx, path, data); err != nil {
		c.logger.Warn("cache write failed", "path", path, "error", err)
	}
	return string(data), nil
}
