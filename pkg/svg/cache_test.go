package svg

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideamans/svgkit/pkg/cache"
	"github.com/ideamans/svgkit/pkg/logging"
)

// failingStore simulates a degraded cache backend.
type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("backend unavailable")
}

func (failingStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("backend unavailable")
}

func (failingStore) Close() error { return nil }

func TestContentCache_SingleRead(t *testing.T) {
	files := newFakeFileStore(map[string]string{
		"/icons/camera.svg": "<svg>camera</svg>",
	})
	cc := NewContentCache(cache.NewMemoryStore(), files, logging.NewTestLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		content, err := cc.GetOrLoad(ctx, "/icons/camera.svg")
		require.NoError(t, err)
		assert.Equal(t, "<svg>camera</svg>", content)
	}

	assert.Equal(t, 1, files.reads["/icons/camera.svg"], "file should be read exactly once")
}

func TestContentCache_DistinctPaths(t *testing.T) {
	files := newFakeFileStore(map[string]string{
		"/icons/a.svg": "<svg>a</svg>",
		"/icons/b.svg": "<svg>b</svg>",
	})
	cc := NewContentCache(cache.NewMemoryStore(), files, logging.NewTestLogger())
	ctx := context.Background()

	a, err := cc.GetOrLoad(ctx, "/icons/a.svg")
	require.NoError(t, err)
	b, err := cc.GetOrLoad(ctx, "/icons/b.svg")
	require.NoError(t, err)

	assert.Equal(t, "<svg>a</svg>", a)
	assert.Equal(t, "<svg>b</svg>", b)
}

func TestContentCache_ReadErrorPropagates(t *testing.T) {
	files := newFakeFileStore(nil)
	cc := NewContentCache(cache.NewMemoryStore(), files, logging.NewTestLogger())

	_, err := cc.GetOrLoad(context.Background(), "/icons/missing.svg")
	require.Error(t, err)
	assert.False(t, IsNotFound(err), "I/O errors must not be translated into NotFound")
}

func TestContentCache_DegradedBackendFallsBackToDisk(t *testing.T) {
	files := newFakeFileStore(map[string]string{
		"/icons/camera.svg": "<svg>camera</svg>",
	})
	cc := NewContentCache(failingStore{}, files, logging.NewTestLogger())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		content, err := cc.GetOrLoad(ctx, "/icons/camera.svg")
		require.NoError(t, err)
		assert.Equal(t, "<svg>camera</svg>", content)
	}

	// Without a working cache every call reads from disk.
	assert.Equal(t, 2, files.reads["/icons/camera.svg"])
}
