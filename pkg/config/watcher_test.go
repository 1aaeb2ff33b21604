package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideamans/svgkit/pkg/logging"
)

const watcherConfigV1 = `
sets:
  - name: default
    path: /icons
`

const watcherConfigV2 = `
sets:
  - name: default
    path: /icons
  - name: brands
    path: /brands
    prefix: brand
`

func TestNewWatcher_Validation(t *testing.T) {
	loader := NewFileLoader("svgkit.yaml")
	logger := logging.NewTestLogger()
	onReload := func(*Config) {}

	_, err := NewWatcher(WatcherConfig{ConfigPath: "svgkit.yaml", Logger: logger, OnReload: onReload})
	assert.Error(t, err, "loader is required")

	_, err = NewWatcher(WatcherConfig{Loader: loader, ConfigPath: "svgkit.yaml", Logger: logger})
	assert.Error(t, err, "reload callback is required")

	_, err = NewWatcher(WatcherConfig{Loader: loader, ConfigPath: "svgkit.yaml", OnReload: onReload})
	assert.Error(t, err, "logger is required")

	_, err = NewWatcher(WatcherConfig{Loader: loader, Logger: logger, OnReload: onReload})
	assert.Error(t, err, "config path is required")
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svgkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(watcherConfigV1), 0644))

	var mu sync.Mutex
	var reloaded *Config
	notify := make(chan struct{}, 1)

	watcher, err := NewWatcher(WatcherConfig{
		Loader:     NewFileLoader(path),
		ConfigPath: path,
		Logger:     logging.NewTestLogger(),
		OnReload: func(cfg *Config) {
			mu.Lock()
			reloaded = cfg
			mu.Unlock()
		},
		ReloadNotify: notify,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Watch(ctx)

	// Give the watcher a moment to register the file
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(watcherConfigV2), 0644))

	select {
	case <-notify:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, reloaded, "reload callback should have been invoked")
	assert.Len(t, reloaded.Sets, 2)
}

func TestWatcher_IgnoresUnchangedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svgkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(watcherConfigV1), 0644))

	calls := 0
	notify := make(chan struct{}, 1)

	watcher, err := NewWatcher(WatcherConfig{
		Loader:       NewFileLoader(path),
		ConfigPath:   path,
		Logger:       logging.NewTestLogger(),
		OnReload:     func(*Config) { calls++ },
		ReloadNotify: notify,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watcher.Watch(ctx)

	time.Sleep(100 * time.Millisecond)

	// Rewrite the same content; the hash is unchanged
	require.NoError(t, os.WriteFile(path, []byte(watcherConfigV1), 0644))

	select {
	case <-notify:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload check")
	}

	assert.Equal(t, 0, calls, "identical content must not trigger the callback")
}
