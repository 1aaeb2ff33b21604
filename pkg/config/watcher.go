package config

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ideamans/svgkit/pkg/logging"
)

// Watcher watches the configuration file and invokes a callback when its
// effective content changes. Only the config file itself is watched; icon
// directories are never watched.
type Watcher struct {
	loader       Loader
	configPath   string
	lastHash     string
	onReload     func(*Config)
	logger       logging.Logger
	reloadNotify chan struct{} // Optional channel for testing
}

// WatcherConfig contains the configuration for creating a Watcher
type WatcherConfig struct {
	Loader       Loader
	ConfigPath   string        // Path to the configuration file to watch
	OnReload     func(*Config) // Invoked with each successfully loaded, changed config
	Logger       logging.Logger
	ReloadNotify chan struct{} // Optional: notified after each reload attempt
}

// NewWatcher creates a new Watcher with the given configuration.
func NewWatcher(cfg WatcherConfig) (*Watcher, error) {
	if cfg.Loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if cfg.OnReload == nil {
		return nil, fmt.Errorf("reload callback is required")
	}
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.ConfigPath == "" {
		return nil, fmt.Errorf("config path is required")
	}

	absPath, err := filepath.Abs(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	initial, err := cfg.Loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load initial configuration: %w", err)
	}
	hash, err := calculateConfigHash(initial)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate initial config hash: %w", err)
	}

	watcher := &Watcher{
		loader:       cfg.Loader,
		configPath:   absPath,
		lastHash:     hash,
		onReload:     cfg.OnReload,
		logger:       cfg.Logger.WithModule("watcher"),
		reloadNotify: cfg.ReloadNotify,
	}

	watcher.logger.Info("Config watcher initialized", "config_path", absPath)

	return watcher, nil
}

// Watch starts watching for configuration changes using fsnotify.
// Call this method in a goroutine. It blocks until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Error("Failed to create fsnotify watcher", "error", err)
		return
	}
	defer fsWatcher.Close()

	if err := fsWatcher.Add(w.configPath); err != nil {
		w.logger.Error("Failed to watch config file", "error", err, "path", w.configPath)
		return
	}

	w.logger.Info("Watching configuration file", "path", w.configPath)

	// Debounce timer to handle multiple rapid events
	var debounceTimer *time.Timer
	debounceDuration := 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Configuration watch stopped")
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-fsWatcher.Events:
			if !ok {
				w.logger.Warn("fsnotify events channel closed")
				return
			}

			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				w.logger.Debug("Config file changed", "event", event.Op.String())

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, func() {
					w.checkAndReload()
				})
			}

			// File removed and recreated (common with some editors)
			if event.Op&fsnotify.Remove == fsnotify.Remove {
				w.logger.Debug("Config file removed, will re-watch on create")
				time.Sleep(50 * time.Millisecond)
				fsWatcher.Add(w.configPath)
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				w.logger.Warn("fsnotify errors channel closed")
				return
			}
			w.logger.Error("fsnotify error", "error", err)
		}
	}
}

// checkAndReload checks if the configuration has changed and invokes the
// reload callback if necessary.
func (w *Watcher) checkAndReload() {
	if w.reloadNotify != nil {
		defer func() {
			select {
			case w.reloadNotify <- struct{}{}:
			default:
			}
		}()
	}

	newConfig, err := w.loader.Load()
	if err != nil {
		w.logger.Error("Failed to load configuration", "error", err)
		return
	}

	newHash, err := calculateConfigHash(newConfig)
	if err != nil {
		w.logger.Error("Failed to calculate config hash", "error", err)
		return
	}

	if newHash == w.lastHash {
		w.logger.Debug("Configuration unchanged")
		return
	}

	w.logger.Info("Configuration changed, reloading")
	w.onReload(newConfig)
	w.lastHash = newHash
	w.logger.Info("Configuration reloaded successfully")
}

// calculateConfigHash calculates a hash of the configuration for change
// detection, using JSON marshaling as a canonical representation.
func calculateConfigHash(cfg *Config) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash), nil
}
