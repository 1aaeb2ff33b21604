// Package factory wires configuration into ready-to-use components.
package factory

import (
	"fmt"

	"github.com/ideamans/svgkit/pkg/cache"
	"github.com/ideamans/svgkit/pkg/config"
	"github.com/ideamans/svgkit/pkg/logging"
	"github.com/ideamans/svgkit/pkg/svg"
)

// Build creates a fully wired svg.Factory from configuration: it creates
// the configured cache backend, constructs the factory, and registers all
// sets and filters. The caller owns the returned factory and should Close
// it to release the cache backend.
func Build(cfg *config.Config, logger logging.Logger) (*svg.Factory, error) {
	store, err := cache.New(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache store: %w", err)
	}

	f := svg.New(svg.Options{
		Class:  cfg.Class,
		Cache:  store,
		Logger: logger,
	})
	cfg.Apply(f)
	return f, nil
}
