// Package config loads and validates svgkit configuration files.
package config

import (
	"fmt"

	"github.com/ideamans/svgkit/pkg/cache"
	"github.com/ideamans/svgkit/pkg/svg"
)

// Config represents the application configuration
type Config struct {
	// Class is the global default CSS class applied to every icon.
	Class string `yaml:"class" json:"class"`

	// Sets are the icon set definitions, in registration order.
	Sets []SetConfig `yaml:"sets" json:"sets"`

	// Filters restricts bulk enumeration per set to the listed logical names.
	Filters map[string][]string `yaml:"filters" json:"filters"`

	// Cache selects the content cache backend.
	Cache cache.Config `yaml:"cache" json:"cache"`

	Server  ServerConfig  `yaml:"server" json:"server"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// SetConfig defines a single icon set
type SetConfig struct {
	Name       string            `yaml:"name" json:"name"`
	Path       string            `yaml:"path" json:"path"`             // Root directory of the set's SVG files (required)
	Prefix     string            `yaml:"prefix" json:"prefix"`         // Optional name prefix selecting this set
	Class      string            `yaml:"class" json:"class"`           // Default CSS class for icons from this set
	Attributes map[string]string `yaml:"attributes" json:"attributes"` // Default attributes for icons from this set
}

// ServerConfig contains HTTP serving settings
type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	Color bool   `yaml:"color" json:"color"`
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Sets) == 0 {
		return ErrNoSets
	}

	seen := make(map[string]bool, len(c.Sets))
	for i, set := range c.Sets {
		if set.Name == "" {
			return fmt.Errorf("%w: sets[%d]", ErrSetNameRequired, i)
		}
		if set.Path == "" {
			return fmt.Errorf("%w: %s", ErrSetPathRequired, set.Name)
		}
		if seen[set.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateSetName, set.Name)
		}
		seen[set.Name] = true
	}

	for setName := range c.Filters {
		if !seen[setName] {
			return fmt.Errorf("%w: %s", ErrFilterUnknownSet, setName)
		}
	}

	return nil
}

// Apply registers the configured sets and filters on a factory, in order.
// Reapplying an updated configuration overwrites existing sets by name.
func (c *Config) Apply(f *svg.Factory) {
	for _, set := range c.Sets {
		f.Add(set.Name, svg.SetOptions{
			Path:       set.Path,
			Prefix:     set.Prefix,
			Class:      set.Class,
			Attributes: set.Attributes,
		})
	}
	if len(c.Filters) > 0 {
		f.AddFilters(c.Filters)
	}
}
