package config

import "errors"

var (
	// ErrNoSets is returned when no icon sets are configured
	ErrNoSets = errors.New("at least one icon set is required")

	// ErrSetNameRequired is returned when a set has no name
	ErrSetNameRequired = errors.New("icon set name is required")

	// ErrSetPathRequired is returned when a set has no path
	ErrSetPathRequired = errors.New("icon set path is required")

	// ErrDuplicateSetName is returned when two sets share a name
	ErrDuplicateSetName = errors.New("duplicate icon set name")

	// ErrFilterUnknownSet is returned when a filter references an unconfigured set
	ErrFilterUnknownSet = errors.New("filter references unknown icon set")

	// ErrConfigFileNotFound is returned when config file is not found
	ErrConfigFileNotFound = errors.New("configuration file not found")
)
