package svg

import (
	"fmt"
	"os"
)

// FileStore abstracts filesystem access for icon files.
// Implementations must be safe for concurrent use.
type FileStore interface {
	// Exists reports whether a regular file exists at path.
	Exists(path string) bool

	// Read returns the raw content of the file at path.
	Read(path string) ([]byte, error)
}

// OSFileStore reads icon files from the local filesystem.
type OSFileStore struct{}

// NewOSFileStore creates a FileStore backed by the OS filesystem.
func NewOSFileStore() *OSFileStore {
	return &OSFileStore{}
}

// Exists reports whether a regular file exists at path.
func (s *OSFileStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Read returns the raw content of the file at path.
func (s *OSFileStore) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("svg: failed to read %s: %w", path, err)
	}
	return data, nil
}
