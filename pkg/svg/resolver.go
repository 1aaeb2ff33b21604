package svg

import (
	"path/filepath"
	"strings"
)

// Resolution is the outcome of resolving a requested icon name.
type Resolution struct {
	// Set is the matched icon set.
	Set Set

	// Name is the logical name after prefix stripping.
	Name string

	// Path is the resolved file path.
	Path string
}

// Resolver maps requested icon names to files across registered sets.
type Resolver struct {
	registry *Registry
	files    FileStore
}

// NewResolver creates a resolver over the given registry and file store.
func NewResolver(registry *Registry, files FileStore) *Resolver {
	return &Resolver{registry: registry, files: files}
}

// Resolve determines which set and file satisfy the requested name.
//
// Sets are tried in Registry.SearchOrder. For each set, when the requested
// name starts with the set's prefix followed by a dash, the prefix is
// stripped for that set's lookup only; otherwise the full name is used.
// The first set with an existing file wins. When no set matches, the
// returned NotFoundError names the last-checked set and the stripped name.
func (r *Resolver) Resolve(requested string) (*Resolution, error) {
	lastSet := ""
	lastName := requested

	for _, set := range r.registry.SearchOrder() {
		name := StripPrefix(requested, set.Prefix)
		path := filepath.Join(set.Path, filepath.FromSlash(FileName(name)))
		lastSet = set.Name
		lastName = name

		if r.files.Exists(path) {
			return &Resolution{Set: set, Name: name, Path: path}, nil
		}
	}

	return nil, &NotFoundError{Name: lastName, Set: lastSet}
}

// StripPrefix removes a single leading occurrence of prefix + "-" from
// name. An empty prefix leaves the name untouched.
func StripPrefix(name, prefix string) string {
	if prefix == "" {
		return name
	}
	return strings.TrimPrefix(name, prefix+"-")
}

// FileName converts a dot-separated logical name to the set-relative file
// path, dots mapping to subdirectory separators.
func FileName(name string) string {
	return strings.ReplaceAll(name, ".", "/") + ".svg"
}

// LogicalName converts a set-relative file path back to its dot-separated
// logical name.
func LogicalName(rel string) string {
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return strings.ReplaceAll(rel, "/", ".")
}
