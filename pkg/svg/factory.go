// Package svg resolves named references to SVG icon files across
// registered icon sets, caches their contents, and renders them as markup
// with merged CSS attributes.
package svg

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ideamans/svgkit/pkg/cache"
	"github.com/ideamans/svgkit/pkg/logging"
)

// Options configures a Factory.
type Options struct {
	// Class is the global default CSS class applied to every icon.
	Class string

	// FileStore overrides filesystem access. Defaults to the OS filesystem.
	FileStore FileStore

	// Cache is the content cache backend. Defaults to an in-memory store.
	Cache cache.Store

	// Logger receives debug and warning output. Defaults to a NopLogger.
	Logger logging.Logger
}

// Factory resolves, caches and renders icons from registered sets. Each
// Factory owns an isolated registry and content cache, so multiple
// independent instances can coexist in one process.
type Factory struct {
	registry *Registry
	resolver *Resolver
	cache    *ContentCache
	store    cache.Store
	files    FileStore
	class    string
	logger   logging.Logger
}

// New creates a Factory with the given options.
func New(opts Options) *Factory {
	files := opts.FileStore
	if files == nil {
		files = NewOSFileStore()
	}
	store := opts.Cache
	if store == nil {
		store = cache.NewMemoryStore()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.WithModule("svg")

	registry := NewRegistry()
	return &Factory{
		registry: registry,
		resolver: NewResolver(registry, files),
		cache:    NewContentCache(store, files, logger),
		store:    store,
		files:    files,
		class:    opts.Class,
		logger:   logger,
	}
}

// Close releases the content cache backend.
func (f *Factory) Close() error {
	return f.store.Close()
}

// Add registers or replaces an icon set.
func (f *Factory) Add(name string, opts SetOptions) {
	f.registry.Add(name, opts)
	f.logger.Debug("registered icon set", "set", name, "path", opts.Path, "prefix", opts.Prefix)
}

// AddFilters merges per-set allow-lists of logical names into the registry.
func (f *Factory) AddFilters(filters map[string][]string) {
	f.registry.AddFilters(filters)
}

// All returns every registered set in registration order.
func (f *Factory) All() []Set {
	return f.registry.All()
}

// Svg resolves name to an icon, loading its content through the cache and
// merging attributes. The class argument joins the global and set default
// classes unless attrs carries an explicit "class" key, which replaces all
// computed classes verbatim. Returns a NotFoundError when no set has a
// matching file.
func (f *Factory) Svg(ctx context.Context, name, class string, attrs map[string]string) (*Icon, error) {
	res, err := f.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}

	content, err := f.cache.GetOrLoad(ctx, res.Path)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("resolved icon", "name", res.Name, "set", res.Set.Name, "path", res.Path)
	merged := MergeAttributes(f.class, res.Set.Class, res.Set.Attributes, class, attrs)
	return NewIcon(res.Name, content, merged), nil
}

// Set returns the set registered under name.
func (f *Factory) Set(name string) (Set, bool) {
	return f.registry.Get(name)
}

// Load returns the cached content for a resolved file path, reading the
// file on first access. Bulk consumers such as sprite generation use this
// together with GetFiles.
func (f *Factory) Load(ctx context.Context, path string) (string, error) {
	return f.cache.GetOrLoad(ctx, path)
}

// File describes one enumerated icon file within a set.
type File struct {
	// Name is the dot-separated logical name relative to the set root.
	Name string

	// Path is the resolved file path.
	Path string
}

// GetFiles enumerates the .svg files belonging to setName. When a filter
// list is registered for the set, exactly the filtered names are returned
// in filter order, and a filtered name without a backing file yields a
// NotFoundError. Without a filter, all files under the set's path are
// returned in directory walk order.
func (f *Factory) GetFiles(setName string) ([]File, error) {
	set, ok := f.registry.Get(setName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSet, setName)
	}

	if names, filtered := f.registry.Filter(setName); filtered {
		files := make([]File, 0, len(names))
		for _, name := range names {
			path := filepath.Join(set.Path, filepath.FromSlash(FileName(name)))
			if !f.files.Exists(path) {
				return nil, &NotFoundError{Name: name, Set: setName}
			}
			files = append(files, File{Name: name, Path: path})
		}
		return files, nil
	}

	var files []File
	err := filepath.WalkDir(set.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".svg") {
			return nil
		}
		rel, err := filepath.Rel(set.Path, path)
		if err != nil {
			return err
		}
		files = append(files, File{Name: LogicalName(rel), Path: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("svg: failed to enumerate set %q: %w", setName, err)
	}
	return files, nil
}
