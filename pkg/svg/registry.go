package svg

import "sync"

// DefaultSetName is the set that resolution always searches last,
// regardless of registration order.
const DefaultSetName = "default"

// SetOptions configures an icon set at registration time.
type SetOptions struct {
	// Path is the root directory holding the set's SVG files.
	Path string

	// Prefix identifies this set when a requested name starts with
	// Prefix + "-"; the prefix is stripped before file lookup.
	Prefix string

	// Class is the default CSS class applied to every icon from this set.
	Class string

	// Attributes are default attributes merged into every icon from this set.
	Attributes map[string]string
}

// Set is a registered icon set.
type Set struct {
	Name       string
	Path       string
	Prefix     string
	Class      string
	Attributes map[string]string
}

// Registry holds the ordered collection of registered icon sets plus
// per-set name filters. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	sets    map[string]Set
	order   []string
	filters map[string][]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sets:    make(map[string]Set),
		filters: make(map[string][]string),
	}
}

// Add registers or replaces a set's configuration. Re-adding an existing
// name overwrites its options but keeps its original registration position.
func (r *Registry) Add(name string, opts SetOptions) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sets[name]; !exists {
		r.order = append(r.order, name)
	}
	r.sets[name] = Set{
		Name:       name,
		Path:       opts.Path,
		Prefix:     opts.Prefix,
		Class:      opts.Class,
		Attributes: copyAttributeMap(opts.Attributes),
	}
}

// Get returns the set registered under name.
func (r *Registry) Get(name string) (Set, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.sets[name]
	if !ok {
		return Set{}, false
	}
	return copySet(set), true
}

// All returns every registered set in registration order.
func (r *Registry) All() []Set {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Set, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, copySet(r.sets[name]))
	}
	return out
}

// SearchOrder returns the sets in resolution order: every set except the
// one named "default" in reverse registration order (most recently added
// first), then "default" last if present. This lets an application
// override a bundled default set by registering a more specific one
// afterward, without renaming.
func (r *Registry) SearchOrder() []Set {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Set, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		name := r.order[i]
		if name == DefaultSetName {
			continue
		}
		out = append(out, copySet(r.sets[name]))
	}
	if set, ok := r.sets[DefaultSetName]; ok {
		out = append(out, copySet(set))
	}
	return out
}

// AddFilters merges additional set name to allowed-names entries into the
// filter list. Entries for other sets are kept; re-adding a set name
// replaces that set's filter list.
func (r *Registry) AddFilters(filters map[string][]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for setName, names := range filters {
		list := make([]string, len(names))
		copy(list, names)
		r.filters[setName] = list
	}
}

// Filter returns the allowed logical names for setName. The second return
// value is false when no filter is registered, meaning all files are
// included.
func (r *Registry) Filter(setName string) ([]string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names, ok := r.filters[setName]
	if !ok {
		return nil, false
	}
	out := make([]string, len(names))
	copy(out, names)
	return out, true
}

func copySet(set Set) Set {
	set.Attributes = copyAttributeMap(set.Attributes)
	return set
}

func copyAttributeMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
