package svg

import (
	"sort"
	"strings"
)

// Attributes is an order-stable mapping of HTML attribute names to values.
// Keys keep their first-insertion position; setting an existing key updates
// its value in place.
type Attributes struct {
	keys   []string
	values map[string]string
}

// NewAttributes creates an empty attribute mapping.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]string)}
}

// Set stores value under key, preserving the key's original position if it
// was already present.
func (a *Attributes) Set(key, value string) {
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value for key and whether it is present.
func (a *Attributes) Get(key string) (string, bool) {
	value, ok := a.values[key]
	return value, ok
}

// Has reports whether key is present.
func (a *Attributes) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Delete removes key if present.
func (a *Attributes) Delete(key string) {
	if _, exists := a.values[key]; !exists {
		return
	}
	delete(a.values, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	return len(a.keys)
}

// Keys returns the attribute names in order.
func (a *Attributes) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Clone returns an independent copy.
func (a *Attributes) Clone() *Attributes {
	clone := NewAttributes()
	for _, k := range a.keys {
		clone.Set(k, a.values[k])
	}
	return clone
}

// Map returns the attributes as a plain map.
func (a *Attributes) Map() map[string]string {
	out := make(map[string]string, len(a.values))
	for k, v := range a.values {
		out[k] = v
	}
	return out
}

// MergeAttributes computes the final attribute mapping for an icon.
//
// Precedence, lowest to highest:
//  1. setAttrs, the set-level default attributes.
//  2. attrs, the call-site attributes. Any key present here, including
//     "class", replaces the same key from setAttrs verbatim.
//  3. When attrs carries no explicit "class", the class becomes the
//     space-joined concatenation of globalClass, setClass and class, in
//     that order, skipping empty components. If all three are empty the
//     "class" key is omitted entirely.
//
// Map-typed inputs are folded in with sorted keys so the result order is
// deterministic; a synthesized class is always the last key.
func MergeAttributes(globalClass, setClass string, setAttrs map[string]string, class string, attrs map[string]string) *Attributes {
	merged := NewAttributes()
	for _, key := range sortedKeys(setAttrs) {
		merged.Set(key, setAttrs[key])
	}

	explicitClass := false
	for _, key := range sortedKeys(attrs) {
		if key == "class" {
			explicitClass = true
		}
		merged.Set(key, attrs[key])
	}

	if !explicitClass {
		merged.Delete("class")
		if joined := JoinClasses(globalClass, setClass, class); joined != "" {
			merged.Set("class", joined)
		}
	}

	return merged
}

// JoinClasses joins CSS class strings with single spaces, skipping empty
// components.
func JoinClasses(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
