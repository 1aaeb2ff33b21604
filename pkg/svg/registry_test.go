package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setNames(sets []Set) []string {
	names := make([]string, len(sets))
	for i, set := range sets {
		names[i] = set.Name
	}
	return names
}

func TestRegistry_AddOverwritesByName(t *testing.T) {
	registry := NewRegistry()
	registry.Add("heroicons", SetOptions{Path: "/old", Prefix: "hero"})
	registry.Add("lucide", SetOptions{Path: "/lucide"})
	registry.Add("heroicons", SetOptions{Path: "/new", Prefix: "hero"})

	set, ok := registry.Get("heroicons")
	require.True(t, ok)
	assert.Equal(t, "/new", set.Path)

	// Overwriting keeps the original registration position
	assert.Equal(t, []string{"heroicons", "lucide"}, setNames(registry.All()))
}

func TestRegistry_SearchOrder(t *testing.T) {
	registry := NewRegistry()
	registry.Add("default", SetOptions{Path: "/default"})
	registry.Add("first", SetOptions{Path: "/first"})
	registry.Add("second", SetOptions{Path: "/second"})

	// Non-default sets in reverse registration order, default always last
	assert.Equal(t, []string{"second", "first", "default"}, setNames(registry.SearchOrder()))
}

func TestRegistry_SearchOrderWithoutDefault(t *testing.T) {
	registry := NewRegistry()
	registry.Add("first", SetOptions{Path: "/first"})
	registry.Add("second", SetOptions{Path: "/second"})

	assert.Equal(t, []string{"second", "first"}, setNames(registry.SearchOrder()))
}

func TestRegistry_AddFiltersMergesAcrossSets(t *testing.T) {
	registry := NewRegistry()
	registry.AddFilters(map[string][]string{"default": {"flag", "solid.camera"}})
	registry.AddFilters(map[string][]string{"brands": {"github"}})

	// Entries for other sets survive later calls
	names, ok := registry.Filter("default")
	require.True(t, ok)
	assert.Equal(t, []string{"flag", "solid.camera"}, names)

	names, ok = registry.Filter("brands")
	require.True(t, ok)
	assert.Equal(t, []string{"github"}, names)
}

func TestRegistry_AddFiltersReplacesSameSet(t *testing.T) {
	registry := NewRegistry()
	registry.AddFilters(map[string][]string{"default": {"flag"}})
	registry.AddFilters(map[string][]string{"default": {"camera"}})

	names, ok := registry.Filter("default")
	require.True(t, ok)
	assert.Equal(t, []string{"camera"}, names)
}

func TestRegistry_FilterAbsentMeansNoFiltering(t *testing.T) {
	registry := NewRegistry()
	_, ok := registry.Filter("default")
	assert.False(t, ok)
}

func TestRegistry_ReturnedSetsAreCopies(t *testing.T) {
	registry := NewRegistry()
	registry.Add("default", SetOptions{Path: "/icons", Attributes: map[string]string{"fill": "none"}})

	set, ok := registry.Get("default")
	require.True(t, ok)
	set.Attributes["fill"] = "red"

	fresh, _ := registry.Get("default")
	assert.Equal(t, "none", fresh.Attributes["fill"])
}
