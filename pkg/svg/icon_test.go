package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon_Accessors(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("class", "icon")

	icon := NewIcon("camera", "<svg></svg>", attrs)
	assert.Equal(t, "camera", icon.Name())
	assert.Equal(t, "<svg></svg>", icon.Content())

	// Returned attributes are a copy; mutating them does not affect the icon
	copied := icon.Attributes()
	copied.Set("class", "mutated")
	class, _ := icon.Attributes().Get("class")
	assert.Equal(t, "icon", class)
}

func TestIcon_RenderMergesRootAttributes(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("class", "icon icon-camera")
	attrs.Set("aria-hidden", "true")

	icon := NewIcon("camera", `<svg viewBox="0 0 24 24" width="24"><path d="M0 0h24"/></svg>`, attrs)

	assert.Equal(t,
		`<svg viewBox="0 0 24 24" width="24" aria-hidden="true" class="icon icon-camera"><path d="M0 0h24"/></svg>`,
		icon.Render())
}

func TestIcon_RenderOverridesExistingAttribute(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("width", "48")

	icon := NewIcon("camera", `<svg width="24" height="24"></svg>`, attrs)

	assert.Equal(t, `<svg height="24" width="48"></svg>`, icon.Render())
}

func TestIcon_RenderClassAlwaysLast(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("class", "icon")
	attrs.Set("fill", "none")

	icon := NewIcon("camera", `<svg></svg>`, attrs)
	assert.Equal(t, `<svg fill="none" class="icon"></svg>`, icon.Render())
}

func TestIcon_RenderKeepsSurroundingMarkup(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("class", "icon")

	content := "<?xml version=\"1.0\"?>\n<!-- camera -->\n<svg viewBox=\"0 0 24 24\"><circle r=\"4\"/></svg>"
	icon := NewIcon("camera", content, attrs)

	assert.Equal(t,
		"<?xml version=\"1.0\"?>\n<!-- camera -->\n<svg viewBox=\"0 0 24 24\" class=\"icon\"><circle r=\"4\"/></svg>",
		icon.Render())
}

func TestIcon_RenderNoAttributes(t *testing.T) {
	icon := NewIcon("camera", `<svg viewBox="0 0 24 24"></svg>`, nil)
	assert.Equal(t, `<svg viewBox="0 0 24 24"></svg>`, icon.Render())
}

func TestIcon_RenderWithoutRootTagReturnsContent(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("class", "icon")

	icon := NewIcon("broken", "not an svg document", attrs)
	assert.Equal(t, "not an svg document", icon.Render())
}

func TestIcon_RenderEscapesQuotesInValues(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("data-label", `say "cheese"`)

	icon := NewIcon("camera", `<svg></svg>`, attrs)
	assert.Equal(t, `<svg data-label="say &quot;cheese&quot;"></svg>`, icon.Render())
}

func TestIcon_StringRenders(t *testing.T) {
	attrs := NewAttributes()
	attrs.Set("class", "icon")

	icon := NewIcon("camera", `<svg></svg>`, attrs)
	assert.Equal(t, icon.Render(), icon.String())
}

func TestSplitRoot(t *testing.T) {
	attrs, inner, ok := SplitRoot(`<svg viewBox="0 0 24 24" fill='none'><path d="M0 0"/></svg>`)
	require.True(t, ok)

	viewBox, _ := attrs.Get("viewBox")
	assert.Equal(t, "0 0 24 24", viewBox)
	fill, _ := attrs.Get("fill")
	assert.Equal(t, "none", fill)
	assert.Equal(t, `<path d="M0 0"/>`, inner)
}

func TestSplitRoot_SelfClosing(t *testing.T) {
	attrs, inner, ok := SplitRoot(`<svg viewBox="0 0 8 8"/>`)
	require.True(t, ok)
	assert.True(t, attrs.Has("viewBox"))
	assert.Empty(t, inner)
}

func TestSplitRoot_NoRootTag(t *testing.T) {
	_, _, ok := SplitRoot("plain text")
	assert.False(t, ok)
}
