// Package sprite builds SVG sprite documents from icon sets.
package sprite

import (
	"context"
	"fmt"
	"strings"

	"github.com/ideamans/svgkit/pkg/svg"
)

// Builder generates sprite documents from a factory's icon sets. Each icon
// becomes a <symbol> that templates reference by id via <use href="#id">.
type Builder struct {
	factory *svg.Factory
}

// NewBuilder creates a sprite builder over the given factory.
func NewBuilder(factory *svg.Factory) *Builder {
	return &Builder{factory: factory}
}

// SymbolID derives the sprite symbol id for a logical name within a set:
// the set's prefix (or the set name when no prefix is configured), a dash,
// and the logical name with dots flattened to dashes.
func SymbolID(set svg.Set, name string) string {
	prefix := set.Prefix
	if prefix == "" {
		prefix = set.Name
	}
	return prefix + "-" + strings.ReplaceAll(name, ".", "-")
}

// Build renders a sprite document containing a <symbol> for every file
// belonging to setName, respecting the set's filter list. Files without a
// root <svg> tag are rejected.
func (b *Builder) Build(ctx context.Context, setName string) (string, error) {
	set, ok := b.factory.Set(setName)
	if !ok {
		return "", fmt.Errorf("%w: %q", svg.ErrUnknownSet, setName)
	}

	files, err := b.factory.GetFiles(setName)
	if err != nil {
		return "", err
	}

	var doc strings.Builder
	doc.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" style="display: none;">`)
	doc.WriteString("\n")

	for _, file := range files {
		content, err := b.factory.Load(ctx, file.Path)
		if err != nil {
			return "", err
		}

		attrs, inner, ok := svg.SplitRoot(content)
		if !ok {
			return "", fmt.Errorf("sprite: %s has no root <svg> tag", file.Path)
		}

		doc.WriteString(`<symbol id="`)
		doc.WriteString(SymbolID(set, file.Name))
		doc.WriteString(`"`)
		if viewBox, ok := attrs.Get("viewBox"); ok {
			doc.WriteString(` viewBox="`)
			doc.WriteString(viewBox)
			doc.WriteString(`"`)
		}
		doc.WriteString(">")
		doc.WriteString(inner)
		doc.WriteString("</symbol>\n")
	}

	doc.WriteString("</svg>\n")
	return doc.String(), nil
}
