package svg

import (
	"regexp"
	"strings"
)

// Icon is an immutable resolved icon: logical name, raw SVG markup as read
// from disk, and the final merged attributes.
type Icon struct {
	name    string
	content string
	attrs   *Attributes
}

// NewIcon constructs an icon value. The attributes are copied; a nil
// mapping is treated as empty.
func NewIcon(name, content string, attrs *Attributes) *Icon {
	if attrs == nil {
		attrs = NewAttributes()
	}
	return &Icon{
		name:    name,
		content: content,
		attrs:   attrs.Clone(),
	}
}

// Name returns the logical identifier used at lookup time.
func (i *Icon) Name() string {
	return i.name
}

// Content returns the raw SVG markup, unmodified from disk.
func (i *Icon) Content() string {
	return i.content
}

// Attributes returns a copy of the final merged attributes.
func (i *Icon) Attributes() *Attributes {
	return i.attrs.Clone()
}

// Render returns the markup with the root <svg> tag's attributes augmented
// by the merged attributes. Existing root attributes that are not
// overridden keep their original order, merged attributes follow, and
// "class" is always rendered last when present. All markup other than the
// root tag is left unchanged. Content without a root <svg> tag is returned
// as-is.
func (i *Icon) Render() string {
	loc := rootTagPattern.FindStringSubmatchIndex(i.content)
	if loc == nil {
		return i.content
	}

	existing, selfClosing := parseTagAttributes(i.content[loc[2]:loc[3]])

	var b strings.Builder
	b.WriteString(i.content[:loc[0]])
	b.WriteString("<svg")

	for _, key := range existing.Keys() {
		if i.attrs.Has(key) {
			continue
		}
		value, _ := existing.Get(key)
		writeAttribute(&b, key, value)
	}
	for _, key := range i.attrs.Keys() {
		if key == "class" {
			continue
		}
		value, _ := i.attrs.Get(key)
		writeAttribute(&b, key, value)
	}
	if class, ok := i.attrs.Get("class"); ok {
		writeAttribute(&b, "class", class)
	}

	if selfClosing {
		b.WriteString("/>")
	} else {
		b.WriteString(">")
	}
	b.WriteString(i.content[loc[1]:])
	return b.String()
}

// String renders the icon, making *Icon usable directly in templates.
func (i *Icon) String() string {
	return i.Render()
}

var (
	rootTagPattern = regexp.MustCompile(`(?is)<svg\b([^>]*)>`)
	attrPattern    = regexp.MustCompile(`([^\s=/]+)\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

// SplitRoot splits SVG markup into the root tag's attributes and the inner
// markup between the root tags. It reports false when no root <svg> tag is
// found. Only the root tag is inspected; the rest of the document is not
// parsed or validated.
func SplitRoot(markup string) (*Attributes, string, bool) {
	loc := rootTagPattern.FindStringSubmatchIndex(markup)
	if loc == nil {
		return nil, "", false
	}

	attrs, selfClosing := parseTagAttributes(markup[loc[2]:loc[3]])
	if selfClosing {
		return attrs, "", true
	}

	inner := markup[loc[1]:]
	if end := strings.LastIndex(inner, "</svg>"); end >= 0 {
		inner = inner[:end]
	}
	return attrs, strings.TrimSpace(inner), true
}

// parseTagAttributes extracts quoted attributes from the raw text of an
// opening tag, preserving their order, and reports whether the tag is
// self-closing.
func parseTagAttributes(raw string) (*Attributes, bool) {
	attrs := NewAttributes()
	for _, m := range attrPattern.FindAllStringSubmatch(raw, -1) {
		value := m[2]
		if value == "" && m[3] != "" {
			value = m[3]
		}
		attrs.Set(m[1], value)
	}
	selfClosing := strings.HasSuffix(strings.TrimSpace(raw), "/")
	return attrs, selfClosing
}

// writeAttribute appends one key="value" pair. Double quotes inside values
// are escaped; other characters pass through verbatim so entities already
// escaped in the source are not double-escaped.
func writeAttribute(b *strings.Builder, key, value string) {
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(strings.ReplaceAll(value, `"`, "&quot;"))
	b.WriteString(`"`)
}
