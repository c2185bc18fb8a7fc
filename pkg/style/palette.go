// Package style resolves prompt fields to colours and internal separators.
//
// A Palette is plain configuration: it is built once (from defaults, a
// config file, or code), then passed by reference to the prompt renderer.
// Lookups never fail; unknown fields fall back to DefaultPair.
package style

import (
	"sort"
	"strings"
)

// ColorPair is a resolved (foreground, background) pair.
// An empty colour means "no styling".
type ColorPair struct {
	Foreground string
	Background string
}

// DefaultPair is used for fields that have no registered style.
var DefaultPair = ColorPair{Foreground: White, Background: Gray}

// FieldStyle is the registered styling for one field.
type FieldStyle struct {
	Foreground string `yaml:"fg,omitempty"`
	Background string `yaml:"bg,omitempty"`
	// Separator is the field's internal separator. Occurrences inside the
	// field's value are replaced by the active thin glyph.
	Separator string `yaml:"sep,omitempty"`
}

// Pair returns the colour pair of the style.
func (s FieldStyle) Pair() ColorPair {
	return ColorPair{Foreground: s.Foreground, Background: s.Background}
}

// Palette maps field names to styles.
type Palette struct {
	fields map[string]FieldStyle
}

// NewPalette creates an empty palette.
func NewPalette() *Palette {
	return &Palette{fields: make(map[string]FieldStyle)}
}

// Register sets the style of a field, replacing any previous one.
//
// A style with a background but no foreground gets a contrasting
// foreground. A style without a background registers the empty pair, so
// the field renders as bare text.
func (p *Palette) Register(field string, s FieldStyle) {
	switch {
	case s.Background == "":
		s.Foreground = ""
	case s.Foreground == "":
		s.Foreground = Contrast(s.Background)
	}
	p.fields[field] = s
}

// SetSeparator registers the internal separator of a field, keeping its
// colours. An unregistered field gets DefaultPair colours.
func (p *Palette) SetSeparator(field, sep string) {
	s, ok := p.fields[field]
	if !ok {
		s = FieldStyle{Foreground: DefaultPair.Foreground, Background: DefaultPair.Background}
	}
	s.Separator = sep
	p.fields[field] = s
}

// Style returns the registered style of a field.
func (p *Palette) Style(field string) (FieldStyle, bool) {
	s, ok := p.fields[field]
	return s, ok
}

// Fields returns the registered field names in sorted order.
func (p *Palette) Fields() []string {
	names := make([]string, 0, len(p.fields))
	for name := range p.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the palette.
func (p *Palette) Clone() *Palette {
	c := &Palette{fields: make(map[string]FieldStyle, len(p.fields))}
	for k, v := range p.fields {
		c.fields[k] = v
	}
	return c
}

// ColorsFor resolves the colours of a field. The empty field name means
// "no field" and yields the empty pair.
func (p *Palette) ColorsFor(field string) ColorPair {
	if field == "" {
		return ColorPair{}
	}
	if p != nil {
		if s, ok := p.fields[field]; ok {
			return s.Pair()
		}
	}
	return DefaultPair
}

// SeparatorFor replaces the field's registered internal separator inside
// value with thin. Values of fields without a separator pass through.
func (p *Palette) SeparatorFor(field, value, thin string) string {
	if p == nil || field == "" {
		return value
	}
	s, ok := p.fields[field]
	if !ok || s.Separator == "" {
		return value
	}
	return strings.ReplaceAll(value, s.Separator, thin)
}
