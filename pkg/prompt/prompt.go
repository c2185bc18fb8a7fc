// Package prompt renders token streams as powerline-style prompts.
//
// A render splits the stream into lines, builds coloured segments for each
// line and writes them with the left or right algorithm, depending on which
// prompt template produced the stream. Streams from any other template
// (window titles, for instance) are passed through without styling.
package prompt

import (
	"strings"

	"github.com/dkoosis/plprompt/pkg/glyph"
	"github.com/dkoosis/plprompt/pkg/markup"
	"github.com/dkoosis/plprompt/pkg/style"
	"github.com/dkoosis/plprompt/pkg/token"
)

// Kind identifies which prompt a template renders.
type Kind string

const (
	KindPrimary Kind = "primary"
	KindRight   Kind = "right"
	KindPlain   Kind = "plain"
)

// Templates holds the reference templates used to recognise the primary and
// right prompts. An empty reference never matches.
type Templates struct {
	Prompt      string
	RightPrompt string
}

// Classify reports which prompt templateID renders. When both references
// are equal the right prompt wins.
func (t Templates) Classify(templateID string) Kind {
	switch {
	case t.RightPrompt != "" && templateID == t.RightPrompt:
		return KindRight
	case t.Prompt != "" && templateID == t.Prompt:
		return KindPrimary
	default:
		return KindPlain
	}
}

// Options configures a Renderer. Zero values select defaults: the
// process-wide glyph registry, the xonsh dialect and no field styles.
type Options struct {
	Templates Templates
	Palette   *style.Palette
	Modes     *glyph.Registry
	// Mode is the requested glyph mode name. Empty or unknown names select
	// the registry's default mode.
	Mode    string
	Dialect markup.Dialect
}

// Renderer renders token streams. It is safe for concurrent use.
type Renderer struct {
	templates Templates
	palette   *style.Palette
	modes     *glyph.Registry
	mode      string
	dialect   markup.Dialect
}

// NewRenderer creates a renderer. It keeps a copy of the palette, so later
// changes to opts.Palette do not affect it.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		templates: opts.Templates,
		palette:   style.NewPalette(),
		modes:     opts.Modes,
		mode:      opts.Mode,
		dialect:   opts.Dialect,
	}
	if opts.Palette != nil {
		r.palette = opts.Palette.Clone()
	}
	if r.modes == nil {
		r.modes = glyph.Default()
	}
	if r.dialect == nil {
		r.dialect = markup.Default()
	}
	return r
}

// Mode returns the glyph mode the renderer draws with.
func (r *Renderer) Mode() glyph.Mode {
	return r.modes.Resolve(r.mode)
}

// Dialect returns the renderer's markup dialect.
func (r *Renderer) Dialect() markup.Dialect {
	return r.dialect
}

// Render renders the tokens produced by templateID. It fails only on
// malformed tokens.
func (r *Renderer) Render(templateID string, tokens []token.Token) (string, error) {
	if err := token.Validate(tokens); err != nil {
		return "", err
	}

	kind := r.templates.Classify(templateID)
	if kind == KindPlain {
		return Plain(tokens), nil
	}
	return r.RenderLines(kind == KindRight, tokens), nil
}

// RenderLines renders tokens as a left or right prompt regardless of the
// template. Tokens must be valid.
func (r *Renderer) RenderLines(right bool, tokens []token.Token) string {
	mode := r.Mode()
	thin := mode.ThinFor(right)

	lines := SplitLines(tokens)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		segs := BuildSegments(line, r.palette, thin)
		if right {
			out = append(out, RenderRight(mode, r.dialect, segs))
		} else {
			out = append(out, RenderLeft(mode, r.dialect, segs))
		}
	}
	return strings.Join(out, LineBreak)
}

// Plain concatenates token texts without any styling.
func Plain(tokens []token.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text())
	}
	return sb.String()
}
