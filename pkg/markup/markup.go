// Package markup writes the symbolic colour markers embedded in a rendered
// prompt. Markers are expanded into terminal styling by the shell's own
// colour engine; nothing here emits escape sequences.
package markup

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Dialect writes markers in one markup language.
type Dialect interface {
	Name() string
	Foreground(color string) string
	Background(color string) string
	Reset() string
	// Escape quotes text so the shell prints it literally instead of
	// reading it as markers.
	Escape(text string) string
	// Strip removes this dialect's markers from s and undoes Escape.
	Strip(s string) string
}

// Dialect names.
const (
	NameXonsh    = "xonsh"
	NameZsh      = "zsh"
	NameSymbolic = "symbolic"
)

// Casers carry state, so each call gets its own.
func upper(s string) string { return cases.Upper(language.Und).String(s) }

func lower(s string) string { return cases.Lower(language.Und).String(s) }

// Xonsh writes xonsh prompt colour keywords: {COLOR}, {BACKGROUND_COLOR},
// {RESET}. Colour names are upper-cased.
type Xonsh struct{}

var xonshMarker = regexp.MustCompile(`\{(?:BACKGROUND_)?[A-Z0-9_#]+\}`)

func (Xonsh) Name() string { return NameXonsh }

func (Xonsh) Foreground(color string) string { return "{" + upper(color) + "}" }

func (Xonsh) Background(color string) string { return "{BACKGROUND_" + upper(color) + "}" }

func (Xonsh) Reset() string { return "{RESET}" }

// Escape returns text unchanged; xonsh expands colour keywords before field
// values are substituted.
func (Xonsh) Escape(text string) string { return text }

func (Xonsh) Strip(s string) string { return xonshMarker.ReplaceAllString(s, "") }

// Zsh writes zsh prompt escapes: %F{color}, %K{color}, %f%k.
// Colour names are lower-cased; xonsh-style INTENSE_ prefixes are dropped.
// A literal percent sign is written as %%.
type Zsh struct{}

var zshMarker = regexp.MustCompile(`%%|%[FK]\{[^}]*\}|%f|%k`)

func (Zsh) Name() string { return NameZsh }

func (Zsh) Foreground(color string) string { return "%F{" + zshColor(color) + "}" }

func (Zsh) Background(color string) string { return "%K{" + zshColor(color) + "}" }

func (Zsh) Reset() string { return "%f%k" }

func (Zsh) Escape(text string) string { return strings.ReplaceAll(text, "%", "%%") }

func (Zsh) Strip(s string) string {
	return zshMarker.ReplaceAllStringFunc(s, func(m string) string {
		if m == "%%" {
			return "%"
		}
		return ""
	})
}

func zshColor(color string) string {
	c := lower(color)
	return strings.TrimPrefix(c, "intense_")
}

// Symbolic writes readable markers, set-foreground(C), set-background(C)
// and reset, for debugging and tests. Text that could be mistaken for a
// marker is prefixed with a backslash.
type Symbolic struct{}

var (
	symbolicMarker = regexp.MustCompile(`\\[\s\S]|set-(?:fore|back)ground\([^)]*\)|reset`)
	symbolicQuote  = strings.NewReplacer(`\`, `\\`, "set", `\set`)
)

func (Symbolic) Name() string { return NameSymbolic }

func (Symbolic) Foreground(color string) string { return "set-foreground(" + color + ")" }

func (Symbolic) Background(color string) string { return "set-background(" + color + ")" }

func (Symbolic) Reset() string { return "reset" }

func (Symbolic) Escape(text string) string {
	text = symbolicQuote.Replace(text)
	// A trailing "re" followed by a set- marker would read as reset.
	if strings.HasSuffix(text, "re") {
		text = text[:len(text)-1] + `\e`
	}
	return text
}

func (Symbolic) Strip(s string) string {
	return symbolicMarker.ReplaceAllStringFunc(s, func(m string) string {
		if strings.HasPrefix(m, `\`) {
			return m[1:]
		}
		return ""
	})
}

var dialects = map[string]Dialect{
	NameXonsh:    Xonsh{},
	NameZsh:      Zsh{},
	NameSymbolic: Symbolic{},
}

// Default returns the xonsh dialect.
func Default() Dialect {
	return Xonsh{}
}

// ByName returns the named dialect. The empty name selects Default.
func ByName(name string) (Dialect, error) {
	if name == "" {
		return Default(), nil
	}
	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("unknown markup dialect %q (expected %s)", name, strings.Join(Names(), ", "))
	}
	return d, nil
}

// Names returns the known dialect names in sorted order.
func Names() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
