// Package glyph holds the powerline separator sets ("modes") used to draw
// the transitions between prompt segments.
//
// Glyphs are nerd-font private use codepoints; see the nf-ple cheat sheet at
// https://www.nerdfonts.com/cheat-sheet.
package glyph

// Mode is a named set of separator glyphs.
type Mode struct {
	Name string

	// Separator closes a left prompt block.
	Separator string
	// Thin joins sub-parts inside one left prompt segment.
	Thin string
	// RightSeparator opens a right prompt block.
	RightSeparator string
	// RightThin joins sub-parts inside one right prompt segment.
	// Optional; RightThinOrThin falls back to Thin when it is empty.
	RightThin string
}

// RightThinOrThin returns the thin glyph to use inside right prompt segments.
func (m Mode) RightThinOrThin() string {
	if m.RightThin != "" {
		return m.RightThin
	}
	return m.Thin
}

// ThinFor returns the thin glyph for the left or right prompt.
func (m Mode) ThinFor(right bool) string {
	if right {
		return m.RightThinOrThin()
	}
	return m.Thin
}

// Built-in mode names.
const (
	Powerline = "powerline"
	Round     = "round"
	Down      = "down"
	Up        = "up"
	Flame     = "flame"
	Squares   = "squares"
	Ruiny     = "ruiny"
	Lego      = "lego"
	Trapezoid = "trapezoid"
	Honeycomb = "honeycomb"
)

func mode(name, sep, thin, rsep, rthin string) Mode {
	return Mode{Name: name, Separator: sep, Thin: thin, RightSeparator: rsep, RightThin: rthin}
}

// builtin returns the stock glyph modes.
func builtin() []Mode {
	return []Mode{
		mode(Powerline, "\uE0B0", "\uE0B1", "\uE0B2", "\uE0B3"),
		mode(Round, "\uE0B4", "\uE0B5", "\uE0B6", "\uE0B7"),
		mode(Down, "\uE0B8", "\uE0B9", "\uE0BA", "\uE0BB"),
		mode(Up, "\uE0BC", "\uE0BD", "\uE0BE", "\uE0BF"),
		mode(Flame, "\uE0C0", "\uE0C1", "\uE0C2", "\uE0C3"),
		mode(Squares, "\uE0C6", "\uE0C4", "\uE0C7", "\uE0C5"),
		mode(Ruiny, "\uE0C8", "\uE0C1", "\uE0CA", "\uE0C3"),
		mode(Lego, "\uE0D1", "\uE0D0", "\uE0B2", "\uE0D0"),
		mode(Trapezoid, "\uE0D2", "\uE0B9", "\uE0D4", "\uE0BB"),
		mode(Honeycomb, "\uE0CC", "\uE0CD", "\uE0D4", "\uE0BB"),
	}
}
