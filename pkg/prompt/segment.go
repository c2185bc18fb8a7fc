package prompt

import (
	"strings"

	"github.com/dkoosis/plprompt/pkg/style"
	"github.com/dkoosis/plprompt/pkg/token"
)

// Segment is one coloured block of a prompt line.
type Segment struct {
	Text       string
	Field      string
	Foreground string
	Background string
	// NextBackground is the background of the following segment on the
	// same line, or empty for the last segment.
	NextBackground string
}

// SplitLines partitions tokens into lines at LineBreak tokens. The break
// tokens are dropped. The result always has one more line than there are
// breaks; the last line may be empty.
func SplitLines(tokens []token.Token) [][]token.Token {
	lines := make([][]token.Token, 0, 1)
	var line []token.Token
	for _, tok := range tokens {
		if tok.Text() == LineBreak {
			lines = append(lines, line)
			line = nil
			continue
		}
		line = append(line, tok)
	}
	return append(lines, line)
}

// BuildSegments turns one line of tokens into segments. Empty tokens are
// dropped. thin replaces each field's internal separator.
//
// The line is walked backwards so each segment already knows the background
// of its successor when it is built.
func BuildSegments(line []token.Token, palette *style.Palette, thin string) []Segment {
	segs := make([]Segment, 0, len(line))
	next := ""
	for i := len(line) - 1; i >= 0; i-- {
		tok := line[i]
		text := tok.Text()
		if text == "" {
			continue
		}
		seg := newSegment(tok, text, palette, thin)
		seg.NextBackground = next
		next = seg.Background
		segs = append(segs, seg)
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return segs
}

func newSegment(tok token.Token, text string, palette *style.Palette, thin string) Segment {
	pair := palette.ColorsFor(tok.Field)
	rich, isRich := tok.Value.(token.Rich)
	if !isRich {
		return Segment{
			Text:       palette.SeparatorFor(tok.Field, text, thin),
			Field:      tok.Field,
			Foreground: pair.Foreground,
			Background: pair.Background,
		}
	}

	switch {
	case rich.Background != "":
		pair.Background = rich.Background
		pair.Foreground = rich.Foreground
		if pair.Foreground == "" {
			pair.Foreground = style.Contrast(rich.Background)
		}
	case rich.Foreground != "":
		pair.Foreground = rich.Foreground
	}

	if rich.Separator != "" {
		text = strings.ReplaceAll(text, rich.Separator, thin)
	} else {
		text = palette.SeparatorFor(tok.Field, text, thin)
	}
	return Segment{
		Text:       text,
		Field:      tok.Field,
		Foreground: pair.Foreground,
		Background: pair.Background,
	}
}
