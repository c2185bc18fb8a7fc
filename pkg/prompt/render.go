package prompt

import (
	"strings"

	"github.com/dkoosis/plprompt/pkg/glyph"
	"github.com/dkoosis/plprompt/pkg/markup"
)

// RenderLeft renders one line of a left-aligned prompt.
//
// Each coloured block ends with the mode's separator painted in the block's
// background over the next block's background. The last block of a chain is
// capped with a separator that fades into the terminal's own background.
// Segments without a background are written as bare text; a coloured run
// of them is reset before the next block or the end of the line.
func RenderLeft(mode glyph.Mode, d markup.Dialect, segs []Segment) string {
	var sb strings.Builder
	for i, seg := range segs {
		if seg.Background == "" {
			if seg.Foreground != "" {
				sb.WriteString(d.Foreground(seg.Foreground))
			}
			sb.WriteString(d.Escape(seg.Text))
			if seg.Foreground != "" && (i == len(segs)-1 || segs[i+1].Background == "") {
				sb.WriteString(d.Reset())
			}
			continue
		}

		if i == 0 || segs[i-1].Background == "" {
			sb.WriteString(d.Background(seg.Background))
		}
		if seg.Foreground != "" {
			sb.WriteString(d.Foreground(seg.Foreground))
		}
		sb.WriteString(d.Escape(seg.Text))

		if seg.NextBackground != "" {
			sb.WriteString(d.Background(seg.NextBackground))
			sb.WriteString(d.Foreground(seg.Background))
			sb.WriteString(mode.Separator)
			continue
		}
		sb.WriteString(d.Reset())
		sb.WriteString(d.Foreground(seg.Background))
		sb.WriteString(mode.Separator)
		sb.WriteString(d.Reset())
	}
	return sb.String()
}

// RenderRight renders one line of a right-aligned prompt. Right prompts grow
// leftwards, so each block is preceded by its separator. No trailing reset
// is written.
func RenderRight(mode glyph.Mode, d markup.Dialect, segs []Segment) string {
	var sb strings.Builder
	for _, seg := range segs {
		if seg.Background == "" {
			sb.WriteString(d.Escape(seg.Text))
			continue
		}
		sb.WriteString(d.Foreground(seg.Background))
		sb.WriteString(mode.RightSeparator)
		sb.WriteString(d.Background(seg.Background))
		if seg.Foreground != "" {
			sb.WriteString(d.Foreground(seg.Foreground))
		}
		sb.WriteString(d.Escape(seg.Text))
	}
	return sb.String()
}
