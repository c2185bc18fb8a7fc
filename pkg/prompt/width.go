package prompt

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/plprompt/pkg/markup"
)

// VisibleWidth returns the terminal cell width of the widest line of a
// rendered prompt once the dialect's markers are removed.
func VisibleWidth(rendered string, d markup.Dialect) int {
	widest := 0
	for _, line := range strings.Split(d.Strip(rendered), LineBreak) {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}
