package style

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Named colours. Values are symbolic: either a base colour name understood
// by the markup engine or a hex string.
// Hex values taken from https://www.w3schools.com/colors/colors_trends.asp.
const (
	Cyan         = "CYAN"
	Red          = "RED"
	White        = "WHITE"
	IntenseWhite = "INTENSE_WHITE"
	Green        = "#88B04B"
	Emerald      = "#009B77"
	Gray         = "#181818"
	Blue         = "#34568B"
	Orange       = "#FF6F61"
	Brown        = "#955251"
	Rose         = "#F7CAC9"
	Pink         = "#B565A7"
	Serene       = "#92A8D1"
	Yellow       = "#F3E0BE"
	Sand         = "#DFCFBE"
	Violet       = "#6B5B95"
)

// baseColors maps the base terminal colour names to representative RGB
// values so their luminance can be estimated.
var baseColors = map[string]string{
	"BLACK":          "#000000",
	"RED":            "#800000",
	"GREEN":          "#008000",
	"YELLOW":         "#808000",
	"BLUE":           "#000080",
	"PURPLE":         "#800080",
	"CYAN":           "#008080",
	"WHITE":          "#C0C0C0",
	"INTENSE_BLACK":  "#808080",
	"INTENSE_RED":    "#FF0000",
	"INTENSE_GREEN":  "#00FF00",
	"INTENSE_YELLOW": "#FFFF00",
	"INTENSE_BLUE":   "#0000FF",
	"INTENSE_PURPLE": "#FF00FF",
	"INTENSE_CYAN":   "#00FFFF",
	"INTENSE_WHITE":  "#FFFFFF",
}

// ansiNames lists the base colour names in terminal palette order.
var ansiNames = [...]string{"BLACK", "RED", "GREEN", "YELLOW", "BLUE", "PURPLE", "CYAN", "WHITE"}

// ANSIIndex returns the 16-colour terminal palette index of a base colour
// name such as CYAN or INTENSE_WHITE. ok is false for anything else,
// including hex colours.
func ANSIIndex(color string) (idx int, ok bool) {
	name := strings.ToUpper(strings.TrimSpace(color))
	offset := 0
	if rest, found := strings.CutPrefix(name, "INTENSE_"); found {
		name, offset = rest, 8
	}
	for i, n := range ansiNames {
		if n == name {
			return i + offset, true
		}
	}
	return 0, false
}

// brightLuminance is the relative luminance above which a background is
// considered bright enough to need dark text.
const brightLuminance = 0.4

// Luminance returns the relative luminance (0..1) of a symbolic colour.
// ok is false when the colour is neither a base colour name nor parseable hex.
func Luminance(color string) (lum float64, ok bool) {
	hx := strings.TrimSpace(color)
	if mapped, found := baseColors[strings.ToUpper(hx)]; found {
		hx = mapped
	}
	if !strings.HasPrefix(hx, "#") {
		hx = "#" + hx
	}
	c, err := colorful.Hex(hx)
	if err != nil {
		return 0, false
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, true
}

// Contrast returns a foreground colour readable on the given background:
// Gray on bright backgrounds, IntenseWhite otherwise or when the
// background cannot be interpreted.
func Contrast(background string) string {
	lum, ok := Luminance(background)
	if ok && lum > brightLuminance {
		return Gray
	}
	return IntenseWhite
}
