// Package palette defines the fixed set of drawing colors offered by the
// editor and parses user supplied color specs.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Entry is a named palette color.
type Entry struct {
	Name  string
	Color color.RGBA
}

const defaultIndex = 0

var entries = []Entry{
	{"Black", color.RGBA{0, 0, 0, 255}},
	{"White", color.RGBA{255, 255, 255, 255}},
	{"Red", color.RGBA{255, 0, 0, 255}},
	{"Lime", color.RGBA{0, 255, 0, 255}},
	{"Blue", color.RGBA{0, 0, 255, 255}},
	{"Yellow", color.RGBA{255, 255, 0, 255}},
	{"Cyan", color.RGBA{0, 255, 255, 255}},
	{"Magenta", color.RGBA{255, 0, 255, 255}},
	{"Maroon", color.RGBA{128, 0, 0, 255}},
	{"Green", color.RGBA{0, 128, 0, 255}},
	{"Navy", color.RGBA{0, 0, 128, 255}},
	{"Olive", color.RGBA{128, 128, 0, 255}},
	{"Teal", color.RGBA{0, 128, 128, 255}},
	{"Purple", color.RGBA{128, 0, 128, 255}},
	{"Silver", color.RGBA{192, 192, 192, 255}},
	{"Gray", color.RGBA{128, 128, 128, 255}},
}

// Entries returns a copy of the palette.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Len reports the number of palette colors.
func Len() int { return len(entries) }

// DefaultIndex returns the index of the initial drawing color.
func DefaultIndex() int { return defaultIndex }

// At returns the color at idx, clamping out of range indexes.
func At(idx int) color.RGBA {
	return entries[Clamp(idx)].Color
}

// Clamp limits idx to the palette range.
func Clamp(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx >= len(entries) {
		return len(entries) - 1
	}
	return idx
}

// IndexOf returns the palette index of c, or -1.
func IndexOf(c color.RGBA) int {
	for i, e := range entries {
		if e.Color == c {
			return i
		}
	}
	return -1
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Parse resolves a palette name, an SVG color name or a #RRGGBB[AA] hex value.
func Parse(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	for _, e := range entries {
		if strings.EqualFold(e.Name, spec) {
			return e.Color, nil
		}
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if strings.HasPrefix(spec, "#") && (len(spec) == 7 || len(spec) == 9) {
		var parts [4]uint8
		parts[3] = 255
		for i := 0; i*2+1 < len(spec); i++ {
			v, err := strconv.ParseUint(spec[1+i*2:3+i*2], 16, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid color %q", s)
			}
			parts[i] = uint8(v)
		}
		// hex values are straight alpha; the canvas stores premultiplied
		nrgba := color.NRGBA{parts[0], parts[1], parts[2], parts[3]}
		return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}
