package ui

import "image"

const (
	toolbarHeight = 24
	paletteHeight = 22
	statusHeight  = 20
	buttonPadding = 6
	swatchSize    = 16
	swatchGap     = 4
)

// Layout positions the window chrome. The canvas is drawn 1:1 directly below
// the toolbar and palette row, anchored at the left edge.
type Layout struct {
	Toolbar  image.Rectangle
	Buttons  []image.Rectangle
	Palette  image.Rectangle
	Swatches []image.Rectangle
	Canvas   image.Rectangle
	Status   image.Rectangle
}

// WindowSize returns the smallest window that shows every button, every
// swatch and the whole canvas.
func WindowSize(labels []string, swatches int, canvas image.Point) image.Point {
	w := canvas.X
	if bw := buttonsWidth(labels); bw > w {
		w = bw
	}
	if sw := swatchGap + swatches*(swatchSize+swatchGap); sw > w {
		w = sw
	}
	return image.Pt(w, toolbarHeight+paletteHeight+canvas.Y+statusHeight)
}

func buttonsWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		w += labelWidth(l) + 2*buttonPadding
	}
	return w
}

// NewLayout lays out the chrome for a window of the given size.
func NewLayout(labels []string, swatches int, canvas image.Point, win image.Point) Layout {
	l := Layout{
		Toolbar: image.Rect(0, 0, win.X, toolbarHeight),
		Palette: image.Rect(0, toolbarHeight, win.X, toolbarHeight+paletteHeight),
		Status:  image.Rect(0, win.Y-statusHeight, win.X, win.Y),
	}
	x := 0
	for _, lbl := range labels {
		w := labelWidth(lbl) + 2*buttonPadding
		l.Buttons = append(l.Buttons, image.Rect(x, 0, x+w, toolbarHeight))
		x += w
	}
	x = swatchGap
	y := toolbarHeight + (paletteHeight-swatchSize)/2
	for i := 0; i < swatches; i++ {
		l.Swatches = append(l.Swatches, image.Rect(x, y, x+swatchSize, y+swatchSize))
		x += swatchSize + swatchGap
	}
	origin := image.Pt(0, toolbarHeight+paletteHeight)
	l.Canvas = image.Rectangle{Min: origin, Max: origin.Add(canvas)}
	return l
}

// ButtonAt returns the index of the toolbar button under p, or -1.
func (l Layout) ButtonAt(p image.Point) int { return indexAt(l.Buttons, p) }

// SwatchAt returns the index of the palette swatch under p, or -1.
func (l Layout) SwatchAt(p image.Point) int { return indexAt(l.Swatches, p) }

// InCanvas reports whether p lies over the drawn canvas.
func (l Layout) InCanvas(p image.Point) bool { return p.In(l.Canvas) }

// CanvasPoint converts a window point to canvas pixel coordinates. The result
// may lie outside the canvas.
func (l Layout) CanvasPoint(p image.Point) image.Point { return p.Sub(l.Canvas.Min) }

func indexAt(rects []image.Rectangle, p image.Point) int {
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}
