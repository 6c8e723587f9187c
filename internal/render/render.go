// Package render composites the canvas onto a display or export surface.
package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/example/pixelpaint/internal/canvas"
)

// Options configures how a canvas is composited.
type Options struct {
	// CellSize is the grid cell edge in canvas pixels.
	CellSize int
	// Grid enables the cell grid overlay.
	Grid      bool
	GridColor color.Color
	// Background is drawn beneath the canvas. When nil the canvas is drawn
	// onto whatever dst already holds.
	Background image.Image
}

// Compose draws, in order, the background, the canvas pixels and the grid
// overlay. The canvas is anchored at dst.Bounds().Min.
func Compose(dst draw.Image, src image.Image, opts Options) image.Rectangle {
	sb := src.Bounds()
	r := image.Rectangle{Min: dst.Bounds().Min, Max: dst.Bounds().Min.Add(sb.Size())}
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return r
	}
	if opts.Background != nil {
		draw.Draw(dst, r, opts.Background, opts.Background.Bounds().Min, draw.Src)
	}
	draw.Draw(dst, r, src, sb.Min, draw.Over)
	if opts.Grid {
		col := opts.GridColor
		if col == nil {
			col = color.Black
		}
		full := image.Rectangle{Min: r.Min, Max: r.Min.Add(sb.Size())}
		canvas.DrawGrid(dst, full, opts.CellSize, col)
	}
	return r
}

// Backdrop caches a checkerboard sized to the most recent request so a
// repaint only rebuilds it when the canvas dimensions change.
type Backdrop struct {
	Light, Dark color.Color
	cellSize    int
	img         *image.RGBA
}

// NewBackdrop creates a backdrop with the given tones.
func NewBackdrop(light, dark color.Color) *Backdrop {
	return &Backdrop{Light: light, Dark: dark}
}

// For returns a checkerboard covering size, regenerating it if needed.
func (b *Backdrop) For(size image.Point, cellSize int) *image.RGBA {
	if b.img == nil || b.img.Bounds().Size() != size || b.cellSize != cellSize {
		b.img = canvas.Checkerboard(size.X, size.Y, cellSize, b.Light, b.Dark)
		b.cellSize = cellSize
	}
	return b.img
}

// Reset drops the cached image, e.g. after a theme change.
func (b *Backdrop) Reset() { b.img = nil }

// Scale enlarges img by an integer factor using nearest neighbour sampling so
// cell edges stay sharp.
func Scale(img image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	sb := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, sb.Dx()*factor, sb.Dy()*factor))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), img, sb, draw.Src, nil)
	return out
}
