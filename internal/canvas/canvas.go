// Package canvas holds the pixel buffer painted by the editor. All edits are
// whole-cell fills; a cell is a cellSize x cellSize block of real pixels.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// DefaultCellSize is the edge length in pixels of one grid cell.
const DefaultCellSize = 20

// ErrInvalidDimension is returned when a canvas is created with a
// non-positive width, height or cell size.
var ErrInvalidDimension = errors.New("invalid canvas dimension")

// Canvas is a fixed-size RGBA buffer addressed in screen pixels.
type Canvas struct {
	img      *image.RGBA
	cellSize int
}

// New allocates a fully transparent canvas.
func New(width, height, cellSize int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %d", ErrInvalidDimension, cellSize)
	}
	return &Canvas{
		img:      image.NewRGBA(image.Rect(0, 0, width, height)),
		cellSize: cellSize,
	}, nil
}

// FromImage creates a canvas holding a copy of img, rebased to a zero origin.
func FromImage(img image.Image, cellSize int) (*Canvas, error) {
	b := img.Bounds()
	c, err := New(b.Dx(), b.Dy(), cellSize)
	if err != nil {
		return nil, err
	}
	draw.Draw(c.img, c.img.Bounds(), img, b.Min, draw.Src)
	return c, nil
}

// Bounds reports the canvas rectangle. The origin is always (0, 0).
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// CellSize reports the edge length of a cell in pixels.
func (c *Canvas) CellSize() int { return c.cellSize }

// Cell maps a screen point to its grid cell. ok is false when the point lies
// outside the canvas.
func (c *Canvas) Cell(x, y int) (cell image.Point, ok bool) {
	if !image.Pt(x, y).In(c.img.Bounds()) {
		return image.Point{}, false
	}
	return image.Pt(x/c.cellSize, y/c.cellSize), true
}

// cellRect returns the pixel block of a cell clipped to the canvas.
func (c *Canvas) cellRect(cell image.Point) image.Rectangle {
	min := cell.Mul(c.cellSize)
	r := image.Rectangle{Min: min, Max: min.Add(image.Pt(c.cellSize, c.cellSize))}
	return r.Intersect(c.img.Bounds())
}

func (c *Canvas) fillCell(cell image.Point, col color.Color) {
	r := c.cellRect(cell)
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// PaintCell fills the cell containing (x, y) with col, replacing whatever was
// there. Points outside the canvas are ignored.
func (c *Canvas) PaintCell(x, y int, col color.Color) {
	cell, ok := c.Cell(x, y)
	if !ok {
		return
	}
	c.fillCell(cell, col)
}

// EraseCell makes the cell containing (x, y) fully transparent.
func (c *Canvas) EraseCell(x, y int) {
	c.PaintCell(x, y, color.Transparent)
}

// PaintLine fills every cell on the straight line between the cells holding
// the two points. Cells falling outside the canvas are skipped.
func (c *Canvas) PaintLine(x0, y0, x1, y1 int, col color.Color) {
	cx0, cy0 := floorDiv(x0, c.cellSize), floorDiv(y0, c.cellSize)
	cx1, cy1 := floorDiv(x1, c.cellSize), floorDiv(y1, c.cellSize)
	grid := image.Rect(0, 0, ceilDiv(c.img.Bounds().Dx(), c.cellSize), ceilDiv(c.img.Bounds().Dy(), c.cellSize))
	walkLine(cx0, cy0, cx1, cy1, func(p image.Point) {
		if p.In(grid) {
			c.fillCell(p, col)
		}
	})
}

// Clear resets every pixel to fully transparent.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// Replace swaps the buffer contents for a copy of img. The canvas adopts the
// dimensions of img.
func (c *Canvas) Replace(img image.Image) error {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, b.Dx(), b.Dy())
	}
	if b.Size() != c.img.Bounds().Size() {
		c.img = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Draw(c.img, c.img.Bounds(), img, b.Min, draw.Src)
	return nil
}

// At returns the pixel at (x, y). Points outside the canvas read as
// transparent.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Image returns a deep copy of the pixel buffer.
func (c *Canvas) Image() *image.RGBA {
	return Clone(c.img)
}

// View exposes the live buffer for read-only drawing.
func (c *Canvas) View() image.Image { return c.img }

// Clone deep copies img.
func Clone(img *image.RGBA) *image.RGBA {
	if img == nil {
		return nil
	}
	out := &image.RGBA{
		Pix:    make([]uint8, len(img.Pix)),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	copy(out.Pix, img.Pix)
	return out
}

// Equal reports whether a and b have the same bounds and pixels.
func Equal(a, b *image.RGBA) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !a.Rect.Eq(b.Rect) {
		return false
	}
	for y := a.Rect.Min.Y; y < a.Rect.Max.Y; y++ {
		for x := a.Rect.Min.X; x < a.Rect.Max.X; x++ {
			if a.RGBAAt(x, y) != b.RGBAAt(x, y) {
				return false
			}
		}
	}
	return true
}

func walkLine(x0, y0, x1, y1 int, visit func(image.Point)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		visit(image.Pt(x0, y0))
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
