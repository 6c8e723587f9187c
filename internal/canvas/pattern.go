package canvas

import (
	"image"
	"image/color"
	"image/draw"
)

// Default checkerboard tones shown beneath transparent pixels.
var (
	CheckerLight = color.RGBA{211, 211, 211, 255}
	CheckerDark  = color.RGBA{169, 169, 169, 255}
)

// Checkerboard renders a two-tone background of cellSize squares. The cell at
// the origin uses dark and tones alternate along both axes.
func Checkerboard(width, height, cellSize int, light, dark color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	lu, du := image.NewUniform(light), image.NewUniform(dark)
	for y := 0; y < height; y += cellSize {
		for x := 0; x < width; x += cellSize {
			src := lu
			if (x/cellSize+y/cellSize)%2 == 0 {
				src = du
			}
			draw.Draw(img, image.Rect(x, y, x+cellSize, y+cellSize).Intersect(img.Bounds()), src, image.Point{}, draw.Src)
		}
	}
	return img
}

// GridLines lists the offsets of the interior grid lines across length
// pixels. The outer edges are never included.
func GridLines(length, cellSize int) []int {
	if cellSize <= 0 {
		return nil
	}
	var out []int
	for p := cellSize; p < length; p += cellSize {
		out = append(out, p)
	}
	return out
}

// DrawGrid draws one pixel wide lines at every interior cell boundary of rect
// onto dst. Offsets are measured from rect.Min.
func DrawGrid(dst draw.Image, rect image.Rectangle, cellSize int, col color.Color) {
	src := image.NewUniform(col)
	clip := rect.Intersect(dst.Bounds())
	for _, x := range GridLines(rect.Dx(), cellSize) {
		line := image.Rect(rect.Min.X+x, rect.Min.Y, rect.Min.X+x+1, rect.Max.Y).Intersect(clip)
		draw.Draw(dst, line, src, image.Point{}, draw.Over)
	}
	for _, y := range GridLines(rect.Dy(), cellSize) {
		line := image.Rect(rect.Min.X, rect.Min.Y+y, rect.Max.X, rect.Min.Y+y+1).Intersect(clip)
		draw.Draw(dst, line, src, image.Point{}, draw.Over)
	}
}
