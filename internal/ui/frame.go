package ui

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font/basicfont"

	"github.com/example/pixelpaint/internal/palette"
)

// drawFrame paints the whole window into dst.
func (w *Window) drawFrame(dst *image.RGBA) {
	l := w.layout(dst.Bounds().Size())
	th := w.theme
	draw.Draw(dst, dst.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)

	w.editor.Render(dst.SubImage(l.Canvas).(*image.RGBA))

	w.drawToolbar(dst, l)
	w.drawPalette(dst, l)

	draw.Draw(dst, l.Status, &image.Uniform{th.StatusBackground}, image.Point{}, draw.Src)
	drawText(dst, l.Status.Min.X+4, l.Status.Min.Y+14, w.statusText(), th.Foreground)

	if w.messageVisible() {
		w.drawMessage(dst)
	}
}

func (w *Window) drawToolbar(dst *image.RGBA, l Layout) {
	draw.Draw(dst, l.Toolbar, &image.Uniform{w.theme.ToolbarBackground}, image.Point{}, draw.Src)
	st := w.editor.State()
	for i, b := range w.buttons {
		b.SetRect(l.Buttons[i])
		state := StateDefault
		switch {
		case toolbar[i].action == actionErase && st.Erasing,
			toolbar[i].action == actionGrid && st.ShowGrid:
			state = StatePressed
		case i == w.hoverButton:
			state = StateHover
		}
		b.Draw(dst, state)
	}
}

func (w *Window) drawPalette(dst *image.RGBA, l Layout) {
	draw.Draw(dst, l.Palette, &image.Uniform{w.theme.ToolbarBackground}, image.Point{}, draw.Src)
	erasing := w.editor.State().Erasing
	for i, e := range palette.Entries() {
		r := l.Swatches[i]
		draw.Draw(dst, r, &image.Uniform{e.Color}, image.Point{}, draw.Src)
		if i == w.hoverSwatch {
			draw.Draw(dst, r, &image.Uniform{color.RGBA{255, 255, 255, 80}}, image.Point{}, draw.Over)
		}
		if i == w.colorIdx && !erasing {
			drawRect(dst, r.Inset(-2), w.theme.Selection, 2)
		} else {
			drawRect(dst, r, w.theme.ButtonBorder, 1)
		}
	}
}

func (w *Window) drawMessage(dst *image.RGBA) {
	lines := []string{w.message}
	if w.blocking {
		lines = append(lines, "click to dismiss")
	}
	face := basicfont.Face7x13
	lineH := face.Metrics().Height.Ceil()
	width := 0
	for _, s := range lines {
		if lw := labelWidth(s); lw > width {
			width = lw
		}
	}
	b := dst.Bounds()
	px := b.Min.X + (b.Dx()-width)/2
	py := b.Min.Y + (b.Dy()-lineH*len(lines))/2
	rect := image.Rect(px-8, py-8, px+width+8, py+lineH*len(lines)+8)
	draw.Draw(dst, rect, &image.Uniform{w.theme.MessageBackground}, image.Point{}, draw.Over)
	drawRect(dst, rect, w.theme.ButtonBorder, 2)
	ascent := face.Metrics().Ascent.Ceil()
	for i, s := range lines {
		drawText(dst, px, py+ascent+i*lineH, s, w.theme.Foreground)
	}
}
