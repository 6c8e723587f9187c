package ui

import (
	"image"
	"testing"
)

func TestWindowSizeFitsCanvas(t *testing.T) {
	labels := toolbarLabels()
	got := WindowSize(labels, 16, image.Pt(640, 480))
	if got.X != 640 {
		t.Fatalf("width = %d, want canvas width 640", got.X)
	}
	if want := 480 + toolbarHeight + paletteHeight + statusHeight; got.Y != want {
		t.Fatalf("height = %d, want %d", got.Y, want)
	}

	small := WindowSize(labels, 16, image.Pt(40, 40))
	if small.X < buttonsWidth(labels) {
		t.Fatalf("width %d cuts off the toolbar (%d)", small.X, buttonsWidth(labels))
	}
}

func TestLayoutHitTesting(t *testing.T) {
	labels := toolbarLabels()
	canvas := image.Pt(200, 100)
	win := WindowSize(labels, 16, canvas)
	l := NewLayout(labels, 16, canvas, win)

	if len(l.Buttons) != len(labels) || len(l.Swatches) != 16 {
		t.Fatalf("unexpected layout %+v", l)
	}
	for i, r := range l.Buttons {
		if got := l.ButtonAt(r.Min.Add(image.Pt(2, 2))); got != i {
			t.Fatalf("ButtonAt(button %d) = %d", i, got)
		}
		if i > 0 && r.Min.X != l.Buttons[i-1].Max.X {
			t.Fatalf("button %d is not adjacent to its neighbour", i)
		}
	}
	for i, r := range l.Swatches {
		if got := l.SwatchAt(r.Min.Add(image.Pt(1, 1))); got != i {
			t.Fatalf("SwatchAt(swatch %d) = %d", i, got)
		}
	}

	p := l.Canvas.Min.Add(image.Pt(25, 30))
	if !l.InCanvas(p) || l.ButtonAt(p) != -1 || l.SwatchAt(p) != -1 {
		t.Fatal("canvas point hit chrome")
	}
	if got := l.CanvasPoint(p); got != image.Pt(25, 30) {
		t.Fatalf("CanvasPoint = %v", got)
	}
	if got := l.CanvasPoint(image.Pt(0, 0)); got.Y >= 0 {
		t.Fatalf("toolbar point should map above the canvas, got %v", got)
	}
	if l.InCanvas(l.Status.Min) {
		t.Fatal("status bar overlaps the canvas")
	}
}
