package canvas

import (
	"image"
	"image/color"
	"reflect"
	"testing"
)

func TestCheckerboardTwoByTwo(t *testing.T) {
	light := color.RGBA{220, 220, 220, 255}
	dark := color.RGBA{100, 100, 100, 255}
	img := Checkerboard(40, 40, 20, light, dark)

	tone := func(cx, cy int) color.RGBA { return img.RGBAAt(cx*20+10, cy*20+10) }
	if tone(0, 0) != tone(1, 1) {
		t.Fatalf("cells (0,0) and (1,1) differ: %+v vs %+v", tone(0, 0), tone(1, 1))
	}
	if tone(0, 1) != tone(1, 0) {
		t.Fatalf("cells (0,1) and (1,0) differ: %+v vs %+v", tone(0, 1), tone(1, 0))
	}
	if tone(0, 0) == tone(0, 1) {
		t.Fatal("expected alternating tones")
	}
	if tone(0, 0) != dark {
		t.Fatalf("origin cell = %+v, want dark", tone(0, 0))
	}
	// every pixel inside a cell shares its tone
	for y := 0; y < 20; y++ {
		for x := 20; x < 40; x++ {
			if img.RGBAAt(x, y) != light {
				t.Fatalf("pixel (%d,%d) not light", x, y)
			}
		}
	}
}

func TestCheckerboardOddColumnsStillAlternatesRows(t *testing.T) {
	img := Checkerboard(60, 40, 20, color.White, color.Black)
	if img.RGBAAt(0, 0) == img.RGBAAt(0, 20) {
		t.Fatal("row start tone should flip")
	}
}

func TestGridLines(t *testing.T) {
	got := GridLines(100, 20)
	want := []int{20, 40, 60, 80}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GridLines = %v, want %v", got, want)
	}
	if got := GridLines(10, 20); len(got) != 0 {
		t.Fatalf("expected no lines, got %v", got)
	}
}

func TestDrawGridInteriorOnly(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	black := color.RGBA{0, 0, 0, 255}
	DrawGrid(dst, dst.Bounds(), 20, black)

	var cols, rows []int
	for x := 0; x < 100; x++ {
		if dst.RGBAAt(x, 5) == black {
			cols = append(cols, x)
		}
	}
	for y := 0; y < 100; y++ {
		if dst.RGBAAt(5, y) == black {
			rows = append(rows, y)
		}
	}
	want := []int{20, 40, 60, 80}
	if !reflect.DeepEqual(cols, want) {
		t.Fatalf("vertical lines at %v, want %v", cols, want)
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("horizontal lines at %v, want %v", rows, want)
	}
}

func TestDrawGridLeavesCanvasUntouched(t *testing.T) {
	c, _ := New(40, 40, 20)
	surface := image.NewRGBA(c.Bounds())
	DrawGrid(surface, surface.Bounds(), c.CellSize(), color.Black)
	blank, _ := New(40, 40, 20)
	if !Equal(blank.Image(), c.Image()) {
		t.Fatal("grid overlay altered canvas pixels")
	}
}

func TestDrawGridOffsetRect(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 60, 60))
	black := color.RGBA{0, 0, 0, 255}
	DrawGrid(dst, image.Rect(10, 10, 50, 50), 20, black)
	if dst.RGBAAt(30, 15) != black {
		t.Fatal("expected vertical line at rect offset 20")
	}
	if dst.RGBAAt(20, 15) == black {
		t.Fatal("unexpected line at absolute 20")
	}
	if dst.RGBAAt(30, 55) == black {
		t.Fatal("line drawn outside rect")
	}
}
