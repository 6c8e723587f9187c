package ui

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/pixelpaint/internal/editor"
	"github.com/example/pixelpaint/internal/notify"
	"github.com/example/pixelpaint/internal/palette"
	"github.com/example/pixelpaint/internal/platform"
)

func newTestWindow(t *testing.T, opts ...Option) (*Window, Layout) {
	t.Helper()
	ed, err := editor.New(100, 60)
	if err != nil {
		t.Fatal(err)
	}
	opts = append([]Option{WithPath(filepath.Join(t.TempDir(), "art.png"))}, opts...)
	w := New(ed, opts...)
	win := WindowSize(toolbarLabels(), palette.Len(), ed.Size())
	return w, w.layout(win)
}

func press(p image.Point) mouse.Event {
	return mouse.Event{X: float32(p.X), Y: float32(p.Y), Button: mouse.ButtonLeft, Direction: mouse.DirPress}
}

func move(p image.Point) mouse.Event {
	return mouse.Event{X: float32(p.X), Y: float32(p.Y), Direction: mouse.DirNone}
}

func release(p image.Point) mouse.Event {
	return mouse.Event{X: float32(p.X), Y: float32(p.Y), Button: mouse.ButtonLeft, Direction: mouse.DirRelease}
}

func buttonIndex(action string) int {
	for i, t := range toolbar {
		if t.action == action {
			return i
		}
	}
	return -1
}

func TestDragPaintsOneUndoStep(t *testing.T) {
	w, l := newTestWindow(t)
	start := l.Canvas.Min.Add(image.Pt(5, 5))
	end := l.Canvas.Min.Add(image.Pt(65, 5))

	w.handleMouse(l, press(start))
	w.handleMouse(l, move(end))
	// release outside the canvas still ends the gesture
	w.handleMouse(l, release(image.Pt(0, 0)))

	black := palette.At(0)
	for _, x := range []int{5, 25, 45, 65} {
		if got := w.editor.At(x, 5); got != black {
			t.Fatalf("pixel %d = %v, want black", x, got)
		}
	}
	if w.editor.State().Drawing {
		t.Fatal("gesture still active")
	}

	w.handleMouse(l, press(l.Buttons[buttonIndex(actionUndo)].Min.Add(image.Pt(2, 2))))
	if w.editor.At(5, 5) != (color.RGBA{}) || w.editor.CanUndo() {
		t.Fatal("undo button should revert the whole drag")
	}
}

func TestSwatchAndEraseButtons(t *testing.T) {
	w, l := newTestWindow(t)
	w.handleMouse(l, press(l.Swatches[2].Min))
	if w.editor.State().Color != palette.At(2) || w.colorIdx != 2 {
		t.Fatalf("swatch did not pick color: %+v", w.editor.State())
	}
	w.handleMouse(l, press(l.Buttons[buttonIndex(actionErase)].Min))
	if !w.editor.State().Erasing {
		t.Fatal("erase button did not enter erase mode")
	}
	if !strings.HasPrefix(w.statusText(), "Erase") {
		t.Fatalf("status = %q", w.statusText())
	}
}

func TestKeyboardShortcuts(t *testing.T) {
	w, _ := newTestWindow(t)
	w.handleKey(key.Event{Rune: '3', Direction: key.DirPress})
	if w.editor.State().Color != palette.At(2) {
		t.Fatal("digit did not pick a color")
	}
	grid := w.editor.State().ShowGrid
	w.handleKey(key.Event{Rune: 'g', Code: key.CodeG, Direction: key.DirPress})
	if w.editor.State().ShowGrid == grid {
		t.Fatal("g did not toggle the grid")
	}
	w.handleKey(key.Event{Rune: 'q', Code: key.CodeQ, Direction: key.DirRelease})
	if w.quit {
		t.Fatal("key release should be ignored")
	}
	w.handleKey(key.Event{Rune: 'q', Code: key.CodeQ, Direction: key.DirPress})
	if !w.quit {
		t.Fatal("q should quit")
	}
}

func TestSaveAndLoadActions(t *testing.T) {
	var sent []string
	n := notify.NewWithSender(notify.DefaultPreferences(), func(title, body string, opts platform.Options) error {
		sent = append(sent, body)
		return nil
	})
	n.Enable(notify.EventSave, true)
	n.Enable(notify.EventLoad, true)

	w, l := newTestWindow(t, WithNotifier(n))
	w.handleMouse(l, press(l.Canvas.Min.Add(image.Pt(10, 10))))
	w.handleMouse(l, release(l.Canvas.Min.Add(image.Pt(10, 10))))
	if !strings.HasSuffix(w.statusText(), "art.png *") {
		t.Fatalf("status should flag unsaved edits: %q", w.statusText())
	}

	w.perform(actionSave)
	if w.blocking || !strings.HasPrefix(w.message, "saved ") {
		t.Fatalf("unexpected message %q (blocking=%v)", w.message, w.blocking)
	}
	if strings.HasSuffix(w.statusText(), "*") {
		t.Fatal("save should clear the unsaved marker")
	}

	w.perform(actionClear)
	w.perform(actionLoad)
	if w.editor.At(10, 10) != palette.At(0) {
		t.Fatal("load did not restore the saved pixels")
	}
	if len(sent) != 2 || !strings.HasPrefix(sent[0], "Saved ") || !strings.HasPrefix(sent[1], "Loaded ") {
		t.Fatalf("unexpected notifications %q", sent)
	}
}

func TestClickAfterInfoMessagePaints(t *testing.T) {
	w, l := newTestWindow(t)
	w.perform(actionSave)
	if !w.messageVisible() || w.blocking {
		t.Fatalf("expected a fading info message, got %q (blocking=%v)", w.message, w.blocking)
	}
	p := l.Canvas.Min.Add(image.Pt(5, 5))
	w.handleMouse(l, press(p))
	w.handleMouse(l, release(p))
	if got := w.editor.At(5, 5); got != palette.At(0) {
		t.Fatalf("click during info message did not paint: %v", got)
	}
	if !w.messageVisible() {
		t.Fatal("info message should fade on its own")
	}
}

func TestLoadFailureBlocksUntilDismissed(t *testing.T) {
	var urgent bool
	n := notify.NewWithSender(notify.DefaultPreferences(), func(title, body string, opts platform.Options) error {
		urgent = opts.Urgent
		return nil
	})
	n.Enable(notify.EventError, true)
	w, l := newTestWindow(t, WithNotifier(n))

	w.perform(actionLoad)
	if !w.blocking || !w.messageVisible() || !strings.Contains(w.message, "load") {
		t.Fatalf("expected blocking load error, got %q", w.message)
	}
	if !urgent {
		t.Fatal("error notification should be urgent")
	}

	// keys other than Escape/Enter are swallowed while blocked
	w.handleKey(key.Event{Rune: 'g', Code: key.CodeG, Direction: key.DirPress})
	if !w.editor.State().ShowGrid {
		t.Fatal("shortcut ran behind a blocking message")
	}

	// the dismissing click does not paint
	p := l.Canvas.Min.Add(image.Pt(10, 10))
	w.handleMouse(l, press(p))
	if w.messageVisible() || w.editor.State().Drawing {
		t.Fatal("click should only dismiss the message")
	}
}

func TestClipboardActions(t *testing.T) {
	origWrite, origRead := writeClipboard, readClipboard
	t.Cleanup(func() { writeClipboard, readClipboard = origWrite, origRead })

	var copied image.Image
	writeClipboard = func(img image.Image) error { copied = img; return nil }
	pasted := image.NewRGBA(image.Rect(0, 0, 20, 20))
	pasted.SetRGBA(0, 0, palette.At(4))
	readClipboard = func() (image.Image, error) { return pasted, nil }

	w, _ := newTestWindow(t)
	w.perform(actionCopy)
	if copied == nil || copied.Bounds().Size() != image.Pt(100, 60) {
		t.Fatalf("copy wrote %v", copied)
	}
	w.perform(actionPaste)
	if w.editor.Size() != image.Pt(20, 20) || w.editor.At(0, 0) != palette.At(4) {
		t.Fatal("paste did not replace the canvas")
	}

	readClipboard = func() (image.Image, error) { return nil, errors.New("no image") }
	w.perform(actionPaste)
	if !w.blocking || !strings.Contains(w.message, "paste: no image") {
		t.Fatalf("unexpected message %q", w.message)
	}
	if w.editor.Size() != image.Pt(20, 20) {
		t.Fatal("failed paste changed the canvas")
	}
}

func TestDrawFrame(t *testing.T) {
	w, l := newTestWindow(t)
	w.pickColor(2)
	w.handleMouse(l, press(l.Canvas.Min.Add(image.Pt(30, 30))))
	w.handleMouse(l, release(l.Canvas.Min.Add(image.Pt(30, 30))))

	win := WindowSize(toolbarLabels(), palette.Len(), w.editor.Size())
	dst := image.NewRGBA(image.Rectangle{Max: win})
	w.drawFrame(dst)

	if got := dst.RGBAAt(l.Canvas.Min.X+25, l.Canvas.Min.Y+25); got != palette.At(2) {
		t.Fatalf("painted cell drawn as %v", got)
	}
	if got := dst.RGBAAt(l.Swatches[5].Min.X+8, l.Swatches[5].Min.Y+8); got != palette.At(5) {
		t.Fatalf("swatch drawn as %v", got)
	}
	if got := dst.RGBAAt(l.Status.Min.X+1, l.Status.Min.Y+1); got != w.theme.StatusBackground {
		t.Fatalf("status bar drawn as %v", got)
	}
}

func TestTitle(t *testing.T) {
	ed, err := editor.New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got := New(ed, WithPath("/tmp/sprites/hero.png")).Title(); got != "PixelPaint - hero.png" {
		t.Fatalf("title = %q", got)
	}
	if got := New(ed, WithPath("")).Title(); got != ProgramTitle {
		t.Fatalf("title = %q", got)
	}
}
