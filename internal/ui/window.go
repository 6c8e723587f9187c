// Package ui is the editor window. It translates shiny events into editor
// commands and paints the chrome around the canvas. Everything runs on the
// event loop goroutine.
package ui

import (
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/pixelpaint/internal/clipboard"
	"github.com/example/pixelpaint/internal/editor"
	"github.com/example/pixelpaint/internal/notify"
	"github.com/example/pixelpaint/internal/palette"
	"github.com/example/pixelpaint/internal/theme"
)

// ProgramTitle prefixes the window title.
const ProgramTitle = "PixelPaint"

const messageDuration = 2 * time.Second

var (
	writeClipboard = clipboard.WriteImage
	readClipboard  = clipboard.ReadImage
)

type toolbarEntry struct {
	label  string
	action string
}

var toolbar = []toolbarEntry{
	{"Erase", actionErase},
	{"Clear", actionClear},
	{"Undo", actionUndo},
	{"Redo", actionRedo},
	{"Grid", actionGrid},
	{"Save", actionSave},
	{"Load", actionLoad},
	{"Copy", actionCopy},
	{"Paste", actionPaste},
}

func toolbarLabels() []string {
	labels := make([]string, len(toolbar))
	for i, t := range toolbar {
		labels[i] = t.label
	}
	return labels
}

// Window holds the editor and the chrome state of the window around it.
type Window struct {
	editor   *editor.Editor
	theme    *theme.Theme
	path     string
	notifier *notify.Notifier
	colorIdx int

	buttons []*CacheButton

	message      string
	messageUntil time.Time
	// blocking messages stay until dismissed by a click or key
	blocking bool

	hoverButton int
	hoverSwatch int
	quit        bool

	// repaint asks the event loop for a frame from another goroutine
	repaint func()
}

// Option modifies a Window during creation.
type Option func(*Window)

// WithTheme sets the chrome colors.
func WithTheme(t *theme.Theme) Option { return func(w *Window) { w.theme = t } }

// WithPath sets the file used by save and load.
func WithPath(path string) Option { return func(w *Window) { w.path = path } }

// WithNotifier sets the desktop notifier for file and clipboard events.
func WithNotifier(n *notify.Notifier) Option { return func(w *Window) { w.notifier = n } }

// WithColorIndex marks a palette entry as the selected swatch.
func WithColorIndex(idx int) Option { return func(w *Window) { w.colorIdx = idx } }

// New creates a window around ed.
func New(ed *editor.Editor, opts ...Option) *Window {
	w := &Window{
		editor:      ed,
		theme:       theme.Default(),
		path:        "pixelart.png",
		colorIdx:    palette.IndexOf(ed.State().Color),
		hoverButton: -1,
		hoverSwatch: -1,
	}
	for _, o := range opts {
		o(w)
	}
	for _, t := range toolbar {
		action := t.action
		w.buttons = append(w.buttons, newActionButton(t.label, action, w.theme, func() { w.perform(action) }))
	}
	return w
}

// Title returns the window title for the current file.
func (w *Window) Title() string {
	if w.path == "" {
		return ProgramTitle
	}
	return ProgramTitle + " - " + filepath.Base(w.path)
}

// Run executes the UI loop using shiny's driver.
func (w *Window) Run() { driver.Main(w.Main) }

func (w *Window) Main(s screen.Screen) {
	winSize := WindowSize(toolbarLabels(), palette.Len(), w.editor.Size())
	win, err := s.NewWindow(&screen.NewWindowOptions{Width: winSize.X, Height: winSize.Y, Title: w.Title()})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer win.Release()
	w.repaint = func() { win.Send(paint.Event{}) }

	var buf screen.Buffer
	defer func() {
		if buf != nil {
			buf.Release()
		}
	}()

	for {
		switch e := win.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				w.close()
				return
			}
		case size.Event:
			winSize = e.Size()
			win.Send(paint.Event{})
		case paint.Event:
			if buf == nil || buf.Size() != winSize {
				if buf != nil {
					buf.Release()
				}
				buf, err = s.NewBuffer(winSize)
				if err != nil {
					log.Printf("new buffer: %v", err)
					buf = nil
					continue
				}
			}
			w.drawFrame(buf.RGBA())
			win.Upload(image.Point{}, buf, buf.Bounds())
			win.Publish()
		case mouse.Event:
			if w.handleMouse(w.layout(winSize), e) {
				win.Send(paint.Event{})
			}
		case key.Event:
			if w.handleKey(e) {
				win.Send(paint.Event{})
			}
			if w.quit {
				w.close()
				return
			}
		}
	}
}

func (w *Window) layout(win image.Point) Layout {
	return NewLayout(toolbarLabels(), palette.Len(), w.editor.Size(), win)
}

func (w *Window) close() {
	if w.editor.Dirty() {
		log.Printf("closing with unsaved changes to %s", w.path)
	}
}

// handleMouse applies a mouse event and reports whether a repaint is needed.
func (w *Window) handleMouse(l Layout, e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	if w.blocking && e.Direction == mouse.DirPress {
		w.dismiss()
		return true
	}
	st := w.editor.State()
	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return false
		}
		if idx := l.ButtonAt(p); idx >= 0 {
			w.buttons[idx].Activate()
			return true
		}
		if idx := l.SwatchAt(p); idx >= 0 {
			w.pickColor(idx)
			return true
		}
		if l.InCanvas(p) {
			cp := l.CanvasPoint(p)
			w.editor.PointerDown(cp.X, cp.Y)
			return true
		}
	case mouse.DirRelease:
		if e.Button == mouse.ButtonLeft && st.Drawing {
			w.editor.PointerUp()
			return true
		}
	case mouse.DirNone:
		if st.Drawing {
			cp := l.CanvasPoint(p)
			w.editor.PointerMove(cp.X, cp.Y)
			return true
		}
		hb, hs := l.ButtonAt(p), l.SwatchAt(p)
		if hb != w.hoverButton || hs != w.hoverSwatch {
			w.hoverButton, w.hoverSwatch = hb, hs
			return true
		}
	}
	return false
}

// handleKey applies a key press and reports whether a repaint is needed.
func (w *Window) handleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	if w.blocking {
		if e.Code == key.CodeEscape || e.Code == key.CodeReturnEnter {
			w.dismiss()
			return true
		}
		return false
	}
	if action, ok := actionFor(e); ok {
		w.perform(action)
		return true
	}
	if idx, ok := paletteKey(e); ok {
		w.pickColor(idx)
		return true
	}
	return false
}

func (w *Window) pickColor(idx int) {
	w.colorIdx = palette.Clamp(idx)
	w.editor.ColorPicked(palette.At(w.colorIdx))
}

// perform runs a toolbar or keyboard action.
func (w *Window) perform(action string) {
	ed := w.editor
	switch action {
	case actionErase:
		ed.EraseModeSelected()
	case actionClear:
		ed.Clear()
	case actionUndo:
		ed.Undo()
	case actionRedo:
		ed.Redo()
	case actionGrid:
		ed.ToggleGrid()
	case actionSave:
		if err := ed.Save(w.path); err != nil {
			w.fail(err)
			return
		}
		w.info(fmt.Sprintf("saved %s", w.path))
		w.notifier.Save(w.path)
	case actionLoad:
		if err := ed.Load(w.path); err != nil {
			w.fail(err)
			return
		}
		w.info(fmt.Sprintf("loaded %s", w.path))
		w.notifier.Load(w.path)
	case actionCopy:
		if err := writeClipboard(ed.Image()); err != nil {
			w.fail(fmt.Errorf("copy: %w", err))
			return
		}
		w.info("image copied to clipboard")
		w.notifier.Copy("image")
	case actionPaste:
		img, err := readClipboard()
		if err != nil {
			w.fail(fmt.Errorf("paste: %w", err))
			return
		}
		if err := ed.ReplaceImage(img); err != nil {
			w.fail(fmt.Errorf("paste: %w", err))
			return
		}
		w.info("pasted image from clipboard")
	case actionQuit:
		w.quit = true
	default:
		log.Printf("unknown action %q", action)
	}
}

func (w *Window) info(msg string) {
	log.Print(msg)
	w.message = msg
	w.messageUntil = time.Now().Add(messageDuration)
	w.blocking = false
	if w.repaint != nil {
		time.AfterFunc(messageDuration, w.repaint)
	}
}

func (w *Window) fail(err error) {
	log.Printf("%v", err)
	w.message = err.Error()
	w.blocking = true
	w.notifier.Error(err)
}

func (w *Window) messageVisible() bool {
	if w.message == "" {
		return false
	}
	return w.blocking || time.Now().Before(w.messageUntil)
}

func (w *Window) dismiss() {
	w.message = ""
	w.blocking = false
	w.messageUntil = time.Time{}
}

// statusText summarizes the editor state for the status bar.
func (w *Window) statusText() string {
	st := w.editor.State()
	parts := make([]string, 0, 4)
	if st.Erasing {
		parts = append(parts, "Erase")
	} else if idx := palette.IndexOf(st.Color); idx >= 0 {
		parts = append(parts, palette.Entries()[idx].Name)
	} else {
		parts = append(parts, palette.Hex(st.Color))
	}
	if st.ShowGrid {
		parts = append(parts, "grid on")
	} else {
		parts = append(parts, "grid off")
	}
	sz := w.editor.Size()
	parts = append(parts, fmt.Sprintf("%dx%d", sz.X, sz.Y))
	name := filepath.Base(w.path)
	if w.editor.Dirty() {
		name += " *"
	}
	parts = append(parts, name)
	return strings.Join(parts, "  |  ")
}
