// Package editor ties the canvas and its history to the commands issued by a
// window layer. An Editor is not safe for concurrent use; all calls are
// expected to come from the event loop.
package editor

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/pixelpaint/internal/canvas"
	"github.com/example/pixelpaint/internal/history"
	"github.com/example/pixelpaint/internal/render"
)

// State is the mutable editor state a window reflects in its chrome.
type State struct {
	Color    color.RGBA
	Erasing  bool
	ShowGrid bool
	// Drawing is true between PointerDown and PointerUp.
	Drawing bool
}

// LoadPolicy decides what happens when a loaded image is not the size of the
// working canvas.
type LoadPolicy int

const (
	// LoadResize makes the canvas adopt the loaded image's size.
	LoadResize LoadPolicy = iota
	// LoadReject refuses images whose size differs from the canvas.
	LoadReject
)

// Editor owns the canvas, its history and the editor state.
type Editor struct {
	state    State
	canvas   *canvas.Canvas
	history  *history.Stack
	backdrop *render.Backdrop

	cellSize     int
	historyLimit int
	gridColor    color.Color
	policy       LoadPolicy
	onChange     func()

	last  image.Point
	dirty bool
	// saved is the canvas as last written or read from disk
	saved *image.RGBA
}

// Option modifies an Editor during creation.
type Option func(*Editor)

// WithCellSize sets the edge length of a grid cell in pixels.
func WithCellSize(n int) Option { return func(e *Editor) { e.cellSize = n } }

// WithColor sets the initial drawing color.
func WithColor(c color.RGBA) Option { return func(e *Editor) { e.state.Color = c } }

// WithGrid sets the initial grid visibility.
func WithGrid(show bool) Option { return func(e *Editor) { e.state.ShowGrid = show } }

// WithHistoryLimit caps the undo depth. Zero keeps every snapshot.
func WithHistoryLimit(n int) Option { return func(e *Editor) { e.historyLimit = n } }

// WithLoadPolicy sets how mismatched image sizes are handled on load.
func WithLoadPolicy(p LoadPolicy) Option { return func(e *Editor) { e.policy = p } }

// WithCheckerColors sets the tones of the transparency backdrop.
func WithCheckerColors(light, dark color.Color) Option {
	return func(e *Editor) { e.backdrop = render.NewBackdrop(light, dark) }
}

// WithGridColor sets the grid overlay color.
func WithGridColor(c color.Color) Option { return func(e *Editor) { e.gridColor = c } }

// WithOnChange registers a callback invoked after every visible change.
func WithOnChange(fn func()) Option { return func(e *Editor) { e.onChange = fn } }

// New creates an Editor with a blank canvas and initialized history.
func New(width, height int, opts ...Option) (*Editor, error) {
	e := &Editor{
		state:     State{Color: color.RGBA{0, 0, 0, 255}, ShowGrid: true},
		cellSize:  canvas.DefaultCellSize,
		gridColor: color.Black,
		backdrop:  render.NewBackdrop(canvas.CheckerLight, canvas.CheckerDark),
	}
	for _, o := range opts {
		o(e)
	}
	c, err := canvas.New(width, height, e.cellSize)
	if err != nil {
		return nil, err
	}
	e.canvas = c
	e.history = history.New(history.WithLimit(e.historyLimit))
	e.history.Initialize(c.Image())
	e.saved = c.Image()
	return e, nil
}

// State returns a copy of the current editor state.
func (e *Editor) State() State { return e.state }

// Size reports the canvas dimensions in pixels.
func (e *Editor) Size() image.Point { return e.canvas.Bounds().Size() }

// CellSize reports the grid cell edge in pixels.
func (e *Editor) CellSize() int { return e.canvas.CellSize() }

// Image returns a copy of the canvas pixels.
func (e *Editor) Image() *image.RGBA { return e.canvas.Image() }

// At reads a single canvas pixel.
func (e *Editor) At(x, y int) color.RGBA { return e.canvas.At(x, y) }

// CanUndo reports whether Undo would change the canvas.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would change the canvas.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// Dirty reports whether there are edits not yet saved or loaded.
func (e *Editor) Dirty() bool { return e.dirty }

// PointerDown starts a gesture and paints the cell under the pointer.
// A gesture still open from a lost release is committed first.
func (e *Editor) PointerDown(x, y int) {
	e.finishGesture()
	e.state.Drawing = true
	e.last = image.Pt(x, y)
	e.apply(func(col color.Color) { e.canvas.PaintCell(x, y, col) })
}

// PointerMove paints from the previous pointer position to (x, y) while a
// gesture is active. Moves outside a gesture are ignored.
func (e *Editor) PointerMove(x, y int) {
	if !e.state.Drawing {
		return
	}
	from := e.last
	e.last = image.Pt(x, y)
	e.apply(func(col color.Color) { e.canvas.PaintLine(from.X, from.Y, x, y, col) })
}

// PointerUp ends the gesture and records it as one undoable edit.
func (e *Editor) PointerUp() {
	if !e.state.Drawing {
		return
	}
	e.state.Drawing = false
	e.commit()
}

// ColorPicked sets the drawing color and leaves erase mode.
func (e *Editor) ColorPicked(c color.RGBA) {
	e.state.Color = c
	e.state.Erasing = false
	e.changed()
}

// EraseModeSelected makes subsequent gestures erase cells.
func (e *Editor) EraseModeSelected() {
	e.state.Erasing = true
	e.changed()
}

// ToggleGrid flips grid overlay visibility.
func (e *Editor) ToggleGrid() {
	e.state.ShowGrid = !e.state.ShowGrid
	e.changed()
}

// Clear erases the whole canvas as one undoable edit.
func (e *Editor) Clear() {
	e.finishGesture()
	e.canvas.Clear()
	e.commit()
}

// Undo restores the previous committed state. At the initial state it does
// nothing.
func (e *Editor) Undo() {
	e.finishGesture()
	img, ok := e.history.Undo()
	if !ok {
		return
	}
	e.restore(img)
}

// Redo re-applies the most recently undone edit.
func (e *Editor) Redo() {
	e.finishGesture()
	img, ok := e.history.Redo()
	if !ok {
		return
	}
	e.restore(img)
}

// Render draws the checkerboard, the canvas and, when enabled, the grid onto
// dst anchored at dst.Bounds().Min. It returns the rectangle covered.
func (e *Editor) Render(dst draw.Image) image.Rectangle {
	size := e.Size()
	return render.Compose(dst, e.canvas.View(), render.Options{
		CellSize:   e.canvas.CellSize(),
		Grid:       e.state.ShowGrid,
		GridColor:  e.gridColor,
		Background: e.backdrop.For(size, e.canvas.CellSize()),
	})
}

func (e *Editor) apply(paint func(color.Color)) {
	var col color.Color = e.state.Color
	if e.state.Erasing {
		col = color.Transparent
	}
	paint(col)
	e.changed()
}

// finishGesture commits a gesture interrupted by another command.
func (e *Editor) finishGesture() {
	if e.state.Drawing {
		e.PointerUp()
	}
}

func (e *Editor) commit() {
	e.history.Commit(e.canvas.Image())
	e.dirty = true
	e.changed()
}

func (e *Editor) restore(img *image.RGBA) {
	// snapshots always have positive bounds
	_ = e.canvas.Replace(img)
	e.dirty = !canvas.Equal(img, e.saved)
	e.changed()
}

// markClean records the current canvas as the on-disk state.
func (e *Editor) markClean() {
	e.saved = e.canvas.Image()
	e.dirty = false
}

func (e *Editor) changed() {
	if e.onChange != nil {
		e.onChange()
	}
}
