// Package history keeps linear undo/redo over full canvas snapshots.
package history

import (
	"image"
)

// Stack holds the undo and redo sequences. The bottom of the undo sequence is
// the state the stack was initialized with and is never popped.
type Stack struct {
	undo  []*image.RGBA
	redo  []*image.RGBA
	limit int
}

// Option modifies a Stack during creation.
type Option func(*Stack)

// WithLimit caps the number of undo entries. When a commit exceeds the cap the
// oldest snapshots are dropped. Values below 1 mean unbounded.
func WithLimit(n int) Option { return func(s *Stack) { s.limit = n } }

// New creates an empty Stack. Initialize must be called before use.
func New(opts ...Option) *Stack {
	s := &Stack{}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Initialize makes img the sole undo entry and clears redo.
func (s *Stack) Initialize(img *image.RGBA) {
	s.undo = []*image.RGBA{clone(img)}
	s.redo = nil
}

// Commit records a copy of img as the newest state. Forward history is
// discarded.
func (s *Stack) Commit(img *image.RGBA) {
	s.undo = append(s.undo, clone(img))
	s.redo = nil
	if s.limit > 0 && len(s.undo) > s.limit {
		drop := len(s.undo) - s.limit
		for i := 0; i < drop; i++ {
			s.undo[i] = nil
		}
		s.undo = s.undo[drop:]
	}
}

// Undo steps back one state and returns a copy of it. At the floor it returns
// a copy of the current state and false.
func (s *Stack) Undo() (*image.RGBA, bool) {
	if len(s.undo) <= 1 {
		return s.current(), false
	}
	top := s.undo[len(s.undo)-1]
	s.undo[len(s.undo)-1] = nil
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, top)
	return s.current(), true
}

// Redo re-applies the most recently undone state and returns a copy of it.
// With nothing to redo it returns a copy of the current state and false.
func (s *Stack) Redo() (*image.RGBA, bool) {
	if len(s.redo) == 0 {
		return s.current(), false
	}
	top := s.redo[len(s.redo)-1]
	s.redo[len(s.redo)-1] = nil
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, top)
	return s.current(), true
}

// CanUndo reports whether Undo would move.
func (s *Stack) CanUndo() bool { return len(s.undo) > 1 }

// CanRedo reports whether Redo would move.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// Depth returns the number of undo and redo entries.
func (s *Stack) Depth() (undo, redo int) { return len(s.undo), len(s.redo) }

func (s *Stack) current() *image.RGBA {
	if len(s.undo) == 0 {
		return nil
	}
	return clone(s.undo[len(s.undo)-1])
}

func clone(img *image.RGBA) *image.RGBA {
	if img == nil {
		return nil
	}
	pix := make([]uint8, len(img.Pix))
	copy(pix, img.Pix)
	return &image.RGBA{Pix: pix, Stride: img.Stride, Rect: img.Rect}
}
