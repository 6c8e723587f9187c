package editor

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrSizeMismatch is wrapped by load errors when LoadReject is in effect and
// the image is not the size of the canvas.
var ErrSizeMismatch = errors.New("image size does not match canvas")

// FileAccessError reports a failed save or load. The canvas is unchanged when
// one is returned.
type FileAccessError struct {
	Op   string // "save" or "load"
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// Save writes the canvas to path as PNG, creating or truncating the file.
// Transparent pixels stay transparent in the output.
func (e *Editor) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &FileAccessError{Op: "save", Path: path, Err: err}
	}
	if err := e.Encode(f); err != nil {
		f.Close()
		return &FileAccessError{Op: "save", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileAccessError{Op: "save", Path: path, Err: err}
	}
	e.markClean()
	e.changed()
	return nil
}

// Encode writes the canvas as PNG to w without touching the dirty flag.
func (e *Editor) Encode(w io.Writer) error {
	return png.Encode(w, e.canvas.View())
}

// Load replaces the canvas with the image at path and records the result as
// an undoable edit. PNG, GIF, JPEG, BMP, TIFF and WebP files are accepted.
func (e *Editor) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileAccessError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()
	if err := e.Decode(f); err != nil {
		var fe *FileAccessError
		if errors.As(err, &fe) {
			fe.Path = path
			return fe
		}
		return &FileAccessError{Op: "load", Path: path, Err: err}
	}
	return nil
}

// Decode reads an image from r and makes it the canvas contents.
func (e *Editor) Decode(r io.Reader) error {
	img, _, err := image.Decode(r)
	if err != nil {
		return &FileAccessError{Op: "load", Err: err}
	}
	if err := e.replace(img); err != nil {
		return &FileAccessError{Op: "load", Err: err}
	}
	e.markClean()
	e.changed()
	return nil
}

// ReplaceImage makes img the canvas contents as one undoable edit, as used by
// clipboard paste. The load policy applies.
func (e *Editor) ReplaceImage(img image.Image) error {
	return e.replace(img)
}

func (e *Editor) replace(img image.Image) error {
	size := img.Bounds().Size()
	if e.policy == LoadReject && size != e.Size() {
		return fmt.Errorf("%w: got %dx%d, canvas is %dx%d", ErrSizeMismatch, size.X, size.Y, e.Size().X, e.Size().Y)
	}
	e.finishGesture()
	if err := e.canvas.Replace(img); err != nil {
		return err
	}
	e.commit()
	return nil
}
