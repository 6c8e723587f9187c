// Package clipboard moves canvas images to and from the system clipboard.
// Images travel as PNG data. Builds without cgo or without a supported
// windowing system return an error from every call.
package clipboard

import (
	"errors"
	"os"
)

var (
	errNoDisplay   = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
	errCGODisabled = errors.New("clipboard images require a cgo build")
	errUnsupported = errors.New("clipboard images are not supported on this platform")

	// ErrNoImage is returned when the clipboard holds no image data.
	ErrNoImage = errors.New("clipboard does not contain image data")
)

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
