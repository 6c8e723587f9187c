//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import "image"

// unavailable explains why this build cannot reach the clipboard. A missing
// display is reported first since it is the cause a user can fix.
func unavailable() error {
	if !hasDisplay() {
		return errNoDisplay
	}
	return errCGODisabled
}

// WriteImage always fails without cgo.
func WriteImage(image.Image) error {
	return unavailable()
}

// ReadImage always fails without cgo.
func ReadImage() (image.Image, error) {
	return nil, unavailable()
}
