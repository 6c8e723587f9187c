package platform

// AppName identifies the editor to the host notification service.
const AppName = "PixelPaint"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image shown with the notification
	// if the platform supports it.
	IconPath string
	// Urgent marks failures so notification centers keep them visible.
	Urgent bool
}
