package domain

// Permission is the answer a platform capability gives to a permission request.
type Permission string

const (
	PermissionGranted      Permission = "granted"
	PermissionDenied       Permission = "denied"
	PermissionUndetermined Permission = "undetermined"
)

// Granted reports whether p allows the capability to be used.
func (p Permission) Granted() bool {
	return p == PermissionGranted
}

// CaptureOptions are passed to a camera when taking a picture.
type CaptureOptions struct {
	AllowsEditing bool
	// Quality is the compression quality between 0 and 1.
	Quality float64
}

// CaptureResult is what a camera returns. ImageURI is empty when Canceled is true.
type CaptureResult struct {
	Canceled bool
	ImageURI string
}

// Notification is an immediate local notification.
type Notification struct {
	Title string
	Body  string
}
