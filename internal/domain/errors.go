package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when the requested entry does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. saving without a photo or without an address).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrStorage is returned when the key-value store cannot be read or written,
// or when the stored entry list cannot be parsed. A mutation that fails with
// ErrStorage must be treated as not applied.
var ErrStorage = errors.New("storage error")

// ErrPermissionDenied is returned when the user refused camera, location or
// notification access.
var ErrPermissionDenied = errors.New("permission denied")

// ErrCaptureCanceled is returned when the user backed out of the camera.
// It aborts the flow silently and is never shown to the user.
var ErrCaptureCanceled = errors.New("capture canceled")

// ErrLocationUnavailable is returned when the position fix or the reverse
// geocoding call failed.
var ErrLocationUnavailable = errors.New("location unavailable")

// Reason extracts the human-readable detail that follows sentinel in a wrapped
// error chain.
// e.g. "service.EntryService.Save: validation error: address is not available yet"
// → "address is not available yet".
// When err carries no detail after the sentinel, the full message is returned.
func Reason(err, sentinel error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		return msg[i+len(marker):]
	}
	return msg
}
