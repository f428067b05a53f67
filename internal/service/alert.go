package service

import (
	"errors"

	"github.com/pkordes/travel-diary/internal/domain"
)

// Alert is a user-facing message for a failed step.
type Alert struct {
	Title   string
	Message string
}

// AlertFor maps an error to the alert a screen should show.
// ok is false when nothing should be shown: for a nil error, and for a
// canceled capture, which aborts the flow silently.
func AlertFor(err error) (Alert, bool) {
	switch {
	case err == nil:
		return Alert{}, false
	case errors.Is(err, domain.ErrCaptureCanceled):
		return Alert{}, false
	case errors.Is(err, domain.ErrPermissionDenied):
		return Alert{Title: "Permission Error", Message: domain.Reason(err, domain.ErrPermissionDenied)}, true
	case errors.Is(err, domain.ErrLocationUnavailable):
		return Alert{Title: "Location Error", Message: "Unable to fetch location."}, true
	case errors.Is(err, domain.ErrValidation):
		return Alert{Title: "Validation", Message: domain.Reason(err, domain.ErrValidation)}, true
	case errors.Is(err, domain.ErrStorage):
		return Alert{Title: "Save Error", Message: "Failed to save the travel entry."}, true
	default:
		return Alert{Title: "Error", Message: err.Error()}, true
	}
}

// Alerts for storage failures outside of saving an entry.
var (
	LoadFailed   = Alert{Title: "Load Error", Message: "Failed to load travel entries."}
	RemoveFailed = Alert{Title: "Remove Error", Message: "Failed to remove the travel entry."}
	ThemeFailed  = Alert{Title: "Theme Error", Message: "Failed to save the theme."}
)
