package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/travel-diary/internal/address"
	"github.com/pkordes/travel-diary/internal/domain"
)

// Camera is the photo capture capability.
type Camera interface {
	RequestPermission(ctx context.Context) (domain.Permission, error)
	Capture(ctx context.Context, opts domain.CaptureOptions) (domain.CaptureResult, error)
}

// Locator is the location capability: a position fix plus reverse geocoding.
type Locator interface {
	RequestPermission(ctx context.Context) (domain.Permission, error)
	CurrentPosition(ctx context.Context) (domain.Position, error)
	ReverseGeocode(ctx context.Context, pos domain.Position) ([]domain.GeocodeResult, error)
}

// captureOptions match what the Add Entry screen asks the camera for.
var captureOptions = domain.CaptureOptions{AllowsEditing: true, Quality: 1}

// PermissionReport is the outcome of the permission prompts shown when the
// Add Entry screen opens.
type PermissionReport struct {
	Camera        domain.Permission
	Location      domain.Permission
	Notifications domain.Permission
}

// Missing lists the required capabilities that were refused. Notifications
// are optional and never listed.
func (r PermissionReport) Missing() []string {
	var out []string
	if !r.Camera.Granted() {
		out = append(out, "camera")
	}
	if !r.Location.Granted() {
		out = append(out, "location")
	}
	return out
}

// Composer drives the Add Entry flow as a linear pipeline:
// permissions, capture, locate and format, save. Each stage returns a value or
// an error, and an error short-circuits the rest of the flow.
//
// A Composer is cheap and holds no state between calls; the caller owns the
// Draft. Results of a stage that completes after its caller has gone away are
// simply dropped.
type Composer struct {
	entries  *EntryService
	camera   Camera
	locator  Locator
	notifier Notifier
	log      *slog.Logger
}

// NewComposer wires a Composer to its capabilities.
func NewComposer(entries *EntryService, camera Camera, locator Locator, notifier Notifier, log *slog.Logger) *Composer {
	return &Composer{entries: entries, camera: camera, locator: locator, notifier: notifier, log: log}
}

// RequestPermissions asks for camera and location access, and for
// notification access if it has not been granted yet. A failed request counts
// as denied. Nothing here is fatal; the report tells the caller what to warn about.
func (c *Composer) RequestPermissions(ctx context.Context) PermissionReport {
	report := PermissionReport{
		Camera:   c.ask(ctx, "camera", c.camera.RequestPermission),
		Location: c.ask(ctx, "location", c.locator.RequestPermission),
	}

	report.Notifications = c.ask(ctx, "notifications", c.notifier.Permission)
	if !report.Notifications.Granted() {
		report.Notifications = c.ask(ctx, "notifications", c.notifier.RequestPermission)
	}
	return report
}

func (c *Composer) ask(ctx context.Context, capability string, request func(context.Context) (domain.Permission, error)) domain.Permission {
	perm, err := request(ctx)
	if err != nil {
		c.log.WarnContext(ctx, "permission request failed", "capability", capability, "error", err)
		return domain.PermissionDenied
	}
	return perm
}

// TakePicture captures a photo and then resolves its address.
//
// Returns domain.ErrPermissionDenied when camera access is refused and
// domain.ErrCaptureCanceled when the user backs out. When only the location
// stage fails, the returned Draft still carries the photo alongside the error.
func (c *Composer) TakePicture(ctx context.Context) (domain.Draft, error) {
	perm, err := c.camera.RequestPermission(ctx)
	if err != nil {
		return domain.Draft{}, fmt.Errorf("service.Composer.TakePicture: %w: camera: %w", domain.ErrPermissionDenied, err)
	}
	if !perm.Granted() {
		return domain.Draft{}, fmt.Errorf("service.Composer.TakePicture: %w: camera permission is required", domain.ErrPermissionDenied)
	}

	res, err := c.camera.Capture(ctx, captureOptions)
	if err != nil {
		return domain.Draft{}, fmt.Errorf("service.Composer.TakePicture: capture: %w", err)
	}
	if res.Canceled {
		return domain.Draft{}, fmt.Errorf("service.Composer.TakePicture: %w", domain.ErrCaptureCanceled)
	}

	draft := domain.Draft{ImageURI: res.ImageURI}
	located, err := c.Locate(ctx, draft)
	if err != nil {
		return draft, fmt.Errorf("service.Composer.TakePicture: %w", err)
	}
	return located, nil
}

// Locate fills in the draft's address fields from the current position.
//
// When the geocoder finds nothing the draft is returned unchanged and without
// error; Save will then refuse it because the address is still empty.
// Returns domain.ErrLocationUnavailable when the fix or the lookup fails.
func (c *Composer) Locate(ctx context.Context, draft domain.Draft) (domain.Draft, error) {
	perm, err := c.locator.RequestPermission(ctx)
	if err != nil || !perm.Granted() {
		return draft, fmt.Errorf("service.Composer.Locate: %w: location permission is required", domain.ErrPermissionDenied)
	}

	pos, err := c.locator.CurrentPosition(ctx)
	if err != nil {
		return draft, fmt.Errorf("service.Composer.Locate: %w: unable to fetch location: %w", domain.ErrLocationUnavailable, err)
	}

	results, err := c.locator.ReverseGeocode(ctx, pos)
	if err != nil {
		return draft, fmt.Errorf("service.Composer.Locate: %w: unable to resolve address: %w", domain.ErrLocationUnavailable, err)
	}

	first, ok := address.FirstResult(results)
	if !ok {
		c.log.DebugContext(ctx, "reverse geocoding returned no results",
			"latitude", pos.Latitude, "longitude", pos.Longitude)
		return draft, nil
	}

	draft.FormattedAddress = address.Format(first, pos.Longitude, pos.Latitude)
	return draft, nil
}

// Save persists the draft. See EntryService.Save.
func (c *Composer) Save(ctx context.Context, draft domain.Draft) (domain.TravelEntry, error) {
	entry, err := c.entries.Save(ctx, draft)
	if err != nil {
		return domain.TravelEntry{}, fmt.Errorf("service.Composer.Save: %w", err)
	}
	return entry, nil
}

// Run is the whole flow in one call: take a picture, resolve the address, save.
func (c *Composer) Run(ctx context.Context) (domain.TravelEntry, error) {
	draft, err := c.TakePicture(ctx)
	if err != nil {
		if !isCanceled(err) {
			c.log.WarnContext(ctx, "compose entry failed", "error", err)
		}
		return domain.TravelEntry{}, err
	}
	return c.Save(ctx, draft)
}
