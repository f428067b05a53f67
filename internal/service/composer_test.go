package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-diary/internal/domain"
	"github.com/pkordes/travel-diary/internal/service"
)

// ---- helpers ---------------------------------------------------------------

var sanFrancisco = domain.Position{Latitude: 37.774929, Longitude: -122.419416}

func grantedCamera(uri string) *mockCamera {
	return &mockCamera{
		permission: domain.PermissionGranted,
		capture: func(context.Context, domain.CaptureOptions) (domain.CaptureResult, error) {
			return domain.CaptureResult{ImageURI: uri}, nil
		},
	}
}

func locatorWith(results []domain.GeocodeResult, err error) *mockLocator {
	return &mockLocator{
		permission: domain.PermissionGranted,
		position: func(context.Context) (domain.Position, error) {
			return sanFrancisco, nil
		},
		reverseGeocode: func(context.Context, domain.Position) ([]domain.GeocodeResult, error) {
			return results, err
		},
	}
}

var marketStreet = []domain.GeocodeResult{{
	Street:     "Market St",
	City:       "San Francisco",
	Region:     "CA",
	PostalCode: "94103",
	Name:       "849VQHFJ+X6",
}}

// ---- RequestPermissions ----------------------------------------------------

func TestComposer_RequestPermissions_AllGranted(t *testing.T) {
	requested := false
	notifier := &mockNotifier{
		permission: domain.PermissionGranted,
		requestPermission: func(context.Context) (domain.Permission, error) {
			requested = true
			return domain.PermissionGranted, nil
		},
	}
	c := service.NewComposer(nil, grantedCamera("x"), locatorWith(nil, nil), notifier, discardLogger())

	report := c.RequestPermissions(context.Background())

	assert.Empty(t, report.Missing())
	assert.Equal(t, domain.PermissionGranted, report.Notifications)
	assert.False(t, requested, "notification permission already granted; must not prompt again")
}

func TestComposer_RequestPermissions_Denied(t *testing.T) {
	camera := grantedCamera("x")
	camera.permission = domain.PermissionDenied
	camera.permErr = nil
	locator := locatorWith(nil, nil)
	locator.permission = domain.PermissionDenied
	notifier := &mockNotifier{
		permission: domain.PermissionUndetermined,
		requestPermission: func(context.Context) (domain.Permission, error) {
			return domain.PermissionDenied, nil
		},
	}
	c := service.NewComposer(nil, camera, locator, notifier, discardLogger())

	report := c.RequestPermissions(context.Background())

	assert.Equal(t, []string{"camera", "location"}, report.Missing())
	assert.Equal(t, domain.PermissionDenied, report.Notifications)
}

func TestComposer_RequestPermissions_ErrorCountsAsDenied(t *testing.T) {
	camera := grantedCamera("x")
	camera.permErr = errors.New("no camera hardware")
	c := service.NewComposer(nil, camera, locatorWith(nil, nil), &mockNotifier{permission: domain.PermissionGranted}, discardLogger())

	report := c.RequestPermissions(context.Background())

	assert.Equal(t, domain.PermissionDenied, report.Camera)
	assert.Equal(t, []string{"camera"}, report.Missing())
}

// ---- TakePicture -----------------------------------------------------------

func TestComposer_TakePicture_OK(t *testing.T) {
	var gotOpts domain.CaptureOptions
	camera := grantedCamera("file:///photos/1.jpg")
	camera.capture = func(_ context.Context, opts domain.CaptureOptions) (domain.CaptureResult, error) {
		gotOpts = opts
		return domain.CaptureResult{ImageURI: "file:///photos/1.jpg"}, nil
	}
	c := service.NewComposer(nil, camera, locatorWith(marketStreet, nil), &mockNotifier{}, discardLogger())

	draft, err := c.TakePicture(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.CaptureOptions{AllowsEditing: true, Quality: 1}, gotOpts)
	assert.Equal(t, domain.Draft{
		ImageURI: "file:///photos/1.jpg",
		FormattedAddress: domain.FormattedAddress{
			Address:     "Market St, San Francisco, CA, 94103",
			Coordinates: "(-122.419416, 37.774929)",
			PlusCode:    "849VQHFJ+X6",
		},
	}, draft)
}

func TestComposer_TakePicture_PermissionDenied(t *testing.T) {
	camera := grantedCamera("x")
	camera.permission = domain.PermissionDenied
	c := service.NewComposer(nil, camera, locatorWith(marketStreet, nil), &mockNotifier{}, discardLogger())

	_, err := c.TakePicture(context.Background())

	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.Equal(t, "camera permission is required", domain.Reason(err, domain.ErrPermissionDenied))
}

func TestComposer_TakePicture_Canceled(t *testing.T) {
	camera := grantedCamera("")
	camera.capture = func(context.Context, domain.CaptureOptions) (domain.CaptureResult, error) {
		return domain.CaptureResult{Canceled: true}, nil
	}
	located := false
	locator := locatorWith(marketStreet, nil)
	locator.position = func(context.Context) (domain.Position, error) {
		located = true
		return sanFrancisco, nil
	}
	c := service.NewComposer(nil, camera, locator, &mockNotifier{}, discardLogger())

	_, err := c.TakePicture(context.Background())

	assert.ErrorIs(t, err, domain.ErrCaptureCanceled)
	assert.False(t, located, "a canceled capture must not go on to locate")
}

func TestComposer_TakePicture_CaptureError(t *testing.T) {
	boom := errors.New("camera busy")
	camera := grantedCamera("")
	camera.capture = func(context.Context, domain.CaptureOptions) (domain.CaptureResult, error) {
		return domain.CaptureResult{}, boom
	}
	c := service.NewComposer(nil, camera, locatorWith(marketStreet, nil), &mockNotifier{}, discardLogger())

	_, err := c.TakePicture(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestComposer_TakePicture_LocationFailureKeepsPhoto(t *testing.T) {
	locator := locatorWith(nil, nil)
	locator.position = func(context.Context) (domain.Position, error) {
		return domain.Position{}, errors.New("no GPS fix")
	}
	c := service.NewComposer(nil, grantedCamera("file:///photos/1.jpg"), locator, &mockNotifier{}, discardLogger())

	draft, err := c.TakePicture(context.Background())

	assert.ErrorIs(t, err, domain.ErrLocationUnavailable)
	assert.Equal(t, "file:///photos/1.jpg", draft.ImageURI)
	assert.Empty(t, draft.Address)
}

// ---- Locate ----------------------------------------------------------------

func TestComposer_Locate_GeocodeError(t *testing.T) {
	c := service.NewComposer(nil, grantedCamera("x"), locatorWith(nil, errors.New("timeout")), &mockNotifier{}, discardLogger())

	_, err := c.Locate(context.Background(), domain.Draft{ImageURI: "x"})

	assert.ErrorIs(t, err, domain.ErrLocationUnavailable)
}

func TestComposer_Locate_PermissionDenied(t *testing.T) {
	locator := locatorWith(marketStreet, nil)
	locator.permission = domain.PermissionDenied
	c := service.NewComposer(nil, grantedCamera("x"), locator, &mockNotifier{}, discardLogger())

	_, err := c.Locate(context.Background(), domain.Draft{ImageURI: "x"})

	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestComposer_Locate_NoResultsLeavesAddressEmpty(t *testing.T) {
	c := service.NewComposer(nil, grantedCamera("x"), locatorWith([]domain.GeocodeResult{}, nil), &mockNotifier{}, discardLogger())

	draft, err := c.Locate(context.Background(), domain.Draft{ImageURI: "x"})

	require.NoError(t, err)
	assert.Equal(t, domain.Draft{ImageURI: "x"}, draft)
}

func TestComposer_Locate_UsesFirstResult(t *testing.T) {
	results := []domain.GeocodeResult{{City: "First"}, {City: "Second"}}
	c := service.NewComposer(nil, grantedCamera("x"), locatorWith(results, nil), &mockNotifier{}, discardLogger())

	draft, err := c.Locate(context.Background(), domain.Draft{ImageURI: "x"})

	require.NoError(t, err)
	assert.Equal(t, "First", draft.Address)
}

// ---- Save / Run ------------------------------------------------------------

func TestComposer_Save_BlockedWithoutAddress(t *testing.T) {
	entries, r := newMemoryEntryService(t, &mockNotifier{})
	c := service.NewComposer(entries, grantedCamera("x"), locatorWith(nil, nil), &mockNotifier{}, discardLogger())

	draft, err := c.TakePicture(context.Background())
	require.NoError(t, err)

	_, err = c.Save(context.Background(), draft)

	assert.ErrorIs(t, err, domain.ErrValidation)
	stored, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestComposer_Run_SavesAndNotifies(t *testing.T) {
	notifier := &mockNotifier{}
	entries, r := newMemoryEntryService(t, notifier)
	c := service.NewComposer(entries, grantedCamera("file:///photos/1.jpg"), locatorWith(marketStreet, nil), notifier, discardLogger())

	entry, err := c.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Market St, San Francisco, CA, 94103", entry.Address)
	assert.Equal(t, "849VQHFJ+X6", entry.PlusCode)

	stored, err := r.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, entry, stored[0])
	assert.Equal(t, []domain.Notification{service.SavedNotification}, notifier.scheduled)
}
