package service_test

import (
	"context"
	"log/slog"

	"github.com/pkordes/travel-diary/internal/domain"
	"github.com/pkordes/travel-diary/internal/repo"
	"github.com/pkordes/travel-diary/internal/service"
)

// mockEntryRepo is a hand-written test double for repo.EntryRepo.
// Each method is a function field; set only the ones your test needs.
type mockEntryRepo struct {
	load   func(ctx context.Context) ([]domain.TravelEntry, error)
	append func(ctx context.Context, entry domain.TravelEntry) error
	remove func(ctx context.Context, id string) error
}

func (m *mockEntryRepo) Load(ctx context.Context) ([]domain.TravelEntry, error) {
	return m.load(ctx)
}
func (m *mockEntryRepo) Append(ctx context.Context, entry domain.TravelEntry) error {
	return m.append(ctx, entry)
}
func (m *mockEntryRepo) Remove(ctx context.Context, id string) error {
	return m.remove(ctx, id)
}

// compile-time check: mockEntryRepo must satisfy repo.EntryRepo.
var _ repo.EntryRepo = (*mockEntryRepo)(nil)

// mockNotifier records scheduled notifications.
type mockNotifier struct {
	permission        domain.Permission
	requestPermission func(ctx context.Context) (domain.Permission, error)
	scheduleErr       error
	scheduled         []domain.Notification
}

func (m *mockNotifier) Permission(context.Context) (domain.Permission, error) {
	return m.permission, nil
}
func (m *mockNotifier) RequestPermission(ctx context.Context) (domain.Permission, error) {
	if m.requestPermission != nil {
		return m.requestPermission(ctx)
	}
	return domain.PermissionGranted, nil
}
func (m *mockNotifier) Schedule(_ context.Context, note domain.Notification) error {
	m.scheduled = append(m.scheduled, note)
	return m.scheduleErr
}

var _ service.Notifier = (*mockNotifier)(nil)

// mockCamera is a test double for service.Camera.
type mockCamera struct {
	permission domain.Permission
	permErr    error
	capture    func(ctx context.Context, opts domain.CaptureOptions) (domain.CaptureResult, error)
}

func (m *mockCamera) RequestPermission(context.Context) (domain.Permission, error) {
	return m.permission, m.permErr
}
func (m *mockCamera) Capture(ctx context.Context, opts domain.CaptureOptions) (domain.CaptureResult, error) {
	return m.capture(ctx, opts)
}

var _ service.Camera = (*mockCamera)(nil)

// mockLocator is a test double for service.Locator.
type mockLocator struct {
	permission     domain.Permission
	position       func(ctx context.Context) (domain.Position, error)
	reverseGeocode func(ctx context.Context, pos domain.Position) ([]domain.GeocodeResult, error)
}

func (m *mockLocator) RequestPermission(context.Context) (domain.Permission, error) {
	return m.permission, nil
}
func (m *mockLocator) CurrentPosition(ctx context.Context) (domain.Position, error) {
	return m.position(ctx)
}
func (m *mockLocator) ReverseGeocode(ctx context.Context, pos domain.Position) ([]domain.GeocodeResult, error) {
	return m.reverseGeocode(ctx, pos)
}

var _ service.Locator = (*mockLocator)(nil)

// discardLogger swallows log output in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
