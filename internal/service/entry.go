// Package service contains the business logic for the Travel Diary.
// Services validate inputs, enforce business rules, and orchestrate repo and
// device calls. Screens (HTTP handlers, CLI commands) hold a service or
// controller from this package and never talk to storage directly.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-diary/internal/domain"
	"github.com/pkordes/travel-diary/internal/repo"
)

// Notifier is the notification capability.
type Notifier interface {
	Permission(ctx context.Context) (domain.Permission, error)
	RequestPermission(ctx context.Context) (domain.Permission, error)
	Schedule(ctx context.Context, note domain.Notification) error
}

// SavedNotification is scheduled after every successful save.
var SavedNotification = domain.Notification{
	Title: "Travel Entry Saved!",
	Body:  "Your travel entry has been added successfully.",
}

// EntryService implements business logic for TravelEntry operations.
type EntryService struct {
	repo     repo.EntryRepo
	notifier Notifier
	log      *slog.Logger
	newID    func() string
	now      func() time.Time
}

// Option customises an EntryService.
type Option func(*EntryService)

// WithClock replaces time.Now as the source of entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *EntryService) { s.now = now }
}

// WithIDGenerator replaces uuid.NewString as the source of entry ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *EntryService) { s.newID = newID }
}

// NewEntryService constructs an EntryService backed by the provided repo.
func NewEntryService(r repo.EntryRepo, n Notifier, log *slog.Logger, opts ...Option) *EntryService {
	s := &EntryService{
		repo:     r,
		notifier: n,
		log:      log,
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save validates draft, persists it as a new entry and schedules the
// "saved" notification.
// Returns domain.ErrValidation when the photo or address is missing.
// Returns domain.ErrStorage when the write failed; the entry is then not saved.
//
// A notification failure is logged and does not fail the save: the entry is
// already persisted at that point.
func (s *EntryService) Save(ctx context.Context, draft domain.Draft) (domain.TravelEntry, error) {
	if err := validateDraft(draft); err != nil {
		return domain.TravelEntry{}, fmt.Errorf("service.EntryService.Save: %w", err)
	}

	entry := domain.TravelEntry{
		ID:          s.newID(),
		ImageURI:    draft.ImageURI,
		Address:     draft.Address,
		Coordinates: draft.Coordinates,
		PlusCode:    draft.PlusCode,
		Timestamp:   s.now().UnixMilli(),
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		return domain.TravelEntry{}, fmt.Errorf("service.EntryService.Save: %w", err)
	}
	s.log.InfoContext(ctx, "entry saved", "entry_id", entry.ID)

	if err := s.notifier.Schedule(ctx, SavedNotification); err != nil {
		s.log.WarnContext(ctx, "schedule notification failed", "entry_id", entry.ID, "error", err)
	}
	return entry, nil
}

// List returns every entry, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *EntryService) List(ctx context.Context) ([]domain.TravelEntry, error) {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.List: %w", err)
	}
	if entries == nil {
		return []domain.TravelEntry{}, nil
	}
	return entries, nil
}

// ListPaged returns one page of entries and the total number of entries.
func (s *EntryService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.TravelEntry, int64, error) {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("service.EntryService.ListPaged: %w", err)
	}
	start, end := p.Bounds(len(entries))
	page := make([]domain.TravelEntry, end-start)
	copy(page, entries[start:end])
	return page, int64(len(entries)), nil
}

// Get returns the entry with the given id.
// Returns domain.ErrNotFound if there is none.
func (s *EntryService) Get(ctx context.Context, id string) (domain.TravelEntry, error) {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		return domain.TravelEntry{}, fmt.Errorf("service.EntryService.Get: %w", err)
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.TravelEntry{}, fmt.Errorf("service.EntryService.Get: %w", domain.ErrNotFound)
}

// Remove deletes the entry with the given id. Unknown ids are not an error.
func (s *EntryService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("service.EntryService.Remove: %w", err)
	}
	s.log.InfoContext(ctx, "entry removed", "entry_id", id)
	return nil
}

// validateDraft enforces the rules for turning a draft into an entry.
//   - A photo must have been taken.
//   - The address must have been resolved (non-empty).
//
// The image URI is opaque: any non-empty value is accepted as is.
func validateDraft(d domain.Draft) error {
	if d.ImageURI == "" {
		return fmt.Errorf("%w: please take a picture before saving", domain.ErrValidation)
	}
	if d.Address == "" {
		return fmt.Errorf("%w: address is not available yet", domain.ErrValidation)
	}
	return nil
}

// isCanceled reports whether err came from the user backing out of a step.
func isCanceled(err error) bool {
	return errors.Is(err, domain.ErrCaptureCanceled)
}
