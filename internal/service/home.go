package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/travel-diary/internal/domain"
)

// Home is the controller behind the entry list screen. It mirrors the stored
// list in memory; the mirror is refreshed only when Activate is called, i.e.
// when the screen becomes active.
type Home struct {
	entries *EntryService
	log     *slog.Logger
	items   []domain.TravelEntry
}

// NewHome returns a Home with an empty list. Call Activate to load it.
func NewHome(entries *EntryService, log *slog.Logger) *Home {
	return &Home{entries: entries, log: log, items: []domain.TravelEntry{}}
}

// Activate reloads the list from storage. If the stored list cannot be read
// the screen shows an empty list instead; the error is logged and returned so
// the caller may alert.
func (h *Home) Activate(ctx context.Context) error {
	items, err := h.entries.List(ctx)
	if err != nil {
		h.log.WarnContext(ctx, "load entries failed, showing empty list", "error", err)
		h.items = []domain.TravelEntry{}
		return fmt.Errorf("service.Home.Activate: %w", err)
	}
	h.items = items
	return nil
}

// Entries returns a copy of the list as last loaded.
func (h *Home) Entries() []domain.TravelEntry {
	out := make([]domain.TravelEntry, len(h.items))
	copy(out, h.items)
	return out
}

// Remove deletes an entry from storage and then from the displayed list.
// On failure the displayed list is left as it was.
func (h *Home) Remove(ctx context.Context, id string) error {
	if err := h.entries.Remove(ctx, id); err != nil {
		return fmt.Errorf("service.Home.Remove: %w", err)
	}
	kept := make([]domain.TravelEntry, 0, len(h.items))
	for _, e := range h.items {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	h.items = kept
	return nil
}
