// Package repo contains the persistence logic for the Travel Diary.
// The entry list lives as one JSON array under a single key of a kv.Store.
// No business logic lives here, only serialization and list bookkeeping.
package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkordes/travel-diary/internal/domain"
	"github.com/pkordes/travel-diary/internal/kv"
)

// EntriesKey is the store key that holds the serialized entry list.
const EntriesKey = "travelEntries"

// EntryRepo defines the persistence operations for TravelEntries.
// The service layer depends on this interface, not the kv-backed implementation,
// which allows the service to be unit-tested with a mock.
type EntryRepo interface {
	// Load returns every entry, newest first. An unset key yields an empty
	// slice. A stored value that cannot be parsed yields domain.ErrStorage.
	Load(ctx context.Context) ([]domain.TravelEntry, error)

	// Append prepends entry to the list and writes the whole list back.
	// On domain.ErrStorage the entry must be assumed not saved.
	Append(ctx context.Context, entry domain.TravelEntry) error

	// Remove drops the entry with the given id and writes the list back.
	// Removing an id that is not present is a no-op.
	Remove(ctx context.Context, id string) error
}

// kvEntryRepo is the kv.Store implementation of EntryRepo.
//
// Every mutation is a full read-modify-write of one value. Two writers
// interleaving Load and Set can lose an update; a single active writer is
// assumed and no locking is done here.
type kvEntryRepo struct {
	store kv.Store
}

// NewEntryRepo constructs an EntryRepo backed by the provided store.
func NewEntryRepo(store kv.Store) EntryRepo {
	return &kvEntryRepo{store: store}
}

// Load reads and decodes the entry list.
func (r *kvEntryRepo) Load(ctx context.Context) ([]domain.TravelEntry, error) {
	entries, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.EntryRepo.Load: %w", err)
	}
	return entries, nil
}

// Append prepends entry, so insertion order is newest first.
func (r *kvEntryRepo) Append(ctx context.Context, entry domain.TravelEntry) error {
	entries, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("repo.EntryRepo.Append: %w", err)
	}
	for _, e := range entries {
		if e.ID == entry.ID {
			return fmt.Errorf("repo.EntryRepo.Append: %w: duplicate id %q", domain.ErrValidation, entry.ID)
		}
	}

	updated := make([]domain.TravelEntry, 0, len(entries)+1)
	updated = append(updated, entry)
	updated = append(updated, entries...)

	if err := r.save(ctx, updated); err != nil {
		return fmt.Errorf("repo.EntryRepo.Append: %w", err)
	}
	return nil
}

// Remove filters out every entry whose ID matches id.
func (r *kvEntryRepo) Remove(ctx context.Context, id string) error {
	entries, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("repo.EntryRepo.Remove: %w", err)
	}

	kept := make([]domain.TravelEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	if err := r.save(ctx, kept); err != nil {
		return fmt.Errorf("repo.EntryRepo.Remove: %w", err)
	}
	return nil
}

// load returns a non-nil slice. Errors are wrapped with domain.ErrStorage.
func (r *kvEntryRepo) load(ctx context.Context) ([]domain.TravelEntry, error) {
	raw, ok, err := r.store.Get(ctx, EntriesKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", domain.ErrStorage, err)
	}
	if !ok {
		return []domain.TravelEntry{}, nil
	}

	var entries []domain.TravelEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrStorage, EntriesKey, err)
	}
	if entries == nil {
		entries = []domain.TravelEntry{}
	}
	return entries, nil
}

// save encodes the full list and writes it with a single Set.
func (r *kvEntryRepo) save(ctx context.Context, entries []domain.TravelEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", domain.ErrStorage, err)
	}
	if err := r.store.Set(ctx, EntriesKey, string(data)); err != nil {
		return fmt.Errorf("%w: write: %w", domain.ErrStorage, err)
	}
	return nil
}
