package repo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-diary/internal/domain"
	"github.com/pkordes/travel-diary/internal/kv"
	"github.com/pkordes/travel-diary/internal/repo"
)

// mockStore is a hand-written test double for kv.Store.
// Each method is a function field; set only the ones your test needs.
type mockStore struct {
	get func(ctx context.Context, key string) (string, bool, error)
	set func(ctx context.Context, key, value string) error
}

func (m *mockStore) Get(ctx context.Context, key string) (string, bool, error) {
	return m.get(ctx, key)
}
func (m *mockStore) Set(ctx context.Context, key, value string) error {
	return m.set(ctx, key, value)
}

// compile-time check: mockStore must satisfy kv.Store.
var _ kv.Store = (*mockStore)(nil)

// entryFixture returns a fully-populated entry. Callers override fields as needed.
func entryFixture(id string, ts int64) domain.TravelEntry {
	return domain.TravelEntry{
		ID:          id,
		ImageURI:    "file:///photos/" + id + ".jpg",
		Address:     "Market St, San Francisco, CA, 94103",
		Coordinates: "(-122.419416, 37.774929)",
		PlusCode:    "849VQHFJ+X6",
		Timestamp:   ts,
	}
}

func newMemoryRepo(t *testing.T) (repo.EntryRepo, *kv.Memory) {
	t.Helper()
	store := kv.NewMemory()
	return repo.NewEntryRepo(store), store
}

func TestEntryRepo_Load_EmptyStore(t *testing.T) {
	r, _ := newMemoryRepo(t)

	got, err := r.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got, "empty store must yield a non-nil slice")
	assert.Empty(t, got)
}

func TestEntryRepo_Load_NullValue(t *testing.T) {
	r, store := newMemoryRepo(t)
	require.NoError(t, store.Set(context.Background(), repo.EntriesKey, "null"))

	got, err := r.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEntryRepo_Load_MalformedJSON(t *testing.T) {
	r, store := newMemoryRepo(t)
	require.NoError(t, store.Set(context.Background(), repo.EntriesKey, "{not json"))

	_, err := r.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestEntryRepo_Load_ReadFailure(t *testing.T) {
	boom := errors.New("disk on fire")
	r := repo.NewEntryRepo(&mockStore{
		get: func(context.Context, string) (string, bool, error) { return "", false, boom },
	})

	_, err := r.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, boom)
}

func TestEntryRepo_Append_RoundTrip(t *testing.T) {
	r, _ := newMemoryRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Append(ctx, entryFixture("a", 1000)))

	before, err := r.Load(ctx)
	require.NoError(t, err)

	e := entryFixture("b", 2000)
	require.NoError(t, r.Append(ctx, e))

	after, err := r.Load(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, e, after[0])
}

func TestEntryRepo_Append_NewestFirst(t *testing.T) {
	r, _ := newMemoryRepo(t)
	ctx := context.Background()

	a := domain.TravelEntry{ID: "a", Address: "X", ImageURI: "u", Timestamp: 1000}
	b := domain.TravelEntry{ID: "b", Address: "Y", ImageURI: "v", Timestamp: 2000}
	require.NoError(t, r.Append(ctx, a))
	require.NoError(t, r.Append(ctx, b))

	got, err := r.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.TravelEntry{b, a}, got)
}

func TestEntryRepo_Append_NotResortedOnRead(t *testing.T) {
	r, _ := newMemoryRepo(t)
	ctx := context.Background()

	// An older timestamp appended later still lands first.
	require.NoError(t, r.Append(ctx, entryFixture("new", 9000)))
	require.NoError(t, r.Append(ctx, entryFixture("old", 1000)))

	got, err := r.Load(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "old", got[0].ID)
	assert.Equal(t, "new", got[1].ID)
}

func TestEntryRepo_Append_DuplicateID(t *testing.T) {
	r, _ := newMemoryRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Append(ctx, entryFixture("a", 1000)))

	err := r.Append(ctx, entryFixture("a", 2000))

	assert.ErrorIs(t, err, domain.ErrValidation)
	got, _ := r.Load(ctx)
	assert.Len(t, got, 1)
}

func TestEntryRepo_Append_SingleWrite(t *testing.T) {
	var writes []string
	r := repo.NewEntryRepo(&mockStore{
		get: func(context.Context, string) (string, bool, error) {
			return `[{"id":"a","imageUri":"u","address":"X","timestamp":1000}]`, true, nil
		},
		set: func(_ context.Context, key, value string) error {
			assert.Equal(t, repo.EntriesKey, key)
			writes = append(writes, value)
			return nil
		},
	})

	err := r.Append(context.Background(), domain.TravelEntry{ID: "b", ImageURI: "v", Address: "Y", Timestamp: 2000})

	require.NoError(t, err)
	require.Len(t, writes, 1)
	assert.JSONEq(t, `[
		{"id":"b","imageUri":"v","address":"Y","timestamp":2000},
		{"id":"a","imageUri":"u","address":"X","timestamp":1000}
	]`, writes[0])
}

func TestEntryRepo_Append_WriteFailure(t *testing.T) {
	r := repo.NewEntryRepo(&mockStore{
		get: func(context.Context, string) (string, bool, error) { return "", false, nil },
		set: func(context.Context, string, string) error { return errors.New("quota exceeded") },
	})

	err := r.Append(context.Background(), entryFixture("a", 1000))

	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestEntryRepo_Append_MalformedExisting(t *testing.T) {
	set := false
	r := repo.NewEntryRepo(&mockStore{
		get: func(context.Context, string) (string, bool, error) { return "[", true, nil },
		set: func(context.Context, string, string) error { set = true; return nil },
	})

	err := r.Append(context.Background(), entryFixture("a", 1000))

	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.False(t, set, "a corrupt list must not be overwritten")
}

func TestEntryRepo_Remove(t *testing.T) {
	r, _ := newMemoryRepo(t)
	ctx := context.Background()
	a, b := entryFixture("a", 1000), entryFixture("b", 2000)
	require.NoError(t, r.Append(ctx, a))
	require.NoError(t, r.Append(ctx, b))

	require.NoError(t, r.Remove(ctx, "a"))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.TravelEntry{b}, got)
}

func TestEntryRepo_Remove_Idempotent(t *testing.T) {
	r, _ := newMemoryRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Append(ctx, entryFixture("a", 1000)))
	require.NoError(t, r.Append(ctx, entryFixture("b", 2000)))

	require.NoError(t, r.Remove(ctx, "a"))
	first, err := r.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, r.Remove(ctx, "a"))
	second, err := r.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEntryRepo_Remove_UnknownIDOnEmptyStore(t *testing.T) {
	r, _ := newMemoryRepo(t)

	err := r.Remove(context.Background(), "nope")

	require.NoError(t, err)
	got, _ := r.Load(context.Background())
	assert.Empty(t, got)
}

func TestEntryRepo_Remove_WriteFailure(t *testing.T) {
	r := repo.NewEntryRepo(&mockStore{
		get: func(context.Context, string) (string, bool, error) { return `[{"id":"a"}]`, true, nil },
		set: func(context.Context, string, string) error { return errors.New("read-only") },
	})

	err := r.Remove(context.Background(), "a")

	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestEntryRepo_OptionalFieldsOmitted(t *testing.T) {
	var written string
	r := repo.NewEntryRepo(&mockStore{
		get: func(context.Context, string) (string, bool, error) { return "", false, nil },
		set: func(_ context.Context, _, value string) error { written = value; return nil },
	})

	err := r.Append(context.Background(), domain.TravelEntry{ID: "a", ImageURI: "u", Address: "X", Timestamp: 1})

	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","imageUri":"u","address":"X","timestamp":1}]`, written)
}
