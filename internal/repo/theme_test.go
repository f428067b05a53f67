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

func TestThemeRepo_UnsetIsNotOK(t *testing.T) {
	r := repo.NewThemeRepo(kv.NewMemory())

	_, ok, err := r.Load(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestThemeRepo_SaveLoad(t *testing.T) {
	store := kv.NewMemory()
	r := repo.NewThemeRepo(store)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, domain.Theme{Dark: true}))

	got, ok, err := r.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, got.Dark)

	raw, _, err := store.Get(ctx, repo.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", raw)
}

func TestThemeRepo_UnknownValueIsStorageError(t *testing.T) {
	store := kv.NewMemory()
	require.NoError(t, store.Set(context.Background(), repo.ThemeKey, "sepia"))

	_, _, err := repo.NewThemeRepo(store).Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestThemeRepo_WriteFailure(t *testing.T) {
	r := repo.NewThemeRepo(&mockStore{
		set: func(context.Context, string, string) error { return errors.New("disk full") },
	})

	err := r.Save(context.Background(), domain.Theme{})

	assert.ErrorIs(t, err, domain.ErrStorage)
}
