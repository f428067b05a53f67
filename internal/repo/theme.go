package repo

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-diary/internal/domain"
	"github.com/pkordes/travel-diary/internal/kv"
)

// ThemeKey is the store key that holds the chosen theme ("light" or "dark").
const ThemeKey = "theme"

// ThemeRepo persists the user's theme choice next to the entries.
type ThemeRepo interface {
	// Load returns the saved theme. ok is false when none has been saved.
	Load(ctx context.Context) (theme domain.Theme, ok bool, err error)
	Save(ctx context.Context, theme domain.Theme) error
}

type kvThemeRepo struct {
	store kv.Store
}

// NewThemeRepo constructs a ThemeRepo backed by the provided store.
func NewThemeRepo(store kv.Store) ThemeRepo {
	return &kvThemeRepo{store: store}
}

func (r *kvThemeRepo) Load(ctx context.Context) (domain.Theme, bool, error) {
	raw, ok, err := r.store.Get(ctx, ThemeKey)
	if err != nil {
		return domain.Theme{}, false, fmt.Errorf("repo.ThemeRepo.Load: %w: read: %w", domain.ErrStorage, err)
	}
	if !ok {
		return domain.Theme{}, false, nil
	}
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		return domain.Theme{}, false, fmt.Errorf("repo.ThemeRepo.Load: %w: %w", domain.ErrStorage, err)
	}
	return theme, true, nil
}

func (r *kvThemeRepo) Save(ctx context.Context, theme domain.Theme) error {
	if err := r.store.Set(ctx, ThemeKey, theme.String()); err != nil {
		return fmt.Errorf("repo.ThemeRepo.Save: %w: write: %w", domain.ErrStorage, err)
	}
	return nil
}
