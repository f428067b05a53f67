package device

import (
	"context"

	"github.com/pkordes/travel-diary/internal/domain"
)

// Geocoder translates a position into candidate postal addresses.
// An empty result is not an error.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, pos domain.Position) ([]domain.GeocodeResult, error)
}

// FixedLocator reports a position supplied up front (by a request body or a
// command-line flag) and delegates reverse geocoding.
type FixedLocator struct {
	pos      domain.Position
	geocoder Geocoder
}

// NewFixedLocator returns a locator that always reports pos.
func NewFixedLocator(pos domain.Position, geocoder Geocoder) *FixedLocator {
	return &FixedLocator{pos: pos, geocoder: geocoder}
}

func (l *FixedLocator) RequestPermission(context.Context) (domain.Permission, error) {
	return domain.PermissionGranted, nil
}

func (l *FixedLocator) CurrentPosition(ctx context.Context) (domain.Position, error) {
	if err := ctx.Err(); err != nil {
		return domain.Position{}, err
	}
	return l.pos, nil
}

func (l *FixedLocator) ReverseGeocode(ctx context.Context, pos domain.Position) ([]domain.GeocodeResult, error) {
	return l.geocoder.ReverseGeocode(ctx, pos)
}

// StaticGeocoder answers every lookup with the same results. The CLI uses it
// when the address is typed in by hand.
type StaticGeocoder []domain.GeocodeResult

func (g StaticGeocoder) ReverseGeocode(context.Context, domain.Position) ([]domain.GeocodeResult, error) {
	out := make([]domain.GeocodeResult, len(g))
	copy(out, g)
	return out, nil
}
