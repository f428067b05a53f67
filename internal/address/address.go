// Package address turns raw reverse-geocoding output into the strings shown on
// and stored with a diary entry. Everything here is a pure function of its inputs.
package address

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/pkordes/travel-diary/internal/domain"
)

// separator joins address parts.
const separator = ", "

// Format derives the address, coordinates and plus code for a location.
//
//   - PlusCode is the result's Name when it contains a '+', otherwise "".
//   - Address is the non-empty values of street, city, region and postal code,
//     in that order, minus any value equal to PlusCode, joined with ", ".
//     When every field is empty the address is "" and the caller must not save.
//   - Coordinates is "(lon, lat)" with six digits after the decimal point.
//
// Name is never one of the joined fields, so the plus code exclusion only
// matters if a geocoder echoes the code into another field.
func Format(loc domain.GeocodeResult, longitude, latitude float64) domain.FormattedAddress {
	plusCode := ""
	if strings.Contains(loc.Name, "+") {
		plusCode = loc.Name
	}

	parts := make([]string, 0, 4)
	for _, part := range []string{loc.Street, loc.City, loc.Region, loc.PostalCode} {
		if part == "" || part == plusCode {
			continue
		}
		parts = append(parts, part)
	}

	return domain.FormattedAddress{
		Address:     strings.Join(parts, separator),
		Coordinates: Coordinates(longitude, latitude),
		PlusCode:    plusCode,
	}
}

// Coordinates formats a longitude/latitude pair as "(lon, lat)".
func Coordinates(longitude, latitude float64) string {
	return "(" + fixed6(longitude) + ", " + fixed6(latitude) + ")"
}

// fixed6 renders x with six fractional digits, rounding the exact binary
// value of x half away from zero. fmt's %.6f rounds exact ties to even, which
// would store 0.0078125 as 0.007812 where existing entries hold 0.007813.
func fixed6(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Sprintf("%.6f", x)
	}

	r := new(big.Rat).SetFloat64(math.Abs(x))
	r.Mul(r, scale6)
	r.Add(r, half)
	n := new(big.Int).Quo(r.Num(), r.Denom()) // floor, r is positive

	digits := n.String()
	if len(digits) < 7 {
		digits = strings.Repeat("0", 7-len(digits)) + digits
	}
	out := digits[:len(digits)-6] + "." + digits[len(digits)-6:]
	if x < 0 {
		out = "-" + out
	}
	return out
}

var (
	scale6 = big.NewRat(1_000_000, 1)
	half   = big.NewRat(1, 2)
)

// FirstResult returns the first reverse-geocoding candidate.
// ok is false when the geocoder found nothing.
func FirstResult(results []domain.GeocodeResult) (domain.GeocodeResult, bool) {
	if len(results) == 0 {
		return domain.GeocodeResult{}, false
	}
	return results[0], true
}
