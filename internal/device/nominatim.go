package device

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/travel-diary/internal/domain"
)

// DefaultNominatimURL is the public OpenStreetMap Nominatim instance.
const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder reverse-geocodes through a Nominatim-compatible
// /reverse endpoint.
type NominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewNominatimGeocoder builds a geocoder for baseURL. Nominatim's usage policy
// requires an identifying User-Agent.
func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	return &NominatimGeocoder{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// nominatimResponse is the subset of the jsonv2 reverse payload we read.
type nominatimResponse struct {
	Error   string `json:"error"`
	Name    string `json:"name"`
	Address struct {
		HouseNumber string `json:"house_number"`
		Road        string `json:"road"`
		Pedestrian  string `json:"pedestrian"`
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		Hamlet      string `json:"hamlet"`
		State       string `json:"state"`
		Region      string `json:"region"`
		Postcode    string `json:"postcode"`
	} `json:"address"`
}

// ReverseGeocode returns at most one result. A position Nominatim cannot
// resolve (open sea, for instance) yields an empty slice.
func (g *NominatimGeocoder) ReverseGeocode(ctx context.Context, pos domain.Position) ([]domain.GeocodeResult, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")
	q.Set("lat", strconv.FormatFloat(pos.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(pos.Longitude, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("device.NominatimGeocoder.ReverseGeocode: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("device.NominatimGeocoder.ReverseGeocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("device.NominatimGeocoder.ReverseGeocode: unexpected status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("device.NominatimGeocoder.ReverseGeocode: decode: %w", err)
	}
	if body.Error != "" {
		return []domain.GeocodeResult{}, nil
	}

	a := body.Address
	return []domain.GeocodeResult{{
		Street:     firstNonEmpty(a.Road, a.Pedestrian),
		City:       firstNonEmpty(a.City, a.Town, a.Village, a.Hamlet),
		Region:     firstNonEmpty(a.State, a.Region),
		PostalCode: a.Postcode,
		Name:       body.Name,
	}}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
