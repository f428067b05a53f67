package handler

import (
	"time"

	"github.com/pkordes/travel-diary/internal/domain"
)

// Wire types mirror the schemas in api/openapi.yaml. Optional fields are
// pointers so that absent and zero can be told apart.

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// Entry is a stored travel entry.
type Entry struct {
	ID          string  `json:"id"`
	ImageURI    string  `json:"imageUri"`
	Address     string  `json:"address"`
	Coordinates *string `json:"coordinates,omitempty"`
	PlusCode    *string `json:"plusCode,omitempty"`
	Timestamp   int64   `json:"timestamp"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// EntryList is the body of GET /entries.
type EntryList struct {
	Data       []Entry    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// CreateEntryRequest is the body of POST /entries.
type CreateEntryRequest struct {
	ImageURI  *string  `json:"imageUri"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// FormatAddressRequest is the body of POST /address/format.
type FormatAddressRequest struct {
	Geocode   *domain.GeocodeResult `json:"geocode"`
	Latitude  *float64              `json:"latitude"`
	Longitude *float64              `json:"longitude"`
}

// FormattedAddress is the body returned by POST /address/format.
type FormattedAddress struct {
	Address     string  `json:"address"`
	Coordinates string  `json:"coordinates"`
	PlusCode    *string `json:"plusCode,omitempty"`
}

// ExportRow is one element of the JSON export.
type ExportRow struct {
	EntryID     string    `json:"entryId"`
	ImageURI    string    `json:"imageUri"`
	Address     string    `json:"address"`
	Coordinates *string   `json:"coordinates,omitempty"`
	PlusCode    *string   `json:"plusCode,omitempty"`
	Timestamp   int64     `json:"timestamp"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// entryToResponse maps a domain entry to its wire form.
func entryToResponse(e domain.TravelEntry) Entry {
	return Entry{
		ID:          e.ID,
		ImageURI:    e.ImageURI,
		Address:     e.Address,
		Coordinates: nilIfEmpty(e.Coordinates),
		PlusCode:    nilIfEmpty(e.PlusCode),
		Timestamp:   e.Timestamp,
	}
}

// nilIfEmpty returns nil for "" so optional fields are omitted.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// derefString returns *s, or "" for nil.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
