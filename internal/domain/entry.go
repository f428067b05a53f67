// Package domain contains the core data types for the Travel Diary application.
// This package has zero external dependencies and is imported by every other
// internal package (kv, repo, service, handler, device).
package domain

import "time"

// TravelEntry is one diary record: a photo reference, the address it was taken
// at, and when. It is the only persisted entity. Entries are never edited in
// place; they are created by a save and destroyed by an explicit removal.
//
// The JSON tags define the persisted layout of the entry list.
type TravelEntry struct {
	ID          string `json:"id"`
	ImageURI    string `json:"imageUri"`
	Address     string `json:"address"`
	Coordinates string `json:"coordinates,omitempty"` // "(lon, lat)", six decimals
	PlusCode    string `json:"plusCode,omitempty"`
	Timestamp   int64  `json:"timestamp"` // milliseconds since the Unix epoch
}

// RecordedAt returns Timestamp as a time.Time in UTC.
func (e TravelEntry) RecordedAt() time.Time {
	return time.UnixMilli(e.Timestamp).UTC()
}

// Position is a device location fix.
type Position struct {
	Latitude  float64
	Longitude float64
}

// GeocodeResult is one candidate returned by reverse geocoding.
// Every field is optional; a missing value is the empty string.
type GeocodeResult struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Name       string `json:"name,omitempty"`
}

// FormattedAddress is the output of the address formatter.
type FormattedAddress struct {
	Address     string `json:"address"`
	Coordinates string `json:"coordinates"`
	PlusCode    string `json:"plusCode"`
}

// Draft is an entry being composed on the Add Entry screen: a captured photo
// plus whatever address information has been resolved so far.
// A Draft becomes a TravelEntry only when it is saved.
type Draft struct {
	ImageURI string
	FormattedAddress
}
