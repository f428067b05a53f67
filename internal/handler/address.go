package handler

import (
	"net/http"

	"github.com/pkordes/travel-diary/internal/address"
)

// FormatAddress handles POST /address/format.
// It runs the address formatter on a reverse-geocoding result supplied by the
// client and stores nothing.
func (s *Server) FormatAddress(w http.ResponseWriter, r *http.Request) {
	var body FormatAddressRequest
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Geocode == nil {
		writeError(w, http.StatusUnprocessableEntity, codeValidation, "geocode is required")
		return
	}
	pos, err := requestToPosition(body.Latitude, body.Longitude)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, codeValidation, err.Error())
		return
	}

	f := address.Format(*body.Geocode, pos.Longitude, pos.Latitude)
	writeJSON(w, http.StatusOK, FormattedAddress{
		Address:     f.Address,
		Coordinates: f.Coordinates,
		PlusCode:    nilIfEmpty(f.PlusCode),
	})
}
