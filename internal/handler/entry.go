package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/travel-diary/internal/domain"
)

// ListEntries handles GET /entries.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &page); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "page must be an integer")
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "limit must be an integer")
		return
	}

	params := domain.NewPaginationParams(page, limit)
	entries, total, err := s.entries.ListPaged(r.Context(), params)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	data := make([]Entry, len(entries))
	for i, e := range entries {
		data[i] = entryToResponse(e)
	}
	writeJSON(w, http.StatusOK, EntryList{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetEntry handles GET /entries/{id}.
func (s *Server) GetEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.entries.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entryToResponse(entry))
}

// CreateEntry handles POST /entries.
// The client has already taken the photo and fixed its position; the server
// resolves the address and saves the entry.
func (s *Server) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var body CreateEntryRequest
	if !decodeBody(w, r, &body) {
		return
	}
	pos, err := requestToPosition(body.Latitude, body.Longitude)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, codeValidation, err.Error())
		return
	}

	entry, err := s.recorder.Record(r.Context(), derefString(body.ImageURI), pos)
	if err != nil {
		if errors.Is(err, domain.ErrCaptureCanceled) {
			writeError(w, http.StatusUnprocessableEntity, codeValidation, "imageUri is required")
			return
		}
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entryToResponse(entry))
}

// DeleteEntry handles DELETE /entries/{id}.
// Deleting an id that does not exist also succeeds.
func (s *Server) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.entries.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// requestToPosition checks that both coordinates are present and in range.
func requestToPosition(lat, lon *float64) (domain.Position, error) {
	var problems []string
	switch {
	case lat == nil:
		problems = append(problems, "latitude is required")
	case *lat < -90 || *lat > 90:
		problems = append(problems, "latitude must be between -90 and 90")
	}
	switch {
	case lon == nil:
		problems = append(problems, "longitude is required")
	case *lon < -180 || *lon > 180:
		problems = append(problems, "longitude must be between -180 and 180")
	}
	if len(problems) > 0 {
		return domain.Position{}, errors.New(strings.Join(problems, "; "))
	}
	return domain.Position{Latitude: *lat, Longitude: *lon}, nil
}
