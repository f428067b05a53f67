package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/travel-diary/internal/domain"
)

// Error codes returned in ErrorDetail.Code.
const (
	codeNotFound            = "not_found"
	codeValidation          = "validation_error"
	codeStorage             = "storage_error"
	codeLocationUnavailable = "location_unavailable"
	codeInternal            = "internal_error"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the client has gone if this fails; nothing left to report to.
	json.NewEncoder(w).Encode(v)
}

// writeError writes an ErrorResponse.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeServiceError maps an error from the service layer onto a response.
// Validation and not-found messages come from the wrapped error; storage and
// unexpected failures are logged and answered with a fixed message.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "entry not found")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, codeValidation, domain.Reason(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrLocationUnavailable):
		s.log.WarnContext(r.Context(), "location unavailable", "error", err)
		writeError(w, http.StatusServiceUnavailable, codeLocationUnavailable, "unable to fetch location")
	case errors.Is(err, domain.ErrStorage):
		s.log.ErrorContext(r.Context(), "storage failure", "error", err)
		writeError(w, http.StatusInternalServerError, codeStorage, "travel entries could not be read or written")
	default:
		s.log.ErrorContext(r.Context(), "unhandled error", "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}

// decodeBody decodes a JSON request body into dst and writes the error
// response itself when it cannot. It reports whether decoding succeeded.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, codeValidation, "request body too large")
		return false
	}
	writeError(w, http.StatusUnprocessableEntity, codeValidation, "request body must be a JSON object")
	return false
}
