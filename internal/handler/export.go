package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/travel-diary/internal/domain"
)

// Values accepted by ?format=.
const (
	exportFormatJSON = "json"
	exportFormatCSV  = "csv"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"id", "image_uri", "address", "coordinates", "plus_code", "timestamp", "recorded_at",
}

// GetExport handles GET /export.
// It returns every entry as a flat table, as JSON (default) or ?format=csv.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		writeError(w, http.StatusBadRequest, codeValidation, "format must be a string")
		return
	}
	f := exportFormatJSON
	if format != nil {
		f = *format
	}
	if f != exportFormatJSON && f != exportFormatCSV {
		writeError(w, http.StatusBadRequest, codeValidation, "format must be json or csv")
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if f == exportFormatCSV {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, buildJSONRows(rows))
}

// buildJSONRows converts domain rows to their wire form.
func buildJSONRows(rows []domain.ExportRow) []ExportRow {
	out := make([]ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ExportRow{
			EntryID:     r.EntryID,
			ImageURI:    r.ImageURI,
			Address:     r.Address,
			Coordinates: nilIfEmpty(r.Coordinates),
			PlusCode:    nilIfEmpty(r.PlusCode),
			Timestamp:   r.Timestamp,
			RecordedAt:  r.RecordedAt,
		})
	}
	return out
}

// writeCSV encodes rows as a CSV attachment.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(domainRowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="travel-entries.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.EntryID,
		r.ImageURI,
		r.Address,
		r.Coordinates,
		r.PlusCode,
		strconv.FormatInt(r.Timestamp, 10),
		r.RecordedAt.UTC().Format(time.RFC3339),
	}
}
