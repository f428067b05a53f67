// Package handler implements the HTTP handlers for the Travel Diary API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, entry.go, etc.) but share the same Server struct so they can
// reach its dependencies. Routes mounts them on a chi router.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travel-diary/internal/domain"
)

// EntryServicer defines the entry operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching storage.
type EntryServicer interface {
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.TravelEntry, int64, error)
	Get(ctx context.Context, id string) (domain.TravelEntry, error)
	Remove(ctx context.Context, id string) error
}

// EntryRecorder runs the Add Entry flow for an uploaded photo.
type EntryRecorder interface {
	Record(ctx context.Context, imageURI string, pos domain.Position) (domain.TravelEntry, error)
}

// ExportServicer defines the export operation the handlers depend on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	entries  EntryServicer
	recorder EntryRecorder
	export   ExportServicer
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// Any service may be nil in tests that do not exercise its routes.
func NewServer(entries EntryServicer, recorder EntryRecorder, export ExportServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{entries: entries, recorder: recorder, export: export, log: log}
}

// Routes returns a chi router with every API endpoint mounted.
// Cross-cutting middleware is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/entries", func(r chi.Router) {
		r.Get("/", s.ListEntries)
		r.Post("/", s.CreateEntry)
		r.Get("/{id}", s.GetEntry)
		r.Delete("/{id}", s.DeleteEntry)
	})

	r.Post("/address/format", s.FormatAddress)
	r.Get("/export", s.GetExport)
	return r
}
