package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-diary/internal/domain"
	"github.com/pkordes/travel-diary/internal/handler"
)

// mockEntryServicer is a test double for handler.EntryServicer.
// Set only the method fields your test needs.
type mockEntryServicer struct {
	listPaged func(ctx context.Context, p domain.PaginationParams) ([]domain.TravelEntry, int64, error)
	get       func(ctx context.Context, id string) (domain.TravelEntry, error)
	remove    func(ctx context.Context, id string) error
}

func (m *mockEntryServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.TravelEntry, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockEntryServicer) Get(ctx context.Context, id string) (domain.TravelEntry, error) {
	return m.get(ctx, id)
}
func (m *mockEntryServicer) Remove(ctx context.Context, id string) error {
	return m.remove(ctx, id)
}

// compile-time check: mockEntryServicer must satisfy handler.EntryServicer.
var _ handler.EntryServicer = (*mockEntryServicer)(nil)

type mockRecorder struct {
	record func(ctx context.Context, imageURI string, pos domain.Position) (domain.TravelEntry, error)
}

func (m *mockRecorder) Record(ctx context.Context, imageURI string, pos domain.Position) (domain.TravelEntry, error) {
	return m.record(ctx, imageURI, pos)
}

var _ handler.EntryRecorder = (*mockRecorder)(nil)

type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into the chi router,
// the same way main.go does in production.
func newHTTPHandler(entries handler.EntryServicer, recorder handler.EntryRecorder, export handler.ExportServicer) http.Handler {
	srv := handler.NewServer(entries, recorder, export, slog.New(slog.DiscardHandler))
	return srv.Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, body *bytes.Buffer) handler.ErrorDetail {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp.Error
}

func entryFixture() domain.TravelEntry {
	return domain.TravelEntry{
		ID:          "4b3f2c1e-0000-4000-8000-000000000001",
		ImageURI:    "file:///photos/1.jpg",
		Address:     "Market St, San Francisco, CA, 94103",
		Coordinates: "(-122.419416, 37.774929)",
		PlusCode:    "849VQHFJ+X6",
		Timestamp:   1748779200000,
	}
}
