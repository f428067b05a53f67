package service

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-diary/internal/domain"
	"github.com/pkordes/travel-diary/internal/repo"
)

// ExportService assembles a flat export of every entry.
type ExportService struct {
	entries repo.EntryRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(entries repo.EntryRepo) *ExportService {
	return &ExportService{entries: entries}
}

// Export returns one ExportRow per entry, in stored (newest first) order.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	entries, err := s.entries.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, domain.ExportRow{
			EntryID:     e.ID,
			ImageURI:    e.ImageURI,
			Address:     e.Address,
			Coordinates: e.Coordinates,
			PlusCode:    e.PlusCode,
			Timestamp:   e.Timestamp,
			RecordedAt:  e.RecordedAt(),
		})
	}
	return rows, nil
}
