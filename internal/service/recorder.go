package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/travel-diary/internal/device"
	"github.com/pkordes/travel-diary/internal/domain"
)

// Recorder runs the Add Entry flow for a client that has already taken the
// photo and fixed its position, as the HTTP API does. Each call gets its own
// Composer over an uploaded-photo camera and a fixed locator.
type Recorder struct {
	entries  *EntryService
	geocoder device.Geocoder
	notifier Notifier
	log      *slog.Logger
}

// NewRecorder constructs a Recorder that resolves addresses with geocoder.
func NewRecorder(entries *EntryService, geocoder device.Geocoder, notifier Notifier, log *slog.Logger) *Recorder {
	return &Recorder{entries: entries, geocoder: geocoder, notifier: notifier, log: log}
}

// Record saves a new entry for the photo at imageURI taken at pos.
// Errors are those of Composer.TakePicture and EntryService.Save.
func (r *Recorder) Record(ctx context.Context, imageURI string, pos domain.Position) (domain.TravelEntry, error) {
	c := NewComposer(r.entries, device.UploadedPhoto(imageURI), device.NewFixedLocator(pos, r.geocoder), r.notifier, r.log)
	entry, err := c.Run(ctx)
	if err != nil {
		return domain.TravelEntry{}, fmt.Errorf("service.Recorder.Record: %w", err)
	}
	return entry, nil
}
