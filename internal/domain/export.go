package domain

import "time"

// ExportRow is a single row in the full-data export, one per entry.
// Optional entry fields are carried as empty strings.
type ExportRow struct {
	EntryID     string
	ImageURI    string
	Address     string
	Coordinates string
	PlusCode    string
	Timestamp   int64
	RecordedAt  time.Time
}
