package sqlite

import (
	"context"

	"github.com/fwojciec/wallparse"
)

// Compile-time interface verification.
var _ wallparse.RecordStore = (*RecordStore)(nil)

// RecordStore saves records into one export through a RecordService.
// Each record is written when saved; Abort removes everything the export
// holds so a failed import leaves no partial wall behind.
type RecordStore struct {
	records  wallparse.RecordService
	exportID string
}

// NewRecordStore creates a RecordStore writing to the given export.
func NewRecordStore(records wallparse.RecordService, exportID string) *RecordStore {
	return &RecordStore{records: records, exportID: exportID}
}

// Save stores rec under the store's export.
func (s *RecordStore) Save(ctx context.Context, rec *wallparse.Record) error {
	rec.ExportID = s.exportID
	return s.records.CreateRecord(ctx, rec)
}

// Commit is a no-op; records are durable once saved.
func (s *RecordStore) Commit() error {
	return nil
}

// Abort deletes the export's records.
func (s *RecordStore) Abort() error {
	return s.records.DeleteRecordsByExport(context.Background(), s.exportID)
}
