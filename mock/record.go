package mock

import (
	"context"

	"github.com/fwojciec/wallparse"
)

var _ wallparse.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of wallparse.RecordService.
type RecordService struct {
	CreateRecordFn          func(ctx context.Context, rec *wallparse.Record) error
	FindRecordByIDFn        func(ctx context.Context, id string) (*wallparse.Record, error)
	FindRecordsFn           func(ctx context.Context, filter wallparse.RecordFilter) ([]*wallparse.Record, error)
	DeleteRecordsByExportFn func(ctx context.Context, exportID string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *wallparse.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*wallparse.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter wallparse.RecordFilter) ([]*wallparse.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecordsByExport(ctx context.Context, exportID string) error {
	return s.DeleteRecordsByExportFn(ctx, exportID)
}
