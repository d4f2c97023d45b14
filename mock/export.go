package mock

import (
	"context"

	"github.com/fwojciec/wallparse"
)

var _ wallparse.ExportService = (*ExportService)(nil)

// ExportService is a mock implementation of wallparse.ExportService.
type ExportService struct {
	CreateExportFn   func(ctx context.Context, export *wallparse.Export) error
	FindExportByIDFn func(ctx context.Context, id string) (*wallparse.Export, error)
	FindExportsFn    func(ctx context.Context, filter wallparse.ExportFilter) ([]*wallparse.Export, error)
	DeleteExportFn   func(ctx context.Context, id string) error
}

func (s *ExportService) CreateExport(ctx context.Context, export *wallparse.Export) error {
	return s.CreateExportFn(ctx, export)
}

func (s *ExportService) FindExportByID(ctx context.Context, id string) (*wallparse.Export, error) {
	return s.FindExportByIDFn(ctx, id)
}

func (s *ExportService) FindExports(ctx context.Context, filter wallparse.ExportFilter) ([]*wallparse.Export, error) {
	return s.FindExportsFn(ctx, filter)
}

func (s *ExportService) DeleteExport(ctx context.Context, id string) error {
	return s.DeleteExportFn(ctx, id)
}
