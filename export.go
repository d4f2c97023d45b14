package wallparse

import (
	"context"
	"time"
)

// Export represents one imported wall.html file.
type Export struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SourcePath string    `json:"sourcePath"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the export contains invalid fields.
func (e *Export) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "export name required")
	}
	if e.SourcePath == "" {
		return Errorf(EINVALID, "export source path required")
	}
	return nil
}

// ExportService represents a service for managing exports.
type ExportService interface {
	// CreateExport creates a new export.
	// Returns ECONFLICT if an export with the same name exists.
	CreateExport(ctx context.Context, export *Export) error

	// FindExportByID retrieves an export by ID.
	// Returns ENOTFOUND if export does not exist.
	FindExportByID(ctx context.Context, id string) (*Export, error)

	// FindExports retrieves exports matching the filter.
	FindExports(ctx context.Context, filter ExportFilter) ([]*Export, error)

	// DeleteExport permanently removes an export and all of its records.
	// Returns ENOTFOUND if export does not exist.
	DeleteExport(ctx context.Context, id string) error
}

// ExportFilter represents a filter for FindExports.
type ExportFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
