package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/wallparse"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wallparse.ExportService = (*ExportService)(nil)

// ExportService implements wallparse.ExportService using SQLite.
type ExportService struct {
	db *DB
}

// NewExportService creates a new ExportService.
func NewExportService(db *DB) *ExportService {
	return &ExportService{db: db}
}

// CreateExport creates a new export.
func (s *ExportService) CreateExport(ctx context.Context, export *wallparse.Export) error {
	if err := export.Validate(); err != nil {
		return err
	}

	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM exports WHERE name = ?", export.Name).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return wallparse.Errorf(wallparse.ECONFLICT, "export %q already exists", export.Name)
	}

	export.ID = uuid.New().String()
	export.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exports (id, name, source_path, created_at)
		VALUES (?, ?, ?, ?)
	`, export.ID, export.Name, export.SourcePath, export.CreatedAt.Format(time.RFC3339))

	return err
}

// FindExportByID retrieves an export by ID.
func (s *ExportService) FindExportByID(ctx context.Context, id string) (*wallparse.Export, error) {
	export, err := scanExport(s.db.QueryRowContext(ctx, `
		SELECT id, name, source_path, created_at
		FROM exports
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, wallparse.Errorf(wallparse.ENOTFOUND, "export not found")
	}
	if err != nil {
		return nil, err
	}
	return export, nil
}

// FindExports retrieves exports matching the filter, newest first.
func (s *ExportService) FindExports(ctx context.Context, filter wallparse.ExportFilter) ([]*wallparse.Export, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_path, created_at FROM exports WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC, name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exports []*wallparse.Export
	for rows.Next() {
		export, err := scanExport(rows)
		if err != nil {
			return nil, err
		}
		exports = append(exports, export)
	}

	return exports, rows.Err()
}

// DeleteExport permanently removes an export. Its records are removed
// by the foreign key cascade.
func (s *ExportService) DeleteExport(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM exports WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return wallparse.Errorf(wallparse.ENOTFOUND, "export not found")
	}

	return nil
}

func scanExport(row scanner) (*wallparse.Export, error) {
	var export wallparse.Export
	var createdAt string

	if err := row.Scan(&export.ID, &export.Name, &export.SourcePath, &createdAt); err != nil {
		return nil, err
	}

	var err error
	export.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &export, nil
}
