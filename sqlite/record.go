package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fwojciec/wallparse"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wallparse.RecordService = (*RecordService)(nil)

const recordColumns = "id, export_id, parent_id, position, profile, data, datetime, likes, type, has_comments"

// RecordService implements wallparse.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord stores a post and its comments in a single transaction.
// The post is appended after the export's existing records; comments keep
// their order.
func (s *RecordService) CreateRecord(ctx context.Context, rec *wallparse.Record) error {
	if rec.ExportID == "" {
		return wallparse.Errorf(wallparse.EINVALID, "record export required")
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	for _, c := range rec.Comments {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM exports WHERE id = ?", rec.ExportID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return wallparse.Errorf(wallparse.ENOTFOUND, "export not found")
	}

	var last int
	if err := tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(position), 0) FROM records
		WHERE export_id = ? AND parent_id IS NULL
	`, rec.ExportID).Scan(&last); err != nil {
		return err
	}

	rec.Position = last + 1
	if err := insertRecord(ctx, tx, rec, nil); err != nil {
		return err
	}
	for i, c := range rec.Comments {
		c.ExportID = rec.ExportID
		c.Position = i + 1
		if err := insertRecord(ctx, tx, c, &rec.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertRecord(ctx context.Context, tx *sql.Tx, rec *wallparse.Record, parentID *string) error {
	rec.ID = uuid.New().String()
	if rec.Type == "" {
		rec.Type = wallparse.RecordTypeText
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO records (id, export_id, parent_id, position, profile, data, datetime, likes, type, has_comments, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.ExportID, parentID, rec.Position, rec.Profile, rec.Data, rec.Datetime,
		rec.Likes, string(rec.Type), rec.HasComments(), hashContent(rec.Profile, rec.Datetime, rec.Data))
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

// FindRecordByID retrieves a record by ID. Posts are returned with their
// comments.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*wallparse.Record, error) {
	rec, err := scanRecord(s.db.QueryRowContext(ctx,
		"SELECT "+recordColumns+" FROM records WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, wallparse.Errorf(wallparse.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}

	if err := s.attachComments(ctx, []*wallparse.Record{rec}); err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves posts matching the filter, ordered by export and
// position, each with its comments.
func (s *RecordService) FindRecords(ctx context.Context, filter wallparse.RecordFilter) ([]*wallparse.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE parent_id IS NULL")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ExportID != nil {
		query.WriteString(" AND export_id = ?")
		args = append(args, *filter.ExportID)
	}
	if filter.Profile != nil {
		query.WriteString(" AND profile = ?")
		args = append(args, *filter.Profile)
	}

	query.WriteString(" ORDER BY export_id ASC, position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	recs, err := s.queryRecords(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	if err := s.attachComments(ctx, recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// DeleteRecordsByExport removes all records of an export.
func (s *RecordService) DeleteRecordsByExport(ctx context.Context, exportID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE export_id = ?", exportID)
	return err
}

// attachComments loads the comments of every post in recs that had a
// comments section.
func (s *RecordService) attachComments(ctx context.Context, recs []*wallparse.Record) error {
	byID := make(map[string]*wallparse.Record)
	var ids []any
	for _, rec := range recs {
		if rec.Comments != nil {
			byID[rec.ID] = rec
			ids = append(ids, rec.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recordColumns+`, parent_id FROM records
		WHERE parent_id IN (`+placeholders(len(ids))+`)
		ORDER BY parent_id ASC, position ASC
	`, ids...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var parentID string
		c, err := scanRecord(rows, &parentID)
		if err != nil {
			return err
		}
		parent := byID[parentID]
		parent.Comments = append(parent.Comments, c)
	}
	return rows.Err()
}

func (s *RecordService) queryRecords(ctx context.Context, query string, args ...any) ([]*wallparse.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*wallparse.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// scanRecord scans the recordColumns plus any extra destinations.
// A post with has_comments set gets a non-nil empty Comments slice.
func scanRecord(row scanner, extra ...any) (*wallparse.Record, error) {
	var rec wallparse.Record
	var parentID, likes sql.NullString
	var typ string
	var hasComments bool

	dest := append([]any{&rec.ID, &rec.ExportID, &parentID, &rec.Position, &rec.Profile,
		&rec.Data, &rec.Datetime, &likes, &typ, &hasComments}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	rec.Type = wallparse.RecordType(typ)
	if likes.Valid {
		rec.Likes = &likes.String
	}
	if hasComments {
		rec.Comments = []*wallparse.Record{}
	}
	return &rec, nil
}
