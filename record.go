package wallparse

import "context"

// RecordType distinguishes plain status text from shared link content.
type RecordType string

// RecordType constants.
const (
	RecordTypeText RecordType = "text"
	RecordTypeLink RecordType = "link"
)

// Record is one post on the wall, or one comment on a post. Both share
// the same shape; comments never carry nested comments of their own.
type Record struct {
	// Storage metadata, only set on records loaded from a RecordService.
	ID       string `json:"id,omitempty"`
	ExportID string `json:"exportId,omitempty"`
	Position int    `json:"position,omitempty"`

	Profile  string `json:"profile"`
	Data     string `json:"data"`
	Datetime string `json:"datetime"`

	// Comments is nil when the post had no comments section at all and
	// non-nil (possibly empty) when one was present.
	Comments []*Record `json:"comments,omitzero"`

	Likes *string    `json:"likes,omitempty"`
	Type  RecordType `json:"type"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Profile == "" {
		return Errorf(EINVALID, "record profile required")
	}
	if r.Datetime == "" {
		return Errorf(EINVALID, "record datetime required")
	}
	return nil
}

// HasComments reports whether a comments section was found for the record.
func (r *Record) HasComments() bool {
	return r.Comments != nil
}

// CommentCount returns the number of comments on the record.
func (r *Record) CommentCount() int {
	return len(r.Comments)
}

// LikesText returns the likes text or an empty string.
func (r *Record) LikesText() string {
	if r.Likes == nil {
		return ""
	}
	return *r.Likes
}

// RecordFunc receives records as they are completed.
// Returning an error stops extraction.
type RecordFunc func(*Record) error

// RecordService represents a service for managing stored records.
type RecordService interface {
	// CreateRecord stores a top-level record and its comments.
	// The record's ExportID must be set.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record, with its comments, by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves top-level records matching the filter,
	// ordered by position.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecordsByExport removes all records of an export.
	DeleteRecordsByExport(ctx context.Context, exportID string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID       *string `json:"id"`
	ExportID *string `json:"exportId"`
	Profile  *string `json:"profile"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
