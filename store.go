package wallparse

import "context"

// RecordStore persists extracted records with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type RecordStore interface {
	Save(ctx context.Context, rec *Record) error
	Commit() error
	Abort() error
}
