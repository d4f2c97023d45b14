package bloom

import (
	"context"

	"github.com/fwojciec/wallparse"
)

// Default sizing for DedupStore filters.
const (
	DefaultExpectedRecords   = 100_000
	DefaultFalsePositiveRate = 0.0001
)

// Ensure DedupStore implements wallparse.RecordStore at compile time.
var _ wallparse.RecordStore = (*DedupStore)(nil)

// DedupStore forwards each distinct record to the wrapped store once and
// skips repeats. A false positive skips a record that was not seen before,
// at the filter's configured rate.
type DedupStore struct {
	next    wallparse.RecordStore
	filter  *Filter
	skipped int
}

// NewDedupStore wraps next with duplicate suppression using filter.
func NewDedupStore(next wallparse.RecordStore, filter *Filter) *DedupStore {
	return &DedupStore{next: next, filter: filter}
}

func (s *DedupStore) Save(ctx context.Context, rec *wallparse.Record) error {
	if s.filter.Test(rec) {
		s.skipped++
		return nil
	}
	if err := s.next.Save(ctx, rec); err != nil {
		return err
	}
	s.filter.Add(rec)
	return nil
}

// Skipped returns the number of records suppressed as duplicates.
func (s *DedupStore) Skipped() int {
	return s.skipped
}

func (s *DedupStore) Commit() error {
	return s.next.Commit()
}

func (s *DedupStore) Abort() error {
	return s.next.Abort()
}
