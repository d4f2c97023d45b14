package mock

import (
	"context"

	"github.com/fwojciec/wallparse"
)

var _ wallparse.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of wallparse.RecordStore.
type RecordStore struct {
	SaveFn   func(ctx context.Context, rec *wallparse.Record) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *RecordStore) Save(ctx context.Context, rec *wallparse.Record) error {
	return s.SaveFn(ctx, rec)
}

func (s *RecordStore) Commit() error {
	return s.CommitFn()
}

func (s *RecordStore) Abort() error {
	return s.AbortFn()
}
