package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/wallparse"
)

// Ensure LoggingRecordStore implements wallparse.RecordStore.
var _ wallparse.RecordStore = (*LoggingRecordStore)(nil)

// LoggingRecordStore wraps a RecordStore with debug logging.
type LoggingRecordStore struct {
	next   wallparse.RecordStore
	logger *slog.Logger
	saved  int
}

// NewLoggingRecordStore creates a new LoggingRecordStore.
func NewLoggingRecordStore(next wallparse.RecordStore, logger *slog.Logger) *LoggingRecordStore {
	return &LoggingRecordStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the record.
func (s *LoggingRecordStore) Save(ctx context.Context, rec *wallparse.Record) error {
	if err := s.next.Save(ctx, rec); err != nil {
		s.logger.Error("save", "profile", rec.Profile, "datetime", rec.Datetime, "err", err)
		return err
	}
	s.saved++
	s.logger.Debug("save", "profile", rec.Profile, "datetime", rec.Datetime, "comments", rec.CommentCount())
	return nil
}

// Commit delegates to the wrapped store and logs the number of saved records.
func (s *LoggingRecordStore) Commit() error {
	if err := s.next.Commit(); err != nil {
		s.logger.Error("commit", "err", err)
		return err
	}
	s.logger.Info("commit", "records", s.saved)
	return nil
}

// Abort delegates to the wrapped store.
func (s *LoggingRecordStore) Abort() error {
	s.logger.Warn("abort", "records", s.saved)
	return s.next.Abort()
}
