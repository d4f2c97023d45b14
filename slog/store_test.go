package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/wallparse"
	"github.com/fwojciec/wallparse/mock"
	wallslog "github.com/fwojciec/wallparse/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecordStore(t *testing.T) {
	t.Parallel()

	t.Run("logs saves at debug and count on commit", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.RecordStore{
			SaveFn:   func(context.Context, *wallparse.Record) error { return nil },
			CommitFn: func() error { return nil },
		}

		store := wallslog.NewLoggingRecordStore(inner, logger)
		require.NoError(t, store.Save(context.Background(), &wallparse.Record{Profile: "Alice", Datetime: "May 4"}))
		require.NoError(t, store.Save(context.Background(), &wallparse.Record{Profile: "Bob", Datetime: "May 5"}))
		require.NoError(t, store.Commit())

		output := buf.String()
		assert.Contains(t, output, "level=DEBUG msg=save profile=Alice")
		assert.Contains(t, output, "msg=commit records=2")
	})

	t.Run("logs save errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordStore{
			SaveFn: func(context.Context, *wallparse.Record) error { return errors.New("disk full") },
		}

		store := wallslog.NewLoggingRecordStore(inner, logger)
		err := store.Save(context.Background(), &wallparse.Record{Profile: "Alice"})

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="disk full"`)
	})

	t.Run("delegates abort", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		aborted := false
		inner := &mock.RecordStore{
			AbortFn: func() error {
				aborted = true
				return nil
			},
		}

		store := wallslog.NewLoggingRecordStore(inner, logger)
		require.NoError(t, store.Abort())

		assert.True(t, aborted)
		assert.Contains(t, buf.String(), "msg=abort")
	})
}
