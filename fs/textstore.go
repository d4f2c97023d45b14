package fs

import (
	"context"
	"io"

	"github.com/fwojciec/wallparse"
)

// Ensure TextStore implements wallparse.RecordStore at compile time.
var _ wallparse.RecordStore = (*TextStore)(nil)

// TextStore writes records in the plain-text layout of wallparse.FormatRecords.
type TextStore struct {
	file  *pendingFile
	saved int
}

// NewTextStore creates a TextStore that replaces path on Commit.
func NewTextStore(path string) *TextStore {
	return &TextStore{file: newPendingFile(path)}
}

// NewTextWriter creates a TextStore that writes straight to w.
func NewTextWriter(w io.Writer) *TextStore {
	return &TextStore{file: newPassthrough(w)}
}

func (s *TextStore) Save(ctx context.Context, rec *wallparse.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w, err := s.file.writer()
	if err != nil {
		return err
	}
	sep := ""
	if s.saved > 0 {
		sep = "\n"
	}
	if _, err := io.WriteString(w, sep+wallparse.FormatRecord(rec)+"\n"); err != nil {
		return err
	}
	s.saved++
	return nil
}

func (s *TextStore) Commit() error {
	return s.file.commit()
}

func (s *TextStore) Abort() error {
	return s.file.abort()
}
