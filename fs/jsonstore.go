package fs

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fwojciec/wallparse"
)

// Ensure JSONStore implements wallparse.RecordStore at compile time.
var _ wallparse.RecordStore = (*JSONStore)(nil)

// JSONStore writes records as JSON Lines, one post per line with its
// comments nested.
type JSONStore struct {
	file *pendingFile
	enc  *json.Encoder
}

// NewJSONStore creates a JSONStore that replaces path on Commit.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{file: newPendingFile(path)}
}

// NewJSONWriter creates a JSONStore that writes straight to w.
func NewJSONWriter(w io.Writer) *JSONStore {
	return &JSONStore{file: newPassthrough(w)}
}

func (s *JSONStore) Save(ctx context.Context, rec *wallparse.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.enc == nil {
		w, err := s.file.writer()
		if err != nil {
			return err
		}
		s.enc = json.NewEncoder(w)
		// Post text is plain text; keep & < > readable.
		s.enc.SetEscapeHTML(false)
	}
	return s.enc.Encode(rec)
}

func (s *JSONStore) Commit() error {
	return s.file.commit()
}

func (s *JSONStore) Abort() error {
	return s.file.abort()
}
