package wallparse

import (
	"context"
	"io"
)

// ExtractResult summarizes one extraction run.
type ExtractResult struct {
	// Records is the number of top-level records emitted.
	Records int

	// Comments is the number of comments attached to emitted records.
	Comments int

	// Discarded is the number of top-level records dropped because they
	// were incomplete or invalid.
	Discarded int

	// Diagnostics is the number of diagnostics reported.
	Diagnostics int
}

// Extractor extracts wall records from an export document.
type Extractor interface {
	// Extract reads the whole document and calls fn for every completed
	// top-level record, in document order. A partially built record is
	// never passed to fn.
	Extract(ctx context.Context, r io.Reader, fn RecordFunc) (*ExtractResult, error)
}
