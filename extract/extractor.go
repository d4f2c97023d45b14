package extract

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/wallparse"
	"golang.org/x/sync/errgroup"
)

// Ensure Extractor implements wallparse.Extractor at compile time.
var _ wallparse.Extractor = (*Extractor)(nil)

// Extractor runs a fresh Engine over every document fed by Tokenizer.
type Extractor struct {
	Tokenizer   wallparse.Tokenizer
	Diagnostics wallparse.DiagnosticSink
}

// NewExtractor creates a new Extractor.
func NewExtractor(tokenizer wallparse.Tokenizer, diagnostics wallparse.DiagnosticSink) *Extractor {
	return &Extractor{Tokenizer: tokenizer, Diagnostics: diagnostics}
}

// Extract reads one document and calls fn for every completed record.
// If the tokenizer fails or ctx is canceled, the record being built is
// dropped and the error is returned.
func (x *Extractor) Extract(ctx context.Context, r io.Reader, fn wallparse.RecordFunc) (*wallparse.ExtractResult, error) {
	if x.Tokenizer == nil {
		return nil, wallparse.Errorf(wallparse.EINVALID, "extractor tokenizer required")
	}

	eng := NewEngine(fn, x.Diagnostics)
	if err := x.Tokenizer.Tokenize(ctx, r, eng); err != nil {
		return nil, err
	}
	return eng.Finish()
}

// Source is one document to extract.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileSource returns a Source reading the file at path.
func FileSource(path string) Source {
	return Source{
		Name: path,
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// DocumentResult holds the outcome of extracting one Source.
type DocumentResult struct {
	Name    string
	Records []*wallparse.Record
	Result  *wallparse.ExtractResult
	Err     error
}

// DefaultConcurrency is the number of documents extracted at once when
// ExtractAll is given a non-positive limit.
const DefaultConcurrency = 4

// ExtractAll extracts every source concurrently, each with its own
// engine. Results are returned in the order of sources. A failing
// document is reported in its DocumentResult and does not stop the
// others; only cancellation of ctx fails the whole call.
func ExtractAll(ctx context.Context, x wallparse.Extractor, sources []Source, concurrency int) ([]*DocumentResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*DocumentResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, src := range sources {
		g.Go(func() error {
			results[i] = extractSource(gctx, x, src)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func extractSource(ctx context.Context, x wallparse.Extractor, src Source) *DocumentResult {
	dr := &DocumentResult{Name: src.Name}

	rc, err := src.Open()
	if err != nil {
		dr.Err = fmt.Errorf("failed to open document: %w", err)
		return dr
	}
	defer rc.Close()

	dr.Result, dr.Err = x.Extract(ctx, rc, func(rec *wallparse.Record) error {
		dr.Records = append(dr.Records, rec)
		return nil
	})
	if dr.Err != nil {
		dr.Records = nil
	}
	return dr
}
