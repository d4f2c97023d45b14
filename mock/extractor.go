package mock

import (
	"context"
	"io"

	"github.com/fwojciec/wallparse"
)

// Compile-time interface verification.
var (
	_ wallparse.Extractor      = (*Extractor)(nil)
	_ wallparse.Tokenizer      = (*Tokenizer)(nil)
	_ wallparse.DiagnosticSink = (*DiagnosticSink)(nil)
)

// Extractor is a mock implementation of wallparse.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, r io.Reader, fn wallparse.RecordFunc) (*wallparse.ExtractResult, error)
}

func (x *Extractor) Extract(ctx context.Context, r io.Reader, fn wallparse.RecordFunc) (*wallparse.ExtractResult, error) {
	return x.ExtractFn(ctx, r, fn)
}

// Tokenizer is a mock implementation of wallparse.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(ctx context.Context, r io.Reader, h wallparse.TokenHandler) error
}

func (t *Tokenizer) Tokenize(ctx context.Context, r io.Reader, h wallparse.TokenHandler) error {
	return t.TokenizeFn(ctx, r, h)
}

// DiagnosticSink is a mock implementation of wallparse.DiagnosticSink.
type DiagnosticSink struct {
	ReportFn func(d wallparse.Diagnostic)
}

func (s *DiagnosticSink) Report(d wallparse.Diagnostic) {
	s.ReportFn(d)
}
