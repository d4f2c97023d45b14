package mock

import (
	"context"
	"io"

	"github.com/fwojciec/wallparse"
)

var _ wallparse.Prober = (*Prober)(nil)

// Prober is a mock implementation of wallparse.Prober.
type Prober struct {
	ProbeFn func(ctx context.Context, r io.Reader) (*wallparse.Probe, error)
}

func (p *Prober) Probe(ctx context.Context, r io.Reader) (*wallparse.Probe, error) {
	return p.ProbeFn(ctx, r)
}
