package wallparse

import (
	"context"
	"io"
)

// Attribute is a single name/value pair of an opening tag.
type Attribute struct {
	Key string
	Val string
}

// TokenHandler consumes markup events in document order.
type TokenHandler interface {
	// OpenTag is called for every opening tag. Names are lower case.
	OpenTag(name string, attrs []Attribute)

	// CloseTag is called for every closing tag.
	CloseTag(name string)

	// Text is called for literal character data, with references removed.
	Text(text string)

	// Entity is called for every named reference (e.g. "amp" for &amp;).
	Entity(name string)
}

// Tokenizer turns raw markup into TokenHandler events.
type Tokenizer interface {
	// Tokenize reads r to the end and feeds every event to h.
	// It stops early and returns ctx.Err() when ctx is canceled.
	Tokenize(ctx context.Context, r io.Reader, h TokenHandler) error
}
