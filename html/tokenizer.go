// Package html provides a wallparse.Tokenizer built on the
// golang.org/x/net/html tokenizer.
package html

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/wallparse"
	"golang.org/x/net/html"
)

// maxReferenceLen bounds how far past '&' a reference name is searched for.
const maxReferenceLen = 32

// Ensure Tokenizer implements wallparse.Tokenizer at compile time.
var _ wallparse.Tokenizer = (*Tokenizer)(nil)

// Tokenizer turns markup into wallparse.TokenHandler events. It does no
// tree construction: tags are reported exactly as they appear, and
// character references are passed on as Entity events instead of being
// decoded.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize reads r and feeds every event to h.
func (t *Tokenizer) Tokenize(ctx context.Context, r io.Reader, h wallparse.TokenHandler) error {
	z := html.NewTokenizer(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return err
			}
			return nil

		case html.StartTagToken:
			name, attrs := tag(z)
			h.OpenTag(name, attrs)

		case html.SelfClosingTagToken:
			// <br/> is both an open and a close.
			name, attrs := tag(z)
			h.OpenTag(name, attrs)
			h.CloseTag(name)

		case html.EndTagToken:
			name, _ := z.TagName()
			h.CloseTag(string(name))

		case html.TextToken:
			SplitReferences(string(z.Raw()), h)
		}
	}
}

// tag reads the name and attributes of the current tag token.
func tag(z *html.Tokenizer) (string, []wallparse.Attribute) {
	name, hasAttr := z.TagName()
	var attrs []wallparse.Attribute
	for hasAttr {
		var k, v []byte
		k, v, hasAttr = z.TagAttr()
		attrs = append(attrs, wallparse.Attribute{Key: string(k), Val: string(v)})
	}
	return string(name), attrs
}

// SplitReferences feeds raw character data to h, reporting every
// "&name;" reference as an Entity event and everything else as Text.
// An '&' that does not start a well-formed reference is literal text.
func SplitReferences(raw string, h wallparse.TokenHandler) {
	for raw != "" {
		i := strings.IndexByte(raw, '&')
		if i < 0 {
			h.Text(raw)
			return
		}

		name, n := scanReference(raw[i:])
		if n == 0 {
			h.Text(raw[:i+1])
			raw = raw[i+1:]
			continue
		}

		if i > 0 {
			h.Text(raw[:i])
		}
		h.Entity(name)
		raw = raw[i+n:]
	}
}

// scanReference parses a reference at the start of s, which begins with
// '&'. It returns the name and the number of bytes consumed, or 0 if s
// does not start with a reference.
func scanReference(s string) (string, int) {
	j := 1
	if j < len(s) && s[j] == '#' {
		j++
	}
	for j < len(s) && j <= maxReferenceLen && isNameByte(s[j]) {
		j++
	}
	if j >= len(s) || s[j] != ';' {
		return "", 0
	}
	name := s[1:j]
	if name == "" || name == "#" {
		return "", 0
	}
	return name, j + 1
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
