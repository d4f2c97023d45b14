// Package goquery inspects export documents with CSS selectors.
package goquery

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wallparse"
)

// Ensure Prober implements wallparse.Prober at compile time.
var _ wallparse.Prober = (*Prober)(nil)

// Prober builds a DOM of the whole document and counts its wall markers.
// Unlike the streaming extractor it holds the document in memory, so it
// is meant for a quick look at an unfamiliar export.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Probe parses r and summarizes its structure.
func (p *Prober) Probe(ctx context.Context, r io.Reader) (*wallparse.Probe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	probe := &wallparse.Probe{
		Title:          collapse(doc.Find("title").First().Text()),
		DownloadNotice: collapse(doc.Find("div.downloadnotice").First().Text()),
		Entries:        doc.Find("div.feedentry").Length(),
		// "comment like" carries a post's likes, not a comment.
		Comments: doc.Find("div.comments div.comment:not(.like)").Length(),
		Links:    doc.Find("table.walllink").Length(),
		Classes:  make(map[string]int),
	}

	doc.Find("div[class], span[class]").Each(func(_ int, s *goquery.Selection) {
		if class, exists := s.Attr("class"); exists {
			probe.Classes[goquery.NodeName(s)+"."+class]++
		}
	})

	return probe, nil
}

// collapse joins whitespace runs into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
