package goquery_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/fwojciec/wallparse"
	"github.com/fwojciec/wallparse/extract"
	"github.com/fwojciec/wallparse/goquery"
	wallhtml "github.com/fwojciec/wallparse/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wallHTML = `<!DOCTYPE html>
<html>
<head><title>Alice  -
  Wall</title></head>
<body>
<div class="downloadnotice">Downloaded by Alice
 on May 4, 2011</div>
<div class="tabwall">
<div class="feedentry"><span class="profile">Alice</span> shared a link
<table class="walllink"><tr><td>example.com</td></tr></table>
<div class="timerow"><span class="time">May 3, 2011 at 9:00am</span></div>
<div class="comments"><div class="comment like">2 people like this.</div>
<div class="comment"><span class="profile">Bob</span> Nice<div class="timerow"><span class="time">May 3, 2011 at 9:30am</span></div></div>
<div class="comment"><span class="profile">Carol</span> Agreed<div class="timerow"><span class="time">May 3, 2011 at 9:45am</span></div></div>
</div>
</div>
<div class="feedentry"><span class="profile">Dave</span> Happy birthday!
<div class="timerow"><span class="time">May 2, 2011 at 8:00pm</span></div>
</div>
</div>
</body>
</html>`

func TestProber_Probe(t *testing.T) {
	t.Parallel()

	t.Run("summarizes a wall export", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewProber()
		probe, err := p.Probe(context.Background(), strings.NewReader(wallHTML))

		require.NoError(t, err)
		assert.True(t, probe.IsWallExport())
		assert.Equal(t, "Alice - Wall", probe.Title)
		assert.Equal(t, "Downloaded by Alice on May 4, 2011", probe.DownloadNotice)
		assert.Equal(t, 2, probe.Entries)
		assert.Equal(t, 2, probe.Comments)
		assert.Equal(t, 1, probe.Links)
		assert.Equal(t, 2, probe.Classes["div.feedentry"])
		assert.Equal(t, 1, probe.Classes["div.comment like"])
		assert.Equal(t, 4, probe.Classes["span.profile"])
		assert.Equal(t, 4, probe.Classes["div.timerow"])
	})

	t.Run("agrees with the extractor on a well-formed export", func(t *testing.T) {
		t.Parallel()

		probe, err := goquery.NewProber().Probe(context.Background(), strings.NewReader(wallHTML))
		require.NoError(t, err)

		x := extract.NewExtractor(wallhtml.NewTokenizer(), nil)
		var links int
		result, err := x.Extract(context.Background(), strings.NewReader(wallHTML), func(rec *wallparse.Record) error {
			if rec.Type == wallparse.RecordTypeLink {
				links++
			}
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, probe.Entries, result.Records)
		assert.Equal(t, probe.Comments, result.Comments)
		assert.Equal(t, probe.Links, links)
	})

	t.Run("reports non-wall documents", func(t *testing.T) {
		t.Parallel()

		probe, err := goquery.NewProber().Probe(context.Background(), strings.NewReader(`<html><body><p>hi</p></body></html>`))

		require.NoError(t, err)
		assert.False(t, probe.IsWallExport())
		assert.Empty(t, probe.Classes)
	})

	t.Run("returns read errors", func(t *testing.T) {
		t.Parallel()

		readErr := errors.New("disk gone")
		_, err := goquery.NewProber().Probe(context.Background(), iotest.ErrReader(readErr))

		assert.ErrorIs(t, err, readErr)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := goquery.NewProber().Probe(ctx, strings.NewReader(wallHTML))

		assert.ErrorIs(t, err, context.Canceled)
	})
}
