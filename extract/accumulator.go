package extract

import (
	"strings"

	"github.com/fwojciec/wallparse"
)

// Accumulator collects routed text for one record under construction.
// Text is append-only; nothing reaches the record until Commit.
type Accumulator struct {
	fields [fieldCount]strings.Builder
	seen   [fieldCount]bool
}

// Append adds s to field f. FieldNone is ignored.
func (a *Accumulator) Append(f Field, s string) {
	if f <= FieldNone || f >= fieldCount {
		return
	}
	a.seen[f] = true
	a.fields[f].WriteString(s)
}

// Value returns the raw accumulated text for f and whether f received
// any text at all.
func (a *Accumulator) Value(f Field) (string, bool) {
	if f <= FieldNone || f >= fieldCount {
		return "", false
	}
	return a.fields[f].String(), a.seen[f]
}

// Commit writes the accumulated fields to rec, stripping leading and
// trailing whitespace once. Likes are only set if the field was routed to.
func (a *Accumulator) Commit(rec *wallparse.Record) {
	rec.Profile = strings.TrimSpace(a.fields[FieldProfile].String())
	rec.Datetime = strings.TrimSpace(a.fields[FieldDatetime].String())
	rec.Data = strings.TrimSpace(a.fields[FieldData].String())
	if a.seen[FieldLikes] {
		likes := strings.TrimSpace(a.fields[FieldLikes].String())
		rec.Likes = &likes
	}
}
