// Package bloom provides duplicate record suppression using Bloom filters.
// Successive exports of the same wall repeat most of their posts.
package bloom

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wallparse"
)

// Filter wraps a Bloom filter keyed by record content.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected records
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Key returns the content key of a record: its author, time and text.
// Likes and comments change between exports and are not part of it.
func Key(rec *wallparse.Record) []byte {
	d := xxhash.New()
	for _, s := range []string{rec.Profile, rec.Datetime, rec.Data} {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	return binary.BigEndian.AppendUint64(nil, d.Sum64())
}

// Add adds a record to the filter.
func (f *Filter) Add(rec *wallparse.Record) {
	f.f.Add(Key(rec))
}

// Test returns true if the record might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(rec *wallparse.Record) bool {
	return f.f.Test(Key(rec))
}

// TestAndAdd reports whether the record might already be in the filter and
// adds it.
func (f *Filter) TestAndAdd(rec *wallparse.Record) bool {
	return f.f.TestAndAdd(Key(rec))
}

// EstimatedCount returns the approximate number of records in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
