package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/wallparse"
	"github.com/fwojciec/wallparse/bloom"
	"github.com/fwojciec/wallparse/etree"
	"github.com/fwojciec/wallparse/extract"
	"github.com/fwojciec/wallparse/fs"
	wallslog "github.com/fwojciec/wallparse/slog"
	"github.com/samber/lo"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	docs, err := extractFiles(deps, c.Files, c.Concurrency)
	if err != nil {
		return err
	}

	store := newOutputStore(c.Format, c.Output, deps.Stdout)
	summary, err := saveRecords(deps, store, docs, c.Dedupe)
	if err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	fmt.Fprintln(deps.Stderr, summary)
	return reportFailures(deps, docs)
}

// newOutputStore returns the store for format, writing to path or, when
// path is empty, to w.
func newOutputStore(format, path string, w io.Writer) wallparse.RecordStore {
	switch format {
	case "xml":
		if path == "" {
			return etree.NewXMLWriter(w)
		}
		return etree.NewXMLStore(path)
	case "text":
		if path == "" {
			return fs.NewTextWriter(w)
		}
		return fs.NewTextStore(path)
	default:
		if path == "" {
			return fs.NewJSONWriter(w)
		}
		return fs.NewJSONStore(path)
	}
}

// extractFiles extracts every file concurrently and returns the results
// in argument order.
func extractFiles(deps *Dependencies, files []string, concurrency int) ([]*extract.DocumentResult, error) {
	sources := lo.Map(files, func(path string, _ int) extract.Source {
		return extract.FileSource(path)
	})

	docs, err := extract.ExtractAll(deps.Ctx, deps.Extractor, sources, concurrency)
	deps.flushDiagnostics()
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// saveSummary describes what saveRecords wrote.
type saveSummary struct {
	Files     int
	Records   int
	Comments  int
	Discarded int
	Skipped   int
}

func (s saveSummary) String() string {
	msg := fmt.Sprintf("Extracted %d records (%d comments) from %d files", s.Records, s.Comments, s.Files)
	if s.Discarded > 0 {
		msg += fmt.Sprintf(", %d incomplete records discarded", s.Discarded)
	}
	if s.Skipped > 0 {
		msg += fmt.Sprintf(", %d duplicates skipped", s.Skipped)
	}
	return msg
}

// saveRecords writes the records of every successfully extracted document
// to store in document order and commits. Any save error aborts the store.
func saveRecords(deps *Dependencies, store wallparse.RecordStore, docs []*extract.DocumentResult, dedupe bool) (saveSummary, error) {
	ok := lo.Filter(docs, func(d *extract.DocumentResult, _ int) bool { return d.Err == nil })
	records := lo.FlatMap(ok, func(d *extract.DocumentResult, _ int) []*wallparse.Record { return d.Records })

	var dedup *bloom.DedupStore
	if dedupe {
		expected := max(uint(len(records)), bloom.DefaultExpectedRecords)
		dedup = bloom.NewDedupStore(store, bloom.NewFilter(expected, bloom.DefaultFalsePositiveRate))
		store = dedup
	}
	store = wallslog.NewLoggingRecordStore(store, deps.logger())

	for _, rec := range records {
		if err := store.Save(deps.Ctx, rec); err != nil {
			_ = store.Abort()
			return saveSummary{}, err
		}
	}
	if err := store.Commit(); err != nil {
		_ = store.Abort()
		return saveSummary{}, err
	}

	summary := saveSummary{
		Files:     len(ok),
		Records:   lo.SumBy(ok, func(d *extract.DocumentResult) int { return d.Result.Records }),
		Comments:  lo.SumBy(ok, func(d *extract.DocumentResult) int { return d.Result.Comments }),
		Discarded: lo.SumBy(ok, func(d *extract.DocumentResult) int { return d.Result.Discarded }),
	}
	if dedup != nil {
		summary.Skipped = dedup.Skipped()
		summary.Records -= summary.Skipped
	}
	return summary, nil
}

// reportFailures prints every failed document and returns an error when
// there was at least one.
func reportFailures(deps *Dependencies, docs []*extract.DocumentResult) error {
	failed := lo.Filter(docs, func(d *extract.DocumentResult, _ int) bool { return d.Err != nil })
	for _, d := range failed {
		fmt.Fprintf(deps.Stderr, "error: %s: %v\n", d.Name, d.Err)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d files failed", len(failed), len(docs))
	}
	return nil
}
