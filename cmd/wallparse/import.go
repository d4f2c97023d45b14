package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wallparse"
	"github.com/fwojciec/wallparse/sqlite"
)

// Run executes the import command. The export is created only when every
// file extracts cleanly, and removed again if storing its records fails.
func (c *ImportCmd) Run(deps *Dependencies) error {
	existing, err := deps.Exports.FindExports(deps.Ctx, wallparse.ExportFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wallparse.ErrorMessage(err))
		return err
	}
	if len(existing) > 0 {
		fmt.Fprintf(deps.Stderr, "error: export %q already exists. To re-import, first run 'wallparse delete %s --force'.\n", c.Name, c.Name)
		return wallparse.Errorf(wallparse.ECONFLICT, "export %q already exists", c.Name)
	}

	docs, err := extractFiles(deps, c.Files, c.Concurrency)
	if err != nil {
		return err
	}
	if err := reportFailures(deps, docs); err != nil {
		return err
	}

	paths := make([]string, 0, len(c.Files))
	for _, f := range c.Files {
		if abs, err := filepath.Abs(f); err == nil {
			f = abs
		}
		paths = append(paths, f)
	}

	export := &wallparse.Export{
		Name:       c.Name,
		SourcePath: strings.Join(paths, string(filepath.ListSeparator)),
	}
	if err := deps.Exports.CreateExport(deps.Ctx, export); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wallparse.ErrorMessage(err))
		return err
	}

	store := sqlite.NewRecordStore(deps.Records, export.ID)
	summary, err := saveRecords(deps, store, docs, c.Dedupe)
	if err != nil {
		_ = deps.Exports.DeleteExport(deps.Ctx, export.ID)
		return fmt.Errorf("failed to store records: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Imported %q: %s\n", export.Name, summary)
	return nil
}
