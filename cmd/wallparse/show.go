package main

import (
	"fmt"

	"github.com/fwojciec/wallparse"
	"github.com/fwojciec/wallparse/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	export, err := findExport(deps, c.Name)
	if err != nil {
		return err
	}

	filter := wallparse.RecordFilter{ExportID: &export.ID, Limit: c.Limit}
	if c.Profile != "" {
		filter.Profile = &c.Profile
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wallparse.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintf(deps.Stderr, "No records found in export %q.\n", export.Name)
		return nil
	}

	if c.Format == "json" {
		store := fs.NewJSONWriter(deps.Stdout)
		for _, rec := range recs {
			if err := store.Save(deps.Ctx, rec); err != nil {
				return err
			}
		}
		return store.Commit()
	}

	fmt.Fprintln(deps.Stdout, wallparse.FormatRecords(recs))
	return nil
}
