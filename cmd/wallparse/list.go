package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/wallparse"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	exports, err := deps.Exports.FindExports(deps.Ctx, wallparse.ExportFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wallparse.ErrorMessage(err))
		return err
	}

	if len(exports) == 0 {
		fmt.Fprintln(deps.Stdout, "No exports found. Use 'wallparse import' to add one.")
		return nil
	}

	for _, e := range exports {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", e.Name, e.CreatedAt.Format(time.DateTime), e.SourcePath)
	}

	return nil
}
