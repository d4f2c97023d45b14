package main

import (
	"fmt"

	"github.com/fwojciec/wallparse"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return wallparse.Errorf(wallparse.EINVALID, "use --force to confirm deletion")
	}

	export, err := findExport(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Exports.DeleteExport(deps.Ctx, export.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wallparse.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted export %q\n", export.Name)
	return nil
}

// findExport looks up an export by name and explains a miss on stderr.
func findExport(deps *Dependencies, name string) (*wallparse.Export, error) {
	exports, err := deps.Exports.FindExports(deps.Ctx, wallparse.ExportFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wallparse.ErrorMessage(err))
		return nil, err
	}

	if len(exports) == 0 {
		fmt.Fprintf(deps.Stderr, "error: export %q not found. Use 'wallparse list' to see available exports.\n", name)
		return nil, wallparse.Errorf(wallparse.ENOTFOUND, "export %q not found", name)
	}

	return exports[0], nil
}
