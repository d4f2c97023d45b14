package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fwojciec/wallparse"
	"github.com/samber/lo"
)

// Run executes the probe command.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	probe, err := deps.Prober.Probe(deps.Ctx, f)
	if err != nil {
		return err
	}

	printProbe(deps, c.File, probe)

	if !probe.IsWallExport() {
		fmt.Fprintf(deps.Stderr, "warning: %s does not look like a wall export\n", c.File)
	}
	return nil
}

func printProbe(deps *Dependencies, name string, p *wallparse.Probe) {
	fmt.Fprintf(deps.Stdout, "File:     %s\n", name)
	if p.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title:    %s\n", p.Title)
	}
	if p.DownloadNotice != "" {
		fmt.Fprintf(deps.Stdout, "Notice:   %s\n", p.DownloadNotice)
	}
	fmt.Fprintf(deps.Stdout, "Entries:  %d\n", p.Entries)
	fmt.Fprintf(deps.Stdout, "Comments: %d\n", p.Comments)
	fmt.Fprintf(deps.Stdout, "Links:    %d\n", p.Links)

	if len(p.Classes) == 0 {
		return
	}
	classes := lo.Keys(p.Classes)
	sort.Strings(classes)
	fmt.Fprintln(deps.Stdout, "Classes:")
	for _, class := range classes {
		fmt.Fprintf(deps.Stdout, "  %-24s %d\n", class, p.Classes[class])
	}
}
