package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/wallparse"
	wallslog "github.com/fwojciec/wallparse/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Diagnostics *wallslog.DiagnosticLogger
	Extractor   wallparse.Extractor
	Prober      wallparse.Prober
	Exports     wallparse.ExportService
	Records     wallparse.RecordService
}

// logger returns the configured logger or one that discards everything.
func (d *Dependencies) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// flushDiagnostics logs the summary of throttled diagnostics.
func (d *Dependencies) flushDiagnostics() {
	if d.Diagnostics != nil {
		d.Diagnostics.Flush()
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output to stderr"`

	Parse  ParseCmd  `cmd:"" help:"Extract records from export files"`
	Import ImportCmd `cmd:"" help:"Extract export files and store them under a name"`
	List   ListCmd   `cmd:"" help:"List stored exports"`
	Show   ShowCmd   `cmd:"" help:"Show the records of a stored export"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored export and its records"`
	Probe  ProbeCmd  `cmd:"" help:"Summarize the structure of an export file"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Files       []string `arg:"" name:"file" help:"Export files (wall.html)"`
	Format      string   `short:"f" enum:"json,xml,text" default:"json" help:"Output format (json, xml, text)"`
	Output      string   `short:"o" help:"Write to this file instead of stdout"`
	Dedupe      bool     `short:"d" help:"Skip records repeated across files"`
	Concurrency int      `short:"c" default:"4" help:"Files extracted at once"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Name        string   `arg:"" help:"Export name"`
	Files       []string `arg:"" name:"file" help:"Export files (wall.html)"`
	Dedupe      bool     `short:"d" help:"Skip records repeated across files"`
	Concurrency int      `short:"c" default:"4" help:"Files extracted at once"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name    string `arg:"" help:"Export name"`
	Profile string `short:"p" help:"Only show posts by this profile"`
	Limit   int    `short:"n" help:"Maximum number of posts"`
	Format  string `short:"f" enum:"json,text" default:"text" help:"Output format (json, text)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Export name"`
	Force bool   `help:"Confirm deletion"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	File string `arg:"" help:"Export file (wall.html)"`
}
