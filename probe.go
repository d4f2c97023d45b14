package wallparse

import (
	"context"
	"io"
)

// Probe summarizes an export document without running extraction.
type Probe struct {
	// Title is the document title, usually the account owner's name.
	Title string `json:"title"`

	// DownloadNotice is the text of the export's download notice, which
	// records when the export was made.
	DownloadNotice string `json:"downloadNotice,omitempty"`

	// Entries and Comments count post and comment containers.
	Entries  int `json:"entries"`
	Comments int `json:"comments"`

	// Links counts shared link tables.
	Links int `json:"links"`

	// Classes counts div and span elements by "element.class" key, using
	// the whole class attribute value.
	Classes map[string]int `json:"classes"`
}

// IsWallExport reports whether the document looks like a wall export.
func (p *Probe) IsWallExport() bool {
	return p.Entries > 0 || p.Classes["div.tabwall"] > 0
}

// Prober inspects export documents.
type Prober interface {
	Probe(ctx context.Context, r io.Reader) (*Probe, error)
}
