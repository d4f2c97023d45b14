// Package etree provides XML serialization of wall records using
// github.com/beevik/etree.
package etree

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/fwojciec/wallparse"
)

// Ensure XMLStore implements wallparse.RecordStore at compile time.
var _ wallparse.RecordStore = (*XMLStore)(nil)

// XMLStore collects records into a <wall> document that is written on
// Commit. Records are held in memory until then.
type XMLStore struct {
	path string
	w    io.Writer
	doc  *etree.Document
	root *etree.Element
}

// NewXMLStore creates an XMLStore that replaces path on Commit.
func NewXMLStore(path string) *XMLStore {
	s := &XMLStore{path: path}
	s.reset()
	return s
}

// NewXMLWriter creates an XMLStore that writes the document to w on Commit.
func NewXMLWriter(w io.Writer) *XMLStore {
	s := &XMLStore{w: w}
	s.reset()
	return s
}

func (s *XMLStore) reset() {
	s.doc = etree.NewDocument()
	s.doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	s.root = s.doc.CreateElement("wall")
}

func (s *XMLStore) Save(ctx context.Context, rec *wallparse.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	appendRecord(s.root, rec)
	return nil
}

func appendRecord(parent *etree.Element, rec *wallparse.Record) {
	el := parent.CreateElement("record")
	typ := rec.Type
	if typ == "" {
		typ = wallparse.RecordTypeText
	}
	el.CreateAttr("type", string(typ))
	el.CreateElement("profile").SetText(rec.Profile)
	el.CreateElement("datetime").SetText(rec.Datetime)
	el.CreateElement("data").SetText(rec.Data)
	if rec.Likes != nil {
		el.CreateElement("likes").SetText(*rec.Likes)
	}
	if rec.Comments != nil {
		comments := el.CreateElement("comments")
		for _, c := range rec.Comments {
			appendRecord(comments, c)
		}
	}
}

func (s *XMLStore) Commit() error {
	s.doc.Indent(2)
	if s.w != nil {
		_, err := s.doc.WriteTo(s.w)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := s.doc.WriteToFile(tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, s.path)
}

// Abort drops the collected records.
func (s *XMLStore) Abort() error {
	s.reset()
	return nil
}

// ReadRecords parses a document written by XMLStore.
func ReadRecords(r io.Reader) ([]*wallparse.Record, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing records XML: %w", err)
	}

	root := doc.SelectElement("wall")
	if root == nil {
		return nil, wallparse.Errorf(wallparse.EINVALID, "missing wall element")
	}

	var recs []*wallparse.Record
	for _, el := range root.SelectElements("record") {
		recs = append(recs, parseRecord(el))
	}
	return recs, nil
}

func parseRecord(el *etree.Element) *wallparse.Record {
	rec := &wallparse.Record{
		Profile:  childText(el, "profile"),
		Datetime: childText(el, "datetime"),
		Data:     childText(el, "data"),
		Type:     wallparse.RecordType(el.SelectAttrValue("type", string(wallparse.RecordTypeText))),
	}
	if likes := el.SelectElement("likes"); likes != nil {
		text := likes.Text()
		rec.Likes = &text
	}
	if comments := el.SelectElement("comments"); comments != nil {
		rec.Comments = []*wallparse.Record{}
		for _, c := range comments.SelectElements("record") {
			rec.Comments = append(rec.Comments, parseRecord(c))
		}
	}
	return rec
}

func childText(el *etree.Element, tag string) string {
	if child := el.SelectElement(tag); child != nil {
		return child.Text()
	}
	return ""
}
