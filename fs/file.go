// Package fs provides file-based record stores. Output goes to a sibling
// temporary file that replaces the target only on Commit.
package fs

import (
	"io"
	"os"
	"path/filepath"
)

// pendingFile is an output file written at path.tmp and renamed to path on
// commit. A pendingFile created with a plain writer writes through and has
// nothing to commit or abort.
type pendingFile struct {
	path string
	tmp  *os.File
	w    io.Writer
}

func newPendingFile(path string) *pendingFile {
	return &pendingFile{path: path}
}

func newPassthrough(w io.Writer) *pendingFile {
	return &pendingFile{w: w}
}

func (f *pendingFile) tempPath() string {
	return f.path + ".tmp"
}

// writer opens the temporary file on first use.
func (f *pendingFile) writer() (io.Writer, error) {
	if f.w != nil {
		return f.w, nil
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return nil, err
	}
	tmp, err := os.Create(f.tempPath())
	if err != nil {
		return nil, err
	}
	f.tmp = tmp
	f.w = tmp
	return tmp, nil
}

func (f *pendingFile) commit() error {
	if f.path == "" {
		return nil
	}
	// An empty result still replaces the target.
	if _, err := f.writer(); err != nil {
		return err
	}
	if err := f.tmp.Close(); err != nil {
		return err
	}
	return os.Rename(f.tempPath(), f.path)
}

func (f *pendingFile) abort() error {
	if f.tmp == nil {
		return nil
	}
	f.tmp.Close()
	if err := os.Remove(f.tempPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
