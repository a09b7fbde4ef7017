package archive

import (
	"archive/zip"
	"io"
	"os"

	"github.com/dendrascience/djsum/entry"
)

// zipWalker enumerates the members listed in a zip central directory.
// Members are independently openable, so a failure on one never affects the
// rest.
type zipWalker struct {
	rc   *zip.ReadCloser
	path string
	next int
}

func openZip(path string) (*zipWalker, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		if _, serr := os.Stat(path); serr != nil {
			return nil, &entry.AccessError{Path: path, Err: serr}
		}
		return nil, &entry.DecodeError{Path: path, Err: err}
	}
	return &zipWalker{rc: rc, path: path}, nil
}

func (w *zipWalker) Next() (entry.Entry, error) {
	for w.next < len(w.rc.File) {
		f := w.rc.File[w.next]
		w.next++
		if !f.Mode().IsRegular() {
			// Directories, symlinks, and other special members are
			// not hashable.
			continue
		}
		name := f.Name
		logical := w.path + entry.Separator + name
		return entry.NewMember(w.path, name, int64(f.UncompressedSize64), func() (io.ReadCloser, error) {
			mr, err := f.Open()
			if err != nil {
				return nil, &entry.DecodeError{Path: logical, Err: err}
			}
			return mr, nil
		}), nil
	}
	return nil, io.EOF
}

func (w *zipWalker) Close() error {
	return w.rc.Close()
}
