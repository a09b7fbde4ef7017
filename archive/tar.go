package archive

import (
	"archive/tar"
	"compress/bzip2"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/dendrascience/djsum/entry"
)

// tarWalker streams a tar structure, optionally through a decompression
// layer. Members are yielded one at a time; the member reader is only valid
// until the next call to Next. Nothing is ever decompressed into memory as a
// whole.
type tarWalker struct {
	f      *os.File
	gz     *gzip.Reader
	zst    *zstd.Decoder
	tr     *tar.Reader
	path   string
	broken bool
}

func openTar(path string, format Format) (*tarWalker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &entry.AccessError{Path: path, Err: err}
	}

	w := &tarWalker{f: f, path: path}
	var r io.Reader = f
	switch format {
	case FormatTarGz:
		w.gz, err = gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &entry.DecodeError{Path: path, Err: err}
		}
		r = w.gz
	case FormatTarBz2:
		r = bzip2.NewReader(f)
	case FormatTarXz:
		r, err = xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &entry.DecodeError{Path: path, Err: err}
		}
	case FormatTarZst:
		w.zst, err = zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
		if err != nil {
			f.Close()
			return nil, &entry.DecodeError{Path: path, Err: err}
		}
		r = w.zst
	}

	w.tr = tar.NewReader(r)
	return w, nil
}

func (w *tarWalker) Next() (entry.Entry, error) {
	if w.broken {
		return nil, io.EOF
	}
	for {
		hdr, err := w.tr.Next()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			// A bad header leaves no sync point to recover from, so
			// the failure is scoped to the whole remaining archive.
			w.broken = true
			return nil, &entry.DecodeError{Path: w.path, Err: err}
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		tr := w.tr
		return entry.NewMember(w.path, hdr.Name, hdr.Size, func() (io.ReadCloser, error) {
			// Single-use: reads the current tar section in place.
			return io.NopCloser(tr), nil
		}), nil
	}
}

func (w *tarWalker) Close() error {
	if w.zst != nil {
		w.zst.Close()
	}
	var err error
	if w.gz != nil {
		err = w.gz.Close()
	}
	if cerr := w.f.Close(); err == nil {
		err = cerr
	}
	return err
}
