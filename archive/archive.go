package archive

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dendrascience/djsum/entry"
)

// Format identifies a recognized container format.
type Format int

const (
	FormatNone Format = iota
	FormatZip
	FormatTar
	FormatTarGz
	FormatTarBz2
	FormatTarXz
	FormatTarZst
)

func (f Format) String() string {
	switch f {
	case FormatZip:
		return "zip"
	case FormatTar:
		return "tar"
	case FormatTarGz:
		return "tar.gz"
	case FormatTarBz2:
		return "tar.bz2"
	case FormatTarXz:
		return "tar.xz"
	case FormatTarZst:
		return "tar.zst"
	default:
		return "none"
	}
}

// Detect classifies a file name against the closed extension table. There is
// no magic-byte sniffing: unmatched extensions are plain files, which avoids
// false positives on arbitrary binary content. Compressed-tar suffixes only
// match with the ".tar" part present (".tgz" excepted), so a bare "data.zst"
// is never treated as an archive.
func Detect(name string) (Format, bool) {
	base := strings.ToLower(filepath.Base(name))
	switch {
	case strings.HasSuffix(base, ".tar.gz"), strings.HasSuffix(base, ".tgz"):
		return FormatTarGz, true
	case strings.HasSuffix(base, ".tar.bz2"):
		return FormatTarBz2, true
	case strings.HasSuffix(base, ".tar.xz"):
		return FormatTarXz, true
	case strings.HasSuffix(base, ".tar.zst"):
		return FormatTarZst, true
	case strings.HasSuffix(base, ".tar"):
		return FormatTar, true
	case strings.HasSuffix(base, ".zip"):
		return FormatZip, true
	}
	return FormatNone, false
}

// Walker enumerates the hashable members of one archive in stream order.
//
// Next returns io.EOF after the last member. A non-EOF error is a
// *entry.DecodeError scoped to a single member or to the whole archive;
// callers may keep calling Next, the walker terminates with io.EOF once
// nothing more can be recovered.
type Walker interface {
	Next() (entry.Entry, error)
	Close() error
}

// Open returns a Walker for the archive at path. Zip needs random access to
// its central directory, so it is the one format read via seeking rather
// than streaming.
func Open(path string, format Format) (Walker, error) {
	switch format {
	case FormatZip:
		return openZip(path)
	case FormatTar, FormatTarGz, FormatTarBz2, FormatTarXz, FormatTarZst:
		return openTar(path, format)
	default:
		return nil, fmt.Errorf("archive: cannot open %s: unrecognized format", path)
	}
}
