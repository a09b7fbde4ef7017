package entry

import (
	"io"
	"os"
)

// Separator joins an archive path and a member path into one logical path,
// e.g. "backups/data.zip::docs/readme.txt".
const Separator = "::"

// Entry is one hashable unit of bytes: a file on disk or a member of an
// archive. Entries are discovered by the walker or an archive decoder and
// consumed exactly once by a hashing worker.
type Entry interface {
	// LogicalPath uniquely identifies the entry within one run.
	LogicalPath() string

	// Size returns the entry size in bytes, or -1 when it is not known
	// before reading.
	Size() int64

	// Open returns a reader over the entry's content. For members of
	// streaming archive formats the reader is single-use and only valid
	// until the decoder advances.
	Open() (io.ReadCloser, error)
}

// File is a regular filesystem file.
type File struct {
	path string
	size int64
}

// NewFile returns a filesystem entry for path. Pass -1 when the size is
// unknown.
func NewFile(path string, size int64) *File {
	return &File{path: path, size: size}
}

func (f *File) LogicalPath() string { return f.path }

func (f *File) Size() int64 { return f.size }

func (f *File) Open() (io.ReadCloser, error) {
	rc, err := os.Open(f.path)
	if err != nil {
		return nil, &AccessError{Path: f.path, Err: err}
	}
	return rc, nil
}

// Member is one file inside an archive container.
type Member struct {
	archive string
	name    string
	size    int64
	open    func() (io.ReadCloser, error)
}

// NewMember returns an archive-member entry. The open callback produces the
// member's content stream; decoders decide whether it is reusable.
func NewMember(archive, name string, size int64, open func() (io.ReadCloser, error)) *Member {
	return &Member{archive: archive, name: name, size: size, open: open}
}

func (m *Member) LogicalPath() string { return m.archive + Separator + m.name }

func (m *Member) Size() int64 { return m.size }

func (m *Member) Open() (io.ReadCloser, error) { return m.open() }
