package walk

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dendrascience/djsum/archive"
	"github.com/dendrascience/djsum/entry"
)

// Options controls traversal behavior.
type Options struct {
	// Recursive descends into subdirectories. Off, only the direct
	// children of each root directory are listed.
	Recursive bool

	// Archives hands recognized archive files to the decoder instead of
	// hashing them as opaque files.
	Archives bool
}

// Job is one unit of hashing work discovered during traversal.
//
// Exactly one of File, Archive, or Err is set: a plain file to hash, an
// archive to expand member by member, or a discovery failure to surface as
// an error result.
type Job struct {
	File    *entry.File
	Archive string
	Format  archive.Format
	Err     error
}

// Roots enumerates every hashable entry under the given roots and passes
// each as a Job to emit, in stable per-directory order. Unreadable paths
// become error Jobs and traversal continues with siblings; a root that
// cannot be statted at all is likewise reported and skipped. Enumeration
// stops early once ctx is canceled.
func Roots(ctx context.Context, roots []string, opts Options, emit func(Job)) {
	for _, root := range roots {
		if ctx.Err() != nil {
			return
		}
		info, err := os.Stat(root)
		if err != nil {
			emit(Job{Err: &entry.AccessError{Path: root, Err: err}})
			continue
		}
		if info.IsDir() {
			// The first level of a root directory is always listed,
			// recursive or not.
			walkDir(ctx, root, opts, emit)
			continue
		}
		emitFile(root, info.Size(), opts, emit)
	}
}

func walkDir(ctx context.Context, dir string, opts Options, emit func(Job)) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		emit(Job{Err: &entry.AccessError{Path: dir, Err: err}})
		return
	}
	for _, d := range ents {
		if ctx.Err() != nil {
			return
		}
		path := filepath.Join(dir, d.Name())
		switch {
		case d.IsDir():
			if opts.Recursive {
				walkDir(ctx, path, opts, emit)
			}
		case d.Type()&fs.ModeSymlink != 0:
			// Symlinks to files are hashed as their target content.
			// Symlinks to directories are not followed, which keeps
			// traversal finite on cyclic links.
			info, err := os.Stat(path)
			if err != nil {
				emit(Job{Err: &entry.AccessError{Path: path, Err: err}})
				continue
			}
			if info.Mode().IsRegular() {
				emitFile(path, info.Size(), opts, emit)
			}
		case d.Type().IsRegular():
			size := int64(-1)
			if info, err := d.Info(); err == nil {
				size = info.Size()
			}
			emitFile(path, size, opts, emit)
		default:
			// Sockets, FIFOs, and devices are not hashable.
		}
	}
}

func emitFile(path string, size int64, opts Options, emit func(Job)) {
	if opts.Archives {
		if format, ok := archive.Detect(path); ok {
			// An archive is consumed only as a source of members,
			// never additionally hashed as a whole file.
			emit(Job{Archive: path, Format: format})
			return
		}
	}
	emit(Job{File: entry.NewFile(path, size)})
}
