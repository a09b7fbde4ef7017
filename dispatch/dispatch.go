package dispatch

import (
	"context"
	"errors"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dendrascience/djsum/archive"
	"github.com/dendrascience/djsum/digest"
	"github.com/dendrascience/djsum/entry"
	"github.com/dendrascience/djsum/walk"
)

// Config controls one run of the dispatcher.
type Config struct {
	// Algorithm selects the digest computed for every entry.
	Algorithm digest.Algorithm

	// Workers is the number of concurrent hashing workers. Values below 1
	// default to the number of available CPUs. 1 forces strictly
	// sequential execution.
	Workers int

	// BufferSize is the per-worker read buffer in bytes. Values below 1
	// default to digest.DefaultBufferSize.
	BufferSize int

	// Recursive and Archives are passed through to the walker.
	Recursive bool
	Archives  bool
}

// Result is the outcome of hashing one entry. Either Sum is set, or Err
// explains why the entry produced no digest. Path is always set.
type Result struct {
	Path      string
	Size      int64
	Algorithm digest.Algorithm
	Sum       string
	Err       error
}

// Run discovers entries under roots and hashes them on a bounded worker
// pool, returning the stream of results. The channel closes once every
// discovered entry has been accounted for; no entry is silently dropped.
//
// Discovery runs concurrently with hashing over a bounded jobs channel, so
// peak memory scales with the worker count rather than the tree size.
// Completion order across workers is unspecified; run with Workers set to 1
// for reproducible ordering.
func Run(ctx context.Context, roots []string, cfg Config) <-chan Result {
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	bufSize := cfg.BufferSize
	if bufSize < 1 {
		bufSize = digest.DefaultBufferSize
	}

	jobs := make(chan walk.Job, workers)
	results := make(chan Result, workers)

	// Producer: walk the roots into the jobs channel.
	go func() {
		defer close(jobs)
		walk.Roots(ctx, roots, walk.Options{Recursive: cfg.Recursive, Archives: cfg.Archives}, func(j walk.Job) {
			select {
			case jobs <- j:
			case <-ctx.Done():
			}
		})
	}()

	// Consumers: a fixed pool pulling jobs until the channel drains.
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			w := &worker{
				alg:     cfg.Algorithm,
				buf:     make([]byte, bufSize),
				results: results,
				ctx:     ctx,
			}
			for job := range jobs {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				w.run(job)
			}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(results)
	}()

	return results
}

// worker hashes jobs sequentially, reusing one read buffer.
type worker struct {
	alg     digest.Algorithm
	buf     []byte
	results chan<- Result
	ctx     context.Context
}

func (w *worker) emit(r Result) {
	select {
	case w.results <- r:
	case <-w.ctx.Done():
	}
}

func (w *worker) run(job walk.Job) {
	switch {
	case job.Err != nil:
		w.emit(Result{Path: errPath(job.Err), Algorithm: w.alg, Err: job.Err})
	case job.File != nil:
		w.emit(w.hash(job.File))
	case job.Archive != "":
		w.expand(job.Archive, job.Format)
	}
}

// expand hashes every member of one archive in discovery order. Member
// parallelism inside a single archive is intentionally absent: the tar
// family only yields members sequentially, and zip is kept uniform with it.
// Parallelism comes from hashing many files and archives at once.
func (w *worker) expand(path string, format archive.Format) {
	aw, err := archive.Open(path, format)
	if err != nil {
		w.emit(Result{Path: errPath(err), Algorithm: w.alg, Err: err})
		return
	}
	defer aw.Close()

	for {
		if w.ctx.Err() != nil {
			return
		}
		member, err := aw.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			w.emit(Result{Path: errPath(err), Algorithm: w.alg, Err: err})
			continue
		}
		w.emit(w.hash(member))
	}
}

// hash streams one entry through the digest engine.
func (w *worker) hash(e entry.Entry) Result {
	path := e.LogicalPath()
	rc, err := e.Open()
	if err != nil {
		return Result{Path: path, Algorithm: w.alg, Err: err}
	}
	sum, err := digest.Sum(w.alg, rc, w.buf)
	cerr := rc.Close()
	if err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return Result{Path: path, Algorithm: w.alg, Err: classify(e, path, err)}
	}
	return Result{Path: path, Size: e.Size(), Algorithm: w.alg, Sum: sum}
}

// classify tags a streaming failure: corrupt member bytes are a decode
// problem, plain file I/O is a read problem.
func classify(e entry.Entry, path string, err error) error {
	var de *entry.DecodeError
	var ae *entry.AccessError
	if errors.As(err, &de) || errors.As(err, &ae) {
		return err
	}
	if _, ok := e.(*entry.Member); ok {
		return &entry.DecodeError{Path: path, Err: err}
	}
	return &entry.ReadError{Path: path, Err: err}
}

// errPath extracts the offending logical path from a classified error.
func errPath(err error) string {
	var ae *entry.AccessError
	if errors.As(err, &ae) {
		return ae.Path
	}
	var de *entry.DecodeError
	if errors.As(err, &de) {
		return de.Path
	}
	var re *entry.ReadError
	if errors.As(err, &re) {
		return re.Path
	}
	return ""
}
