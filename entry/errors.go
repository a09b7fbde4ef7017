package entry

import "fmt"

// Error taxonomy for a run. Every per-entry failure is one of these three,
// each attributable to exactly one logical path. All are recoverable: the
// run continues and the failure is surfaced as a warning.

// AccessError reports a path that could not be listed, statted, or opened
// (permissions, vanished file, dangling symlink).
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("access %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// DecodeError reports an archive, or a single member within one, that could
// not be parsed. Path is the smallest unit the failure could be scoped to.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ReadError reports an I/O failure while streaming entry bytes for hashing.
// The partial digest is discarded, never reported.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
