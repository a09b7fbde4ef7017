package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dendrascience/djsum/dispatch"
)

// Sink renders completed hash results. Implementations own any buffering;
// callers must Flush once the result stream ends.
type Sink interface {
	Write(r dispatch.Result) error
	Flush() error
}

// New returns the sink for a format name: "text" or "csv".
func New(format string, w io.Writer) (Sink, error) {
	switch format {
	case "text":
		return NewText(w), nil
	case "csv":
		return NewCSV(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Text renders "<digest>  <path>" lines, the conventional checksum-tool
// layout compatible with md5sum and friends.
type Text struct {
	w io.Writer
}

func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

func (t *Text) Write(r dispatch.Result) error {
	_, err := fmt.Fprintf(t.w, "%s  %s\n", r.Sum, r.Path)
	return err
}

func (t *Text) Flush() error { return nil }

// CSV renders a header row followed by path,size,algorithm,digest records.
type CSV struct {
	w           *csv.Writer
	wroteHeader bool
}

func NewCSV(w io.Writer) *CSV {
	return &CSV{w: csv.NewWriter(w)}
}

func (c *CSV) Write(r dispatch.Result) error {
	if !c.wroteHeader {
		if err := c.w.Write([]string{"path", "size", "algorithm", "digest"}); err != nil {
			return err
		}
		c.wroteHeader = true
	}
	return c.w.Write([]string{
		r.Path,
		strconv.FormatInt(r.Size, 10),
		r.Algorithm.String(),
		r.Sum,
	})
}

func (c *CSV) Flush() error {
	c.w.Flush()
	return c.w.Error()
}
