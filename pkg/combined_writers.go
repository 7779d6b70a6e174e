package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every write out to all of its writers. A failing writer
// does not stop the others; all failures are returned together.
type CombinedWriter []io.Writer

func NewCombinedWriter(writers ...io.Writer) CombinedWriter {
	cw := make(CombinedWriter, 0, len(writers))
	for _, w := range writers {
		if w != nil {
			cw = append(cw, w)
		}
	}
	return cw
}

func (cw CombinedWriter) Write(p []byte) (int, error) {
	var (
		total int
		errs  error
	)
	for _, w := range cw {
		n, err := w.Write(p)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		total += n
	}
	return total, errs
}
