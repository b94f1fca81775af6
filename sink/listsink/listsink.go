// Package listsink writes one human-readable line per decoded object,
// grounded on idefix/cmd/dump.go's fmt.Fprintln(out, msg.String())
// loop.
package listsink

import (
	"fmt"
	"io"

	"github.com/kvitre/atxreplay/sink"
)

// Sink writes a Stringer's String() form to w, one object per line.
type Sink struct {
	w      io.Writer
	closer io.Closer
}

func New(w io.Writer) *Sink {
	closer, _ := w.(io.Closer)
	return &Sink{w: w, closer: closer}
}

func (s *Sink) Write(obj any) (sink.Outcome, error) {
	str, ok := obj.(fmt.Stringer)
	if !ok {
		return sink.Skipped, fmt.Errorf("listsink: %T has no String()", obj)
	}
	if _, err := fmt.Fprintln(s.w, str.String()); err != nil {
		return sink.Skipped, err
	}
	return sink.Written, nil
}

func (s *Sink) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
