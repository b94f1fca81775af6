// Package jsonsink writes decoded objects as JSON Lines via the
// standard library's encoding/json - one compact JSON object per line,
// each object's own field names carried straight through since the
// surveillance package's Optional/TriBool types already marshal to
// plain values.
package jsonsink

import (
	"encoding/json"
	"io"

	"github.com/kvitre/atxreplay/sink"
)

// Sink writes one JSON object per line to w.
type Sink struct {
	enc    *json.Encoder
	closer io.Closer
}

func New(w io.Writer) *Sink {
	closer, _ := w.(io.Closer)
	return &Sink{enc: json.NewEncoder(w), closer: closer}
}

func (s *Sink) Write(obj any) (sink.Outcome, error) {
	if err := s.enc.Encode(obj); err != nil {
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
