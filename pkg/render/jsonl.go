package render

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/oxygene76/orbitas-fourier/internal/types"
)

// JSONLRenderer streams one PointRecord per line
type JSONLRenderer struct {
	bw *bufio.Writer
	c  io.Closer
}

// NewJSONLRenderer writes to w; the caller owns w
func NewJSONLRenderer(w io.Writer) *JSONLRenderer {
	return &JSONLRenderer{bw: bufio.NewWriter(w)}
}

// NewJSONLFile creates path and writes to it; call Close when done
func NewJSONLFile(path string) (*JSONLRenderer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &JSONLRenderer{bw: bufio.NewWriter(f), c: f}, nil
}

// Render writes the index-aligned points of both curves. Only indices present
// in both curves are written.
func (w *JSONLRenderer) Render(s Scene) error {
	n := s.Exact.Len()
	if s.Approx.Len() < n {
		n = s.Approx.Len()
	}
	for i := 0; i < n; i++ {
		rec := types.PointRecord{
			Index:   i,
			ExactX:  s.Exact.X[i],
			ExactY:  s.Exact.Y[i],
			ApproxX: s.Approx.X[i],
			ApproxY: s.Approx.Y[i],
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := w.bw.Write(b); err != nil {
			return err
		}
		if err := w.bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.bw.Flush()
}

// Close flushes and closes the underlying file, if any
func (w *JSONLRenderer) Close() error {
	err := w.bw.Flush()
	if w.c != nil {
		if cerr := w.c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
