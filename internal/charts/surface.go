package charts

import (
	"bytes"
	"io"
	"sync"

	chart "github.com/wcharczuk/go-chart/v2"
)

var bufferPool = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// surface is the per-render drawing target. It must be closed on every path.
type surface struct {
	buf *bytes.Buffer
}

func newSurface() *surface {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return &surface{buf: buf}
}

// Writer receives the encoded PNG from go-chart.
func (s *surface) Writer() io.Writer {
	return s.buf
}

// Raster returns a PNG renderer of the given size for charts drawn by hand.
func (s *surface) Raster(width, height int) (chart.Renderer, error) {
	return chart.PNG(width, height)
}

// Bytes copies the encoded output so the buffer can be recycled.
func (s *surface) Bytes() []byte {
	if s.buf == nil {
		return nil
	}
	out := make([]byte, s.buf.Len())
	copy(out, s.buf.Bytes())
	return out
}

func (s *surface) Close() {
	if s.buf == nil {
		return
	}
	s.buf.Reset()
	bufferPool.Put(s.buf)
	s.buf = nil
}
