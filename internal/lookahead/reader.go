package lookahead

import (
	"io"

	"github.com/jcorbin/gonaz/internal/fault"
)

// Reader serves input bytes out of order by buffering ahead of the consumer.
type Reader struct {
	src io.ByteReader
	buf Buffer
}

// NewReader creates a Reader around src.
func NewReader(src io.ByteReader) *Reader {
	return &Reader{src: src}
}

// ReadNth consumes and returns the n-th (starting at 1) byte not yet
// consumed, reading ahead from the source as needed. Any source error, like
// io.EOF, is returned as is, leaving already buffered bytes in place.
func (r *Reader) ReadNth(n int) (byte, error) {
	if n < 1 || n > Capacity {
		return 0, fault.Errorf(fault.Protocol, "cannot look ahead to byte %v, only %v may be buffered", n, Capacity)
	}
	for r.buf.Len() < n {
		c, err := r.src.ReadByte()
		if err != nil {
			return 0, err
		}
		if err := r.buf.Push(c); err != nil {
			return 0, err
		}
	}
	return r.buf.ExtractAt(n - 1)
}

// ReadByte consumes the next byte in order.
func (r *Reader) ReadByte() (byte, error) { return r.ReadNth(1) }

// Buffered returns a copy of the bytes read ahead but not yet consumed.
func (r *Reader) Buffered() []byte { return r.buf.Bytes() }
