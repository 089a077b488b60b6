package base64

import (
	"io"

	"github.com/samber/oops"
)

// NewEncoder returns a stream encoder writing base64 text of enc to w.
// Callers must Close it to flush any buffered partial group; Close does
// not close w. The encoder buffers at most one group of input plus a
// fixed output block and is not safe for concurrent use.
func NewEncoder(enc *Encoding, w io.Writer) io.WriteCloser {
	log.WithField("padded", enc.Padded()).Debug("creating base64 stream encoder")
	return &encoder{enc: enc, w: w}
}

type encoder struct {
	enc  *Encoding
	w    io.Writer
	err  error // sticky sink failure
	buf  [3]byte
	nbuf int
	out  [1024]byte
}

func (e *encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}

	// Top up a pending partial group first.
	if e.nbuf > 0 {
		var i int
		for i = 0; i < len(p) && e.nbuf < 3; i++ {
			e.buf[e.nbuf] = p[i]
			e.nbuf++
		}
		n += i
		p = p[i:]
		if e.nbuf < 3 {
			return
		}
		e.enc.Encode(e.out[:], e.buf[:])
		if _, err := e.w.Write(e.out[:4]); err != nil {
			e.err = oops.Errorf("writing encoded group: %w", err)
			return n, e.err
		}
		e.nbuf = 0
	}

	// Whole groups, as many per sink write as the staging block holds.
	for len(p) >= 3 {
		nn := len(e.out) / 4 * 3
		if nn > len(p) {
			nn = len(p) - len(p)%3
		}
		e.enc.Encode(e.out[:], p[:nn])
		if _, err := e.w.Write(e.out[:nn/3*4]); err != nil {
			e.err = oops.Errorf("writing encoded group: %w", err)
			return n, e.err
		}
		n += nn
		p = p[nn:]
	}

	// Trailing fringe shorter than one group.
	copy(e.buf[:], p)
	e.nbuf = len(p)
	n += len(p)
	return
}

// Close flushes any buffered partial group, emitting padding when the
// encoding pads. It does not close the underlying writer.
func (e *encoder) Close() error {
	if e.err == nil && e.nbuf > 0 {
		e.enc.Encode(e.out[:], e.buf[:e.nbuf])
		nout := e.enc.EncodedLen(e.nbuf)
		e.nbuf = 0
		if _, err := e.w.Write(e.out[:nout]); err != nil {
			e.err = oops.Errorf("flushing final group: %w", err)
		}
	}
	return e.err
}
