package base64

import (
	"io"

	"github.com/samber/oops"
)

// isIgnorable reports the characters skipped under IgnoreWhitespace.
func isIgnorable(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// decodeState is the incremental group decoder shared by Encoding.Decode
// and the streaming decoder, so both classify malformed input identically.
// It consumes one character at a time and emits bytes as groups complete.
type decodeState struct {
	enc        *Encoding
	quantum    [4]byte // alphabet values of the group in progress
	qlen       int     // symbols collected in quantum
	npad       int     // padding characters seen in the current group
	terminated bool    // a padded group closed; only ignorables may follow
	offset     int64   // absolute offset of the next input character
}

// next consumes one input character. Completed bytes, between zero and
// three, are returned in out[:n].
func (st *decodeState) next(c byte) (out [3]byte, n int, err error) {
	pos := st.offset
	st.offset++

	if st.enc.skipWS && isIgnorable(c) {
		return out, 0, nil
	}
	if st.terminated {
		return out, 0, oops.Errorf("character %q at offset %d after final padding: %w", c, pos, ErrInvalidPadding)
	}
	if st.enc.padChar != NoPadding && c == byte(st.enc.padChar) {
		// Padding may only complete a group already holding two or three
		// symbols; fewer leaves less than a whole byte of data.
		if st.qlen < 2 {
			return out, 0, oops.Errorf("padding at offset %d after %d symbols in group: %w", pos, st.qlen, ErrInvalidPadding)
		}
		st.npad++
		if st.qlen+st.npad == 4 {
			n = st.partial(&out)
			st.terminated = true
		}
		return out, n, nil
	}
	if c == '=' && st.enc.padChar == NoPadding {
		return out, 0, oops.Errorf("padding at offset %d in unpadded input: %w", pos, ErrInvalidPadding)
	}
	v, ok := st.enc.alpha.Index(c)
	if !ok {
		return out, 0, oops.Errorf("character %q at offset %d: %w", c, pos, ErrInvalidSymbol)
	}
	if st.npad > 0 {
		return out, 0, oops.Errorf("symbol %q at offset %d interleaved with padding: %w", c, pos, ErrInvalidPadding)
	}
	st.quantum[st.qlen] = byte(v)
	st.qlen++
	if st.qlen == 4 {
		v := uint(st.quantum[0])<<18 | uint(st.quantum[1])<<12 | uint(st.quantum[2])<<6 | uint(st.quantum[3])
		out[0] = byte(v >> 16)
		out[1] = byte(v >> 8)
		out[2] = byte(v)
		st.qlen = 0
		return out, 3, nil
	}
	return out, 0, nil
}

// finish validates the end of input and emits any final unpadded bytes.
func (st *decodeState) finish() (out [3]byte, n int, err error) {
	if st.qlen == 0 {
		return out, 0, nil
	}
	if st.enc.padChar != NoPadding {
		return out, 0, oops.Errorf("input ends mid-group at offset %d: %w", st.offset, ErrInvalidLength)
	}
	if st.qlen == 1 {
		return out, 0, oops.Errorf("single trailing symbol at offset %d: %w", st.offset, ErrInvalidLength)
	}
	n = st.partial(&out)
	return out, n, nil
}

// partial emits the bytes of a short final group: two symbols carry one
// byte, three symbols carry two.
func (st *decodeState) partial(out *[3]byte) int {
	v := uint(st.quantum[0])<<18 | uint(st.quantum[1])<<12
	n := 0
	switch st.qlen {
	case 3:
		v |= uint(st.quantum[2]) << 6
		out[0] = byte(v >> 16)
		out[1] = byte(v >> 8)
		n = 2
	case 2:
		out[0] = byte(v >> 16)
		n = 1
	}
	st.qlen = 0
	return n
}

// NewDecoder returns a stream decoder reading base64 text of enc from r.
// Malformed input surfaces an error wrapping one of the Err* values with
// the absolute character offset; failures of r are wrapped and passed
// through. The decoder buffers one group plus a fixed read block and is
// not safe for concurrent use.
func NewDecoder(enc *Encoding, r io.Reader) io.Reader {
	log.WithField("padded", enc.Padded()).Debug("creating base64 stream decoder")
	return &decoder{st: decodeState{enc: enc}, r: r}
}

type decoder struct {
	st      decodeState
	r       io.Reader
	err     error // sticky; io.EOF after a clean end of input
	outHead int
	outEnd  int
	in      [768]byte  // raw chunk from the source
	out     [1024]byte // decoded bytes not yet delivered
}

func (d *decoder) Read(p []byte) (int, error) {
	for d.outHead == d.outEnd && d.err == nil {
		d.fill()
	}
	if d.outHead < d.outEnd {
		n := copy(p, d.out[d.outHead:d.outEnd])
		d.outHead += n
		if d.outHead == d.outEnd {
			d.outHead, d.outEnd = 0, 0
		}
		return n, nil
	}
	return 0, d.err
}

// fill reads one chunk from the source and decodes it into the output
// window. It only runs when the window is empty, so a full chunk's worth
// of decoded bytes always fits.
func (d *decoder) fill() {
	nr, rerr := d.r.Read(d.in[:])
	for i := 0; i < nr; i++ {
		out, k, err := d.st.next(d.in[i])
		for j := 0; j < k; j++ {
			d.out[d.outEnd] = out[j]
			d.outEnd++
		}
		if err != nil {
			d.err = err
			return
		}
	}
	switch {
	case rerr == io.EOF:
		out, k, err := d.st.finish()
		for j := 0; j < k; j++ {
			d.out[d.outEnd] = out[j]
			d.outEnd++
		}
		if err != nil {
			d.err = err
		} else {
			d.err = io.EOF
		}
	case rerr != nil:
		d.err = oops.Errorf("reading encoded input at offset %d: %w", d.st.offset, rerr)
	}
}
