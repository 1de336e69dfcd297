package vlc

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

const maxPreallocBits = 64 * 1024

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo packs the unconsumed bits into bytes, most significant bit first.
// The last byte is padded with zero bits. The stream is not consumed.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	bw := bitio.NewWriter(cw)
	for _, bit := range s.bits[s.pos:] {
		if err := bw.WriteBool(bit); err != nil {
			return cw.n, errors.WithStack(err)
		}
	}
	if err := bw.Close(); err != nil {
		return cw.n, errors.WithStack(err)
	}
	return cw.n, nil
}

// ReadStream reads nbits bits packed by WriteTo from r.
func ReadStream(r io.Reader, nbits int) (*Stream, error) {
	if nbits < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "read %d bits", nbits)
	}
	br := bitio.NewReader(r)
	// nbits comes from the caller, grow as bits arrive
	s := &Stream{bits: make([]bool, 0, min(nbits, maxPreallocBits))}
	for i := 0; i < nbits; i += 1 {
		bit, err := br.ReadBool()
		if err != nil {
			return nil, errors.Wrapf(err, "bit %d of %d", i, nbits)
		}
		s.Write(bit)
	}
	return s, nil
}
