package vlc

import (
	"strings"

	"github.com/pkg/errors"
)

// Bits is an ordered sequence of bits, used for code words and for
// sub-ranges copied out of a stream.
type Bits []bool

func (b Bits) String() string {
	sb := strings.Builder{}
	sb.Grow(len(b))
	for _, bit := range b {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (b Bits) Clone() Bits {
	if b == nil {
		return nil
	}
	c := make(Bits, len(b))
	copy(c, b)
	return c
}

// HasPrefix reports whether p is a prefix of b.
func (b Bits) HasPrefix(p Bits) bool {
	if len(b) < len(p) {
		return false
	}
	for i := range p {
		if b[i] != p[i] {
			return false
		}
	}
	return true
}

// ParseBits parses a string of '0' and '1' characters.
func ParseBits(s string) (Bits, error) {
	b := make(Bits, len(s))
	for i := 0; i < len(s); i += 1 {
		switch s[i] {
		case '0':
			b[i] = false
		case '1':
			b[i] = true
		default:
			return nil, errors.Wrapf(ErrInvalidBitChar, "offset %d: %q", i, s[i])
		}
	}
	return b, nil
}

// BitStream is the bit buffer codecs read from and write to.
// Len always reports the number of bits not yet consumed.
type BitStream interface {
	// Write appends bits to the end of the stream.
	Write(bits ...bool)
	// Read consumes and returns the next n bits.
	Read(n int) (Bits, error)
	// ReadBool consumes and returns the next bit.
	ReadBool() (bool, error)
	// Copy returns the next n bits without consuming them.
	Copy(n int) (Bits, error)
	// Len returns the number of unconsumed bits.
	Len() int
}

var (
	_ BitStream = (*Stream)(nil)
)

// Stream is an in-memory BitStream.
type Stream struct {
	bits []bool
	pos  int
}

func (s *Stream) Write(bits ...bool) {
	s.bits = append(s.bits, bits...)
}

func (s *Stream) Read(n int) (Bits, error) {
	b, err := s.Copy(n)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	s.advance(n)
	return b, nil
}

func (s *Stream) ReadBool() (bool, error) {
	if s.Len() < 1 {
		return false, errors.WithStack(ErrShortStream)
	}
	bit := s.bits[s.pos]
	s.advance(1)
	return bit, nil
}

func (s *Stream) Copy(n int) (Bits, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "copy %d bits", n)
	}
	if s.Len() < n {
		return nil, errors.Wrapf(ErrShortStream, "want %d bits, have %d", n, s.Len())
	}
	b := make(Bits, n)
	copy(b, s.bits[s.pos:s.pos+n])
	return b, nil
}

func (s *Stream) Len() int {
	return len(s.bits) - s.pos
}

// Bits returns a copy of the unconsumed bits.
func (s *Stream) Bits() Bits {
	return Bits(s.bits[s.pos:]).Clone()
}

func (s *Stream) String() string {
	return Bits(s.bits[s.pos:]).String()
}

func (s *Stream) advance(n int) {
	s.pos += n
	if s.pos == len(s.bits) {
		// fully drained, reuse the backing array
		s.bits = s.bits[:0]
		s.pos = 0
	}
}

func NewStream(bits ...bool) *Stream {
	s := &Stream{bits: make([]bool, 0, len(bits))}
	s.Write(bits...)
	return s
}

// ParseStream returns a Stream holding the bits of a '0'/'1' string.
func ParseStream(str string) (*Stream, error) {
	b, err := ParseBits(str)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return NewStream(b...), nil
}
