package vlc

import (
	"github.com/pkg/errors"
)

func writeUnary(s BitStream, n uint64) {
	for i := uint64(0); i < n; i += 1 {
		s.Write(true)
	}
	s.Write(false)
}

func readUnary(s BitStream) (uint64, error) {
	count := uint64(0)
	for {
		if s.Len() < 1 {
			ones := make(Bits, count)
			for i := range ones {
				ones[i] = true
			}
			return 0, &ReadError{Bits: ones, Reason: "stream ended before terminating zero bit"}
		}
		bit, err := s.ReadBool()
		if err != nil {
			return 0, errors.WithStack(err)
		}
		if bit != true {
			return count, nil
		}
		count += 1
	}
}

// Unary codes n as n one bits followed by a zero bit.
type Unary[T Integer] struct {
	*SymbolCodec[T]
}

func (u *Unary[T]) encodeSymbol(s BitStream, v T) error {
	if v < 0 {
		return &WriteError{Symbol: v, Reason: "unary code needs a non-negative value"}
	}
	writeUnary(s, uint64(v))
	return nil
}

func (u *Unary[T]) decodeSymbol(s BitStream) (T, error) {
	n, err := readUnary(s)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	v, ok := fromMagnitude[T](n, false)
	if ok != true {
		return 0, &ReadError{Reason: "value out of range"}
	}
	return v, nil
}

func NewUnary[T Integer]() *Unary[T] {
	u := &Unary[T]{}
	u.SymbolCodec = NewSymbolCodec(u.encodeSymbol, u.decodeSymbol)
	return u
}
