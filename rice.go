package vlc

import (
	"math"

	"github.com/pkg/errors"
)

const maxRiceParameter = 63

func magnitude[T Integer](v T) uint64 {
	if v < 0 {
		return uint64(-(int64(v) + 1)) + 1
	}
	return uint64(v)
}

func fromMagnitude[T Integer](mag uint64, negative bool) (T, bool) {
	v := T(mag)
	if negative {
		v = -v
		if 0 < v {
			return 0, false
		}
		return v, magnitude(v) == mag
	}
	return v, 0 <= v && uint64(v) == mag
}

// Rice is a Golomb code with divisor 2^n. A value is written as an optional
// sign bit, the n low bits of its magnitude (most significant first), then
// the remaining high part in unary.
type Rice[T Integer] struct {
	*SymbolCodec[T]

	n      uint
	signed bool
}

func (r *Rice[T]) N() uint {
	return r.n
}

func (r *Rice[T]) Signed() bool {
	return r.signed
}

func (r *Rice[T]) encodeSymbol(s BitStream, v T) error {
	if r.signed {
		s.Write(v < 0)
	} else if v < 0 {
		return &WriteError{Symbol: v, Reason: "unsigned rice code needs a non-negative value"}
	}

	mag := magnitude(v)
	quotient := mag >> r.n
	remainder := mag & ((uint64(1) << r.n) - 1)

	fixed := make(Bits, r.n)
	for i := int(r.n) - 1; 0 <= i; i -= 1 {
		fixed[i] = remainder&1 == 1
		remainder >>= 1
	}
	s.Write(fixed...)

	writeUnary(s, quotient)
	return nil
}

func (r *Rice[T]) decodeSymbol(s BitStream) (T, error) {
	negative := false
	if r.signed {
		if s.Len() < 1 {
			return 0, &ReadError{Reason: "stream ended before sign bit"}
		}
		bit, err := s.ReadBool()
		if err != nil {
			return 0, errors.WithStack(err)
		}
		negative = bit
	}

	if s.Len() < int(r.n) {
		rest, err := s.Copy(s.Len())
		if err != nil {
			return 0, errors.WithStack(err)
		}
		return 0, &ReadError{Bits: rest, Reason: "stream ended inside fixed bits"}
	}
	fixed, err := s.Read(int(r.n))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	fixedNumber := uint64(0)
	for _, bit := range fixed {
		fixedNumber *= 2
		if bit {
			fixedNumber += 1
		}
	}

	q, err := readUnary(s)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if (uint64(math.MaxUint64) >> r.n) < q {
		return 0, &ReadError{Bits: fixed, Reason: "quotient overflows 64 bits"}
	}

	v, ok := fromMagnitude[T](fixedNumber+(q<<r.n), negative)
	if ok != true {
		return 0, &ReadError{Bits: fixed, Reason: "value out of range"}
	}
	return v, nil
}

// NewRice returns a Rice codec with n fixed low bits. When signed is true a
// sign bit precedes every value.
func NewRice[T Integer](n uint, signed bool) (*Rice[T], error) {
	if maxRiceParameter < n {
		return nil, errors.Wrapf(ErrRiceParameter, "n=%d", n)
	}
	r := &Rice[T]{n: n, signed: signed}
	r.SymbolCodec = NewSymbolCodec(r.encodeSymbol, r.decodeSymbol)
	return r, nil
}

// SelectRiceParameter estimates a near optimal n for values whose mean
// magnitude is mean:
//
//	n = max(0, 1 + floor(log2(log(phi-1) / log(mean/(mean+1)))))
//
// where phi is the golden ratio (1+sqrt(5))/2.
func SelectRiceParameter(mean float64) uint {
	if math.IsNaN(mean) || mean <= 0 {
		return 0
	}
	if math.IsInf(mean, 1) {
		return maxRiceParameter
	}
	phi := (1 + math.Sqrt(5)) / 2
	denom := math.Log(mean / (mean + 1))
	if denom == 0 {
		// mean/(mean+1) rounds to 1
		return maxRiceParameter
	}
	x := 1 + math.Floor(math.Log2(math.Log(phi-1)/denom))
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if maxRiceParameter < x {
		return maxRiceParameter
	}
	return uint(x)
}
