package vlc

import (
	"github.com/pkg/errors"
)

// EncodeFunc appends the code of a single symbol to s.
type EncodeFunc[T any] func(s BitStream, v T) error

// DecodeFunc consumes the code of a single symbol from s.
type DecodeFunc[T any] func(s BitStream) (T, error)

// StreamEncoder lifts a single symbol encoder into one that encodes
// values in order. Codes are self-delimiting so nothing separates them.
func StreamEncoder[T any](fn EncodeFunc[T]) func(BitStream, []T) error {
	return func(s BitStream, values []T) error {
		for _, v := range values {
			if err := fn(s, v); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}
}

// StreamDecoder lifts a single symbol decoder into one that decodes
// exactly count symbols. Errors from fn are returned as is, with no recovery.
func StreamDecoder[T any](fn DecodeFunc[T]) func(BitStream, int) ([]T, error) {
	return func(s BitStream, count int) ([]T, error) {
		if count < 0 {
			return nil, errors.Wrapf(ErrNegativeCount, "decode %d symbols", count)
		}
		// every code takes at least one bit
		values := make([]T, 0, min(count, s.Len()))
		for i := 0; i < count; i += 1 {
			v, err := fn(s)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			values = append(values, v)
		}
		return values, nil
	}
}

var (
	_ Codec[int] = (*SymbolCodec[int])(nil)
)

// SymbolCodec is a Codec built from a pair of single symbol functions.
type SymbolCodec[T any] struct {
	encode    EncodeFunc[T]
	decode    DecodeFunc[T]
	encodeAll func(BitStream, []T) error
	decodeN   func(BitStream, int) ([]T, error)
}

func (c *SymbolCodec[T]) Encode(s BitStream, v T) error {
	if err := c.encode(s, v); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (c *SymbolCodec[T]) EncodeAll(s BitStream, values []T) error {
	return c.encodeAll(s, values)
}

func (c *SymbolCodec[T]) Decode(s BitStream) (T, error) {
	v, err := c.decode(s)
	if err != nil {
		var zero T
		return zero, errors.WithStack(err)
	}
	return v, nil
}

func (c *SymbolCodec[T]) DecodeN(s BitStream, count int) ([]T, error) {
	return c.decodeN(s, count)
}

func NewSymbolCodec[T any](enc EncodeFunc[T], dec DecodeFunc[T]) *SymbolCodec[T] {
	return &SymbolCodec[T]{
		encode:    enc,
		decode:    dec,
		encodeAll: StreamEncoder(enc),
		decodeN:   StreamDecoder(dec),
	}
}
