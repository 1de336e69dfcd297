// Package vlc implements variable-length bit codes: table, Huffman, unary and Rice.
package vlc

type SignedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type UnsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Integer interface {
	SignedInt | UnsignedInt
}

// Codec encodes and decodes values of T on a BitStream.
type Codec[T any] interface {
	Encode(s BitStream, v T) error
	EncodeAll(s BitStream, values []T) error
	Decode(s BitStream) (T, error)
	DecodeN(s BitStream, count int) ([]T, error)
}
