package vlc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidSymbol  = errors.New("invalid symbol")
	ErrShortStream    = errors.New("not enough bits in stream")
	ErrNotPrefixFree  = errors.New("code table is not prefix-free")
	ErrEmptyAlphabet  = errors.New("alphabet has no symbols")
	ErrInvalidWeight  = errors.New("weight must be positive and finite")
	ErrDuplicate      = errors.New("duplicate symbol")
	ErrNegativeCount  = errors.New("count must not be negative")
	ErrRiceParameter  = errors.New("rice parameter must be less than 64")
	ErrInvalidBitChar = errors.New("bit string must contain only '0' and '1'")
)

// WriteError is returned by an encoder when the value can not be represented
// by the codec.
type WriteError struct {
	Symbol any
	Reason string
}

func (e *WriteError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("write %v: %s", e.Symbol, ErrInvalidSymbol)
	}
	return fmt.Sprintf("write %v: %s: %s", e.Symbol, ErrInvalidSymbol, e.Reason)
}

func (e *WriteError) Unwrap() error {
	return ErrInvalidSymbol
}

// ReadError is returned by a decoder when the leading bits of the stream
// do not form a valid code word. Bits holds the bits that were examined and
// Inverse the code word to symbol table (table codecs only).
type ReadError struct {
	Bits    Bits
	Inverse map[string]any
	Reason  string
}

func (e *ReadError) Error() string {
	msg := fmt.Sprintf("read %q: %s", e.Bits.String(), ErrInvalidSymbol)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if 0 < len(e.Inverse) {
		keys := make([]string, 0, len(e.Inverse))
		for k := range e.Inverse {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s:%v", k, e.Inverse[k])
		}
		msg += " (known codes " + strings.Join(pairs, " ") + ")"
	}
	return msg
}

func (e *ReadError) Unwrap() error {
	return ErrInvalidSymbol
}
