package vlc

import (
	"github.com/pkg/errors"
)

// TableCodec maps a fixed alphabet to code words through a lookup table.
// The table must be prefix-free.
type TableCodec[S comparable] struct {
	*SymbolCodec[S]

	table   map[S]Bits
	inverse map[string]S
	maxLen  int
}

func (c *TableCodec[S]) encodeSymbol(s BitStream, sym S) error {
	code, ok := c.table[sym]
	if ok != true {
		return &WriteError{Symbol: sym, Reason: "not in alphabet"}
	}
	s.Write(code.Clone()...)
	return nil
}

func (c *TableCodec[S]) decodeSymbol(s BitStream) (S, error) {
	var zero S

	limit := min(c.maxLen, s.Len())
	for n := 0; n <= limit; n += 1 {
		prefix, err := s.Copy(n)
		if err != nil {
			return zero, errors.WithStack(err)
		}
		sym, ok := c.inverse[prefix.String()]
		if ok != true {
			continue
		}
		if _, err := s.Read(n); err != nil {
			return zero, errors.WithStack(err)
		}
		return sym, nil
	}

	partial, err := s.Copy(limit)
	if err != nil {
		return zero, errors.WithStack(err)
	}
	return zero, &ReadError{Bits: partial, Inverse: c.inverseTable(), Reason: "no matching code word"}
}

func (c *TableCodec[S]) inverseTable() map[string]any {
	inv := make(map[string]any, len(c.inverse))
	for k, v := range c.inverse {
		inv[k] = v
	}
	return inv
}

// Table returns a copy of the symbol to code word table.
func (c *TableCodec[S]) Table() map[S]Bits {
	t := make(map[S]Bits, len(c.table))
	for sym, code := range c.table {
		t[sym] = code.Clone()
	}
	return t
}

// MaxLen returns the length of the longest code word.
func (c *TableCodec[S]) MaxLen() int {
	return c.maxLen
}

func validatePrefixFree(codes []Bits) error {
	for i, a := range codes {
		if len(a) == 0 {
			return errors.Wrap(ErrNotPrefixFree, "empty code word")
		}
		for j, b := range codes {
			if i == j {
				continue
			}
			if b.HasPrefix(a) {
				return errors.Wrapf(ErrNotPrefixFree, "%s is a prefix of %s", a, b)
			}
		}
	}
	return nil
}

// NewTableCodec returns a codec over table. The table is copied, so later
// changes to it or to its code words do not affect the codec.
func NewTableCodec[S comparable](table map[S]Bits) (*TableCodec[S], error) {
	if len(table) == 0 {
		return nil, errors.WithStack(ErrEmptyAlphabet)
	}

	c := &TableCodec[S]{
		table:   make(map[S]Bits, len(table)),
		inverse: make(map[string]S, len(table)),
	}
	codes := make([]Bits, 0, len(table))
	for sym, code := range table {
		cp := code.Clone()
		c.table[sym] = cp
		c.inverse[cp.String()] = sym
		c.maxLen = max(c.maxLen, len(cp))
		codes = append(codes, cp)
	}
	if err := validatePrefixFree(codes); err != nil {
		return nil, errors.WithStack(err)
	}
	c.SymbolCodec = NewSymbolCodec(c.encodeSymbol, c.decodeSymbol)
	return c, nil
}
