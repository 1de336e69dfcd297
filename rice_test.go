package vlc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestRice(t *testing.T) {
	t.Run("n=2", func(tt *testing.T) {
		r, err := NewRice[int](2, false)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		s := NewStream()
		if err := r.Encode(s, 0); err != nil {
			tt.Fatalf("%+v", err)
		}
		if s.String() != "000" {
			tt.Errorf("actual=%s", s.String())
		}
		if err := r.EncodeAll(s, []int{1, 2, 3}); err != nil {
			tt.Fatalf("%+v", err)
		}
		if s.String() != "000010100110" {
			tt.Errorf("actual=%s", s.String())
		}

		v, err := r.Decode(s)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		if v != 0 {
			tt.Errorf("actual=%d", v)
		}
		decoded, err := r.DecodeN(s, 3)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		if cmp.Equal(decoded, []int{1, 2, 3}) != true {
			tt.Errorf("actual=%v", decoded)
		}
	})
	t.Run("msb first", func(tt *testing.T) {
		r, err := NewRice[int](3, false)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		s := NewStream()
		// 13 = 1*8 + 5: fixed 101, unary 10
		if err := r.Encode(s, 13); err != nil {
			tt.Fatalf("%+v", err)
		}
		if s.String() != "10110" {
			tt.Errorf("actual=%s", s.String())
		}
	})
	t.Run("signed", func(tt *testing.T) {
		r, err := NewRice[int](1, true)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		s := NewStream()
		if err := r.EncodeAll(s, []int{-3, 0, 3}); err != nil {
			tt.Fatalf("%+v", err)
		}
		if s.String() != "1110"+"000"+"0110" {
			tt.Errorf("actual=%s", s.String())
		}
	})
	t.Run("unsigned negative", func(tt *testing.T) {
		r, err := NewRice[int](2, false)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		var we *WriteError
		if err := r.Encode(NewStream(), -1); errors.As(err, &we) != true {
			tt.Errorf("expect WriteError: %v", err)
		}
	})
	t.Run("truncated", func(tt *testing.T) {
		r, err := NewRice[int](4, true)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		for _, str := range []string{"", "0", "0101", "0101111"} {
			s, err := ParseStream(str)
			if err != nil {
				tt.Fatalf("%+v", err)
			}
			var re *ReadError
			if _, err := r.Decode(s); errors.As(err, &re) != true {
				tt.Errorf("%q: expect ReadError: %v", str, err)
			}
		}
	})
	t.Run("parameter", func(tt *testing.T) {
		if _, err := NewRice[int](64, false); errors.Is(err, ErrRiceParameter) != true {
			tt.Errorf("expect ErrRiceParameter: %v", err)
		}
		r, err := NewRice[int16](5, true)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		if r.N() != 5 || r.Signed() != true {
			tt.Errorf("n=%d signed=%v", r.N(), r.Signed())
		}
	})
}

func TestRiceRoundTrip(t *testing.T) {
	for n := uint(0); n <= 8; n += 1 {
		signed, err := NewRice[int](n, true)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		unsigned, err := NewRice[int](n, false)
		if err != nil {
			t.Fatalf("%+v", err)
		}

		s := NewStream()
		for v := -10000; v <= 10000; v += 1 {
			if err := signed.Encode(s, v); err != nil {
				t.Fatalf("%+v", err)
			}
			got, err := signed.Decode(s)
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if got != v {
				t.Fatalf("n=%d signed: %d != %d", n, got, v)
			}
			if s.Len() != 0 {
				t.Fatalf("n=%d v=%d unconsumed %d bits", n, v, s.Len())
			}

			if v < 0 {
				continue
			}
			if err := unsigned.Encode(s, v); err != nil {
				t.Fatalf("%+v", err)
			}
			got, err = unsigned.Decode(s)
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if got != v {
				t.Fatalf("n=%d unsigned: %d != %d", n, got, v)
			}
		}
	}
}

func TestRiceBounds(t *testing.T) {
	t.Run("int8", func(tt *testing.T) {
		r, err := NewRice[int8](3, true)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		values := []int8{math.MinInt8, -1, 0, 1, math.MaxInt8}
		s := NewStream()
		if err := r.EncodeAll(s, values); err != nil {
			tt.Fatalf("%+v", err)
		}
		decoded, err := r.DecodeN(s, len(values))
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		if cmp.Equal(decoded, values) != true {
			tt.Errorf("%v != %v", decoded, values)
		}
	})
	t.Run("int64", func(tt *testing.T) {
		r, err := NewRice[int64](60, true)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		values := []int64{math.MinInt64, math.MaxInt64, -42}
		s := NewStream()
		if err := r.EncodeAll(s, values); err != nil {
			tt.Fatalf("%+v", err)
		}
		decoded, err := r.DecodeN(s, len(values))
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		if cmp.Equal(decoded, values) != true {
			tt.Errorf("%v != %v", decoded, values)
		}
	})
	t.Run("out of range", func(tt *testing.T) {
		wide, err := NewRice[int](2, true)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		narrow, err := NewRice[int8](2, true)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		unsigned, err := NewRice[uint8](2, true)
		if err != nil {
			tt.Fatalf("%+v", err)
		}

		s := NewStream()
		if err := wide.Encode(s, 200); err != nil {
			tt.Fatalf("%+v", err)
		}
		var re *ReadError
		if _, err := narrow.Decode(s); errors.As(err, &re) != true {
			tt.Errorf("expect ReadError: %v", err)
		}

		s = NewStream()
		if err := wide.Encode(s, -5); err != nil {
			tt.Fatalf("%+v", err)
		}
		if _, err := unsigned.Decode(s); errors.As(err, &re) != true {
			tt.Errorf("expect ReadError: %v", err)
		}
	})
}

func TestSelectRiceParameter(t *testing.T) {
	tests := []struct {
		mean   float64
		expect uint
	}{
		{0, 0},
		{-1, 0},
		{math.NaN(), 0},
		{0.5, 0},
		{1, 0},
		{10, 3},
		{100, 6},
		{math.Inf(1), 63},
	}
	for _, tc := range tests {
		if n := SelectRiceParameter(tc.mean); n != tc.expect {
			t.Errorf("mean=%v: %d != %d", tc.mean, n, tc.expect)
		}
	}
}
