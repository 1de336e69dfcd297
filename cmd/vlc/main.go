package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/octu0/vlc"
	"github.com/pkg/errors"
)

var (
	coder  = flag.String("coder", "rice", "unary or rice")
	n      = flag.Uint("n", 0, "rice parameter, number of fixed low bits")
	auto   = flag.Bool("auto", false, "choose the rice parameter from the mean of the input")
	signed = flag.Bool("signed", false, "rice values carry a sign bit")
	decode = flag.Bool("decode", false, "decode a bit string from stdin instead of encoding integers")
	count  = flag.Int("count", -1, "number of values to decode, -1 decodes until the input is drained")
	pack   = flag.Bool("pack", false, "read/write packed bytes instead of a '0'/'1' string, -bits is required for decoding")
	nbits  = flag.Int("bits", 0, "number of bits in the packed input")
)

func newCodec(param uint) (vlc.Codec[int64], error) {
	switch *coder {
	case "unary":
		return vlc.NewUnary[int64](), nil
	case "rice":
		r, err := vlc.NewRice[int64](param, *signed)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return r, nil
	}
	return nil, errors.Errorf("unknown coder: %s", *coder)
}

func readValues(r io.Reader) ([]int64, error) {
	values := make([]int64, 0, 64)
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", sc.Text())
		}
		values = append(values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return values, nil
}

func meanMagnitude(values []int64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		if v < 0 {
			sum -= float64(v)
		} else {
			sum += float64(v)
		}
	}
	return sum / float64(len(values))
}

func runEncode(in io.Reader, out io.Writer) error {
	values, err := readValues(in)
	if err != nil {
		return errors.WithStack(err)
	}
	param := *n
	if *auto {
		param = vlc.SelectRiceParameter(meanMagnitude(values))
		log.Printf("rice parameter n=%d", param)
	}
	c, err := newCodec(param)
	if err != nil {
		return errors.WithStack(err)
	}

	s := vlc.NewStream()
	if err := c.EncodeAll(s, values); err != nil {
		return errors.WithStack(err)
	}
	if *pack {
		log.Printf("%d bits", s.Len())
		if _, err := s.WriteTo(out); err != nil {
			return errors.WithStack(err)
		}
		return nil
	}
	if _, err := fmt.Fprintln(out, s.String()); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func readStream(in io.Reader) (*vlc.Stream, error) {
	if *pack {
		if *nbits <= 0 {
			return nil, errors.New("-bits is required with -decode -pack")
		}
		return vlc.ReadStream(in, *nbits)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return vlc.ParseStream(strings.Join(strings.Fields(string(data)), ""))
}

func runDecode(in io.Reader, out io.Writer) error {
	s, err := readStream(in)
	if err != nil {
		return errors.WithStack(err)
	}
	c, err := newCodec(*n)
	if err != nil {
		return errors.WithStack(err)
	}

	var values []int64
	if 0 <= *count {
		values, err = c.DecodeN(s, *count)
		if err != nil {
			return errors.WithStack(err)
		}
	} else {
		for 0 < s.Len() {
			v, err := c.Decode(s)
			if err != nil {
				return errors.WithStack(err)
			}
			values = append(values, v)
		}
	}

	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.FormatInt(v, 10)
	}
	if _, err := fmt.Fprintln(out, strings.Join(strs, " ")); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] < input\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	run := runEncode
	if *decode {
		run = runDecode
	}
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%+v", err)
	}
}
