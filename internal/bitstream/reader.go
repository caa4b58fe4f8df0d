package bitstream

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// ErrStreamExhausted is returned when a bit is requested past the end of
// the source.
var ErrStreamExhausted = errors.New("bitstream: stream exhausted")

// Reader hands out the bits of its source one at a time, MSB first.
// It does not know how many trailing bits are meaningful; padding in the
// final byte is returned like any other bit.
type Reader struct {
	br   *bitio.Reader
	bits uint64
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(r)}
}

// ReadBit returns the next bit as 0 or 1.
func (r *Reader) ReadBit() (uint8, error) {
	b, err := r.br.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, ErrStreamExhausted
		}
		return 0, errors.Wrap(err, "bitstream: read bit")
	}
	r.bits++
	if b {
		return 1, nil
	}
	return 0, nil
}

// Bits returns the number of bits consumed so far.
func (r *Reader) Bits() uint64 { return r.bits }
