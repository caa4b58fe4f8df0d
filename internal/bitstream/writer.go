// Package bitstream packs and unpacks individual bits into a byte stream,
// most significant bit first.
package bitstream

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Writer accumulates bits and emits a byte every time eight are collected.
// Flush must be called once writing is done, also on error paths, otherwise
// up to seven trailing bits are lost.
type Writer struct {
	bw      *bitio.Writer
	bits    uint64
	flushed bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

// WriteBit writes the lowest bit of b.
func (w *Writer) WriteBit(b uint8) error {
	if w.flushed {
		return errors.New("bitstream: write after flush")
	}
	if err := w.bw.WriteBool(b&1 == 1); err != nil {
		return errors.Wrap(err, "bitstream: write bit")
	}
	w.bits++
	return nil
}

// WriteBits writes the n lowest bits of v, from bit n-1 down to bit 0.
func (w *Writer) WriteBits(v uint64, n uint8) error {
	if n > 64 {
		return errors.Errorf("bitstream: cannot write %d bits at once", n)
	}
	if n == 0 {
		return nil
	}
	if w.flushed {
		return errors.New("bitstream: write after flush")
	}
	if n < 64 {
		v &= 1<<n - 1
	}
	if err := w.bw.WriteBits(v, n); err != nil {
		return errors.Wrap(err, "bitstream: write bits")
	}
	w.bits += uint64(n)
	return nil
}

// Flush emits the pending partial byte, left aligned and zero padded.
// Nothing is written when the accumulator is empty. Calling Flush more
// than once is a no-op.
func (w *Writer) Flush() error {
	if w.flushed {
		return nil
	}
	w.flushed = true
	return errors.Wrap(w.bw.Close(), "bitstream: flush")
}

// Bits returns the number of bits written so far, padding excluded.
func (w *Writer) Bits() uint64 { return w.bits }
