package bitstream

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestWriterPacksMSBFirst(t *testing.T) {
	for _, tc := range []struct {
		name string
		bits []uint8
		want []byte
	}{
		{name: "empty", bits: nil, want: nil},
		{name: "one_bit", bits: []uint8{1}, want: []byte{0x80}},
		{name: "four_ones", bits: []uint8{1, 1, 1, 1}, want: []byte{0xF0}},
		{name: "full_byte", bits: []uint8{1, 0, 1, 0, 0, 1, 0, 1}, want: []byte{0xA5}},
		{name: "nine_bits", bits: []uint8{0, 0, 0, 0, 0, 0, 0, 1, 1}, want: []byte{0x01, 0x80}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)
			for _, b := range tc.bits {
				if err := w.WriteBit(b); err != nil {
					t.Fatalf("WriteBit: %v", err)
				}
			}
			if err := w.Flush(); err != nil {
				t.Fatalf("Flush: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tc.want) {
				t.Fatalf("got %x want %x", buf.Bytes(), tc.want)
			}
			if got := w.Bits(); got != uint64(len(tc.bits)) {
				t.Fatalf("Bits() = %d want %d", got, len(tc.bits))
			}
		})
	}
}

func TestWriteBitsIgnoresHighBits(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	// Only the low 3 bits (101) are written.
	if err := w.WriteBits(0xFD, 3); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := w.WriteBits(0b10101, 5); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := w.WriteBits(0xDEADBEEF, 32); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	want := []byte{0xB5, 0xDE, 0xAD, 0xBE, 0xEF}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got %x want %x", buf.Bytes(), want)
	}
}

func TestWriterFlushTwice(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteBits(0b11, 2); err != nil {
		t.Fatalf("WriteBits: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("second Flush: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0xC0}) {
		t.Fatalf("got %x want c0", buf.Bytes())
	}
	if err := w.WriteBit(1); err == nil {
		t.Fatalf("expected error writing after flush")
	}
}

func TestWriteBitsRejectsOversizedLength(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	if err := w.WriteBits(0, 65); err == nil {
		t.Fatalf("expected error for 65 bit write")
	}
}

func TestReaderReadsMSBFirst(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xA5, 0x01}))
	want := []uint8{1, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1}
	for i, w := range want {
		b, err := r.ReadBit()
		if err != nil {
			t.Fatalf("bit %d: %v", i, err)
		}
		if b != w {
			t.Fatalf("bit %d: got %d want %d", i, b, w)
		}
	}
	if _, err := r.ReadBit(); !errors.Is(err, ErrStreamExhausted) {
		t.Fatalf("expected ErrStreamExhausted, got %v", err)
	}
	if got := r.Bits(); got != 16 {
		t.Fatalf("Bits() = %d want 16", got)
	}
}

func TestReaderEmptySource(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	if _, err := r.ReadBit(); !errors.Is(err, ErrStreamExhausted) {
		t.Fatalf("expected ErrStreamExhausted, got %v", err)
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	codes := []struct {
		v uint64
		n uint8
	}{{0b1, 1}, {0b0110, 4}, {0x3FF, 10}, {0, 3}, {1<<63 | 1, 64}}
	var total int
	for _, c := range codes {
		if err := w.WriteBits(c.v, c.n); err != nil {
			t.Fatalf("WriteBits: %v", err)
		}
		total += int(c.n)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := buf.Len(), (total+7)/8; got != want {
		t.Fatalf("packed %d bytes want %d", got, want)
	}

	r := NewReader(&buf)
	for _, c := range codes {
		var v uint64
		for i := uint8(0); i < c.n; i++ {
			b, err := r.ReadBit()
			if err != nil {
				t.Fatalf("ReadBit: %v", err)
			}
			v = v<<1 | uint64(b)
		}
		if v != c.v {
			t.Fatalf("got %#x want %#x", v, c.v)
		}
	}
}
