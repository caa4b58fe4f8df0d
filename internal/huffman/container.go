package huffman

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Container layout, integers little-endian:
//
//	magic    [3]byte  "HF1"
//	version  uint8    1
//	size     uint64   length of the original data
//	freq     [256]uint64
//	body     packed codes, MSB first, last byte zero padded
const (
	Magic      = "HF1"
	Version    = 1
	HeaderSize = len(Magic) + 1 + 8 + 256*8
)

// Header is the fixed size prefix of a container.
type Header struct {
	Version      uint8
	OriginalSize uint64
	Freq         FrequencyTable
}

func (h *Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	copy(buf, Magic)
	buf[3] = h.Version
	binary.LittleEndian.PutUint64(buf[4:], h.OriginalSize)
	for i, f := range h.Freq {
		binary.LittleEndian.PutUint64(buf[12+8*i:], f)
	}
	return buf, nil
}

func (h *Header) WriteTo(w io.Writer) (int64, error) {
	buf, err := h.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if err == nil && n != len(buf) {
		err = io.ErrShortWrite
	}
	return int64(n), errors.Wrap(err, "huffman: write header")
}

func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < len(Magic) || string(data[:len(Magic)]) != Magic {
		return errors.Wrapf(ErrFormat, "bad magic %q", data[:min(len(data), len(Magic))])
	}
	if len(data) < 4 {
		return errors.Wrap(ErrFormat, "missing version")
	}
	if data[3] != Version {
		return errors.Wrapf(ErrFormat, "unsupported version %d", data[3])
	}
	if len(data) < HeaderSize {
		return errors.Wrapf(ErrFormat, "header is %d bytes, need %d", len(data), HeaderSize)
	}
	h.Version = data[3]
	h.OriginalSize = binary.LittleEndian.Uint64(data[4:])
	for i := range h.Freq {
		h.Freq[i] = binary.LittleEndian.Uint64(data[12+8*i:])
	}
	return nil
}

// ReadHeader reads and validates a header from r.
func ReadHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			var h Header
			return nil, h.UnmarshalBinary(buf[:n])
		}
		return nil, errors.Wrap(err, "huffman: read header")
	}
	var h Header
	if err := h.UnmarshalBinary(buf); err != nil {
		return nil, err
	}
	return &h, nil
}
