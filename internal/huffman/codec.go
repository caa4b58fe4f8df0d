// Package huffman implements the HF1 container: whole-buffer static Huffman
// coding with the symbol counts stored in the header so the decoder can
// rebuild the same prefix tree.
package huffman

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/atiedebee/hf1/internal/bitstream"
)

type config struct {
	log logrus.FieldLogger
}

// Option configures a Codec.
type Option func(*config)

// WithLogger sets the logger stage sizes are reported to at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.log = l
	}
}

// Codec compresses and decompresses HF1 containers. It keeps no state
// between calls and is safe for concurrent use.
type Codec struct {
	log logrus.FieldLogger
}

func NewCodec(opts ...Option) *Codec {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.log = l
	}
	return &Codec{log: cfg.log}
}

var defaultCodec = NewCodec()

// Compress encodes data into a new container with a silent Codec.
func Compress(data []byte) ([]byte, error) { return defaultCodec.Compress(data) }

// Decompress decodes a container with a silent Codec.
func Decompress(container []byte) ([]byte, error) { return defaultCodec.Decompress(container) }

// Stats describes one compression.
type Stats struct {
	InputSize  int
	OutputSize int
	Symbols    int
	BodyBits   uint64
}

// Ratio returns OutputSize / InputSize.
func (s Stats) Ratio() float64 {
	if s.InputSize == 0 {
		return 0
	}
	return float64(s.OutputSize) / float64(s.InputSize)
}

func (c *Codec) Compress(data []byte) ([]byte, error) {
	out, _, err := c.CompressStats(data)
	return out, err
}

// CompressStats is Compress that also reports sizes. On error no container
// is returned.
func (c *Codec) CompressStats(data []byte) ([]byte, Stats, error) {
	var buf bytes.Buffer
	buf.Grow(HeaderSize + len(data)/2)

	st, err := c.encode(&buf, data)
	if err != nil {
		return nil, Stats{}, err
	}
	st.OutputSize = buf.Len()

	c.log.WithFields(logrus.Fields{
		"input":   st.InputSize,
		"output":  st.OutputSize,
		"symbols": st.Symbols,
		"bits":    st.BodyBits,
	}).Debug("compressed")
	return buf.Bytes(), st, nil
}

func (c *Codec) encode(w io.Writer, data []byte) (st Stats, err error) {
	freq := CountFrequencies(data)
	tree, err := BuildTree(&freq)
	if err != nil {
		return st, err
	}
	codes := tree.Codes()
	st.InputSize = len(data)
	st.Symbols = freq.Distinct()
	c.log.WithField("depth", tree.Depth()).Debug("built prefix tree")

	hdr := Header{Version: Version, OriginalSize: uint64(len(data)), Freq: freq}
	if _, err := hdr.WriteTo(w); err != nil {
		return st, err
	}

	bw := bitstream.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = ferr
		}
		st.BodyBits = bw.Bits()
	}()

	return st, writeBody(bw, data, codes)
}

func writeBody(bw *bitstream.Writer, data []byte, codes *CodeTable) error {
	for i, b := range data {
		code := codes[b]
		if !code.Valid || code.Len == 0 {
			return errors.Wrapf(ErrInvalidCode, "byte %#02x at offset %d", b, i)
		}
		if err := bw.WriteBits(code.Bits, code.Len); err != nil {
			return err
		}
	}
	return nil
}

// Decompress rebuilds the original bytes from a container. Nothing is
// returned unless every declared byte was decoded.
func (c *Codec) Decompress(container []byte) ([]byte, error) {
	r := bytes.NewReader(container)
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	tree, err := BuildTree(&hdr.Freq)
	if err != nil {
		return nil, errors.Wrap(err, "huffman: rebuild tree")
	}

	// Every symbol takes at least one bit.
	if body := uint64(r.Len()); hdr.OriginalSize > body*8 {
		return nil, errors.Wrapf(ErrTruncatedStream, "%d bytes declared, body has %d bits", hdr.OriginalSize, body*8)
	}

	out := make([]byte, hdr.OriginalSize)
	br := bitstream.NewReader(r)
	for i := range out {
		sym, err := tree.decodeSymbol(br)
		if err != nil {
			if errors.Is(err, bitstream.ErrStreamExhausted) {
				return nil, errors.Wrapf(ErrTruncatedStream, "at byte %d of %d", i, len(out))
			}
			return nil, err
		}
		out[i] = sym
	}

	c.log.WithFields(logrus.Fields{
		"input":  len(container),
		"output": len(out),
		"bits":   br.Bits(),
	}).Debug("decompressed")
	return out, nil
}

// decodeSymbol walks from the root to a leaf, one bit per internal node.
func (t *Tree) decodeSymbol(br *bitstream.Reader) (byte, error) {
	n := t.root
	for !n.Leaf() {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		n = n.next[bit]
	}
	return n.Symbol, nil
}
