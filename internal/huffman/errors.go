package huffman

import "github.com/pkg/errors"

var (
	// ErrEmptyInput means there is no symbol to build a prefix tree from.
	ErrEmptyInput = errors.New("huffman: empty input")
	// ErrFormat means the container header is short, has a bad magic or an
	// unsupported version.
	ErrFormat = errors.New("huffman: invalid container format")
	// ErrTruncatedStream means the packed body ran out before the declared
	// number of bytes was decoded.
	ErrTruncatedStream = errors.New("huffman: truncated stream")
	// ErrInvalidCode means a symbol of the input has no usable code.
	ErrInvalidCode = errors.New("huffman: invalid code")
)
