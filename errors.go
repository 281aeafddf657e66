package huffman

import (
	"errors"
	"fmt"
)

// Errors reported by this package.  UnknownSymbolError and
// TruncatedBitstreamError wrap their sentinels, so errors.Is matches either
// form.
var (
	// ErrEmptyInput is reported when a frequency table is built from an
	// input holding no symbols.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrEmptyFrequencyTable is reported when a tree is built from a nil
	// or empty frequency table.
	ErrEmptyFrequencyTable = errors.New("huffman: empty frequency table")

	// ErrEmptyTree is reported when a code book is derived from a nil or
	// rootless tree.
	ErrEmptyTree = errors.New("huffman: empty tree")

	// ErrUnknownSymbol is reported when encoding meets a symbol that has
	// no entry in the code book.
	ErrUnknownSymbol = errors.New("huffman: symbol not in code book")

	// ErrTruncatedBitstream is reported when decoding runs out of bits
	// between code boundaries.
	ErrTruncatedBitstream = errors.New("huffman: bitstream ends mid-code")

	// ErrCorruptBitstream is reported when a bit addresses an absent
	// child, which only a stream not produced by Encode can do.
	ErrCorruptBitstream = errors.New("huffman: bit addresses no child")

	// ErrInvalidTree is reported when decoding against a nil or rootless
	// tree.
	ErrInvalidTree = errors.New("huffman: invalid tree")
)

// UnknownSymbolError reports which symbol had no entry in the code book.
type UnknownSymbolError struct {
	Symbol Symbol
}

func (e UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: symbol %q not in code book", rune(e.Symbol))
}

func (e UnknownSymbolError) Unwrap() error {
	return ErrUnknownSymbol
}

// TruncatedBitstreamError reports the bit offset at which the stream ran
// out while the decoder was still between code boundaries.
type TruncatedBitstreamError struct {
	Offset int
}

func (e TruncatedBitstreamError) Error() string {
	return fmt.Sprintf("huffman: bitstream ends mid-code at bit %d", e.Offset)
}

func (e TruncatedBitstreamError) Unwrap() error {
	return ErrTruncatedBitstream
}
