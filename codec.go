package huffman

import (
	"bytes"
	mathbits "math/bits"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Bitstream is a packed sequence of bits.  The bit length is explicit so
// that the zero padding of a trailing partial byte is never mistaken for
// data.
type Bitstream struct {
	data []byte
	n    int
}

// Len returns the number of valid bits.
func (bs *Bitstream) Len() int {
	return bs.n
}

// Bytes returns a copy of the packed bits.  The first bit occupies the most
// significant position of the first byte; the final byte is zero padded.
func (bs *Bitstream) Bytes() []byte {
	out := make([]byte, len(bs.data))
	copy(out, bs.data)
	return out
}

// String renders the bits as "0" and "1" digits.
func (bs *Bitstream) String() string {
	var sb strings.Builder
	sb.Grow(bs.n)
	for i := 0; i < bs.n; i++ {
		if bs.data[i/8]&(1<<(7-i%8)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Encode concatenates, in input order, the code for each symbol of input.
// It fails with an UnknownSymbolError naming the first symbol that has no
// entry in book; no partial bitstream is returned on failure.
func Encode(input []Symbol, book CodeBook) (*Bitstream, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	nbits := 0
	for _, sym := range input {
		hc, found := book.Lookup(sym)
		if !found {
			return nil, UnknownSymbolError{Symbol: sym}
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, err
		}
		nbits += int(hc.Size)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &Bitstream{data: buf.Bytes(), n: nbits}, nil
}

// EncodeString encodes the runes of s.
func EncodeString(s string, book CodeBook) (*Bitstream, error) {
	return Encode(SymbolsOf(s), book)
}

// Decode walks tree from the root, consuming one bit per step (0 goes
// left, 1 goes right), emits the symbol on reaching a leaf, and resets to
// the root, until bs is exhausted.  The walk must be back at the root when
// the bits run out; otherwise the stream is truncated and a
// TruncatedBitstreamError is returned.  It fails with ErrInvalidTree when
// tree is nil or rootless, and with ErrCorruptBitstream when a bit
// addresses an absent child.  No partial sequence is returned on failure.
func Decode(bs *Bitstream, tree *Tree) ([]Symbol, error) {
	if tree == nil || tree.root == nil {
		return nil, ErrInvalidTree
	}
	assert.Assertf(bs != nil, "nil bitstream")
	assert.Assertf(len(bs.data)*8 >= bs.n, "bitstream data shorter than its declared %d bits", bs.n)

	r := bitio.NewReader(bytes.NewReader(bs.data))
	out := make([]Symbol, 0, bs.n/int(log2uint32(uint32(tree.leaves))))
	node := tree.root
	for off := 0; off < bs.n; off++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		if bit {
			node = node.right
		} else {
			node = node.left
		}
		if node == nil {
			return nil, ErrCorruptBitstream
		}
		if node.IsLeaf() {
			out = append(out, node.symbol)
			node = tree.root
		}
	}
	if node != tree.root {
		return nil, TruncatedBitstreamError{Offset: bs.n}
	}
	return out, nil
}

// DecodeString decodes bs against tree into a string.
func DecodeString(bs *Bitstream, tree *Tree) (string, error) {
	syms, err := Decode(bs, tree)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, sym := range syms {
		sb.WriteRune(rune(sym))
	}
	return sb.String(), nil
}

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}
