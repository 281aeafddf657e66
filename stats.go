package huffman

import (
	"fmt"
)

// bitsPerRawSymbol is the baseline cost of one unencoded symbol: eight bits
// per character.
const bitsPerRawSymbol = 8

// Stats compares the size of an encoded bitstream against the raw size of
// the input it was produced from.
type Stats struct {
	OriginalBits   int
	CompressedBits int
}

// Measure reports the sizes for an input of inputLen symbols encoded as bs.
func Measure(inputLen int, bs *Bitstream) Stats {
	return Stats{
		OriginalBits:   inputLen * bitsPerRawSymbol,
		CompressedBits: bs.Len(),
	}
}

// SavedBits is the number of bits saved by the encoding.  It is negative
// when the encoding grew the input.
func (s Stats) SavedBits() int {
	return s.OriginalBits - s.CompressedBits
}

// Ratio is the percentage of the original size saved by the encoding, or 0
// for an empty original.
func (s Stats) Ratio() float64 {
	if s.OriginalBits == 0 {
		return 0
	}
	return float64(s.SavedBits()) / float64(s.OriginalBits) * 100
}

// String returns a one-line report suitable for display.
func (s Stats) String() string {
	return fmt.Sprintf("%d bits -> %d bits (%.2f%% saved)", s.OriginalBits, s.CompressedBits, s.Ratio())
}

var _ fmt.Stringer = Stats{}
