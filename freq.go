package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable counts how often each distinct symbol occurs in an input
// sequence.  It also remembers the order in which symbols first occurred,
// which BuildTree uses to break frequency ties deterministically.
type FrequencyTable struct {
	counts map[Symbol]uint32
	order  []Symbol
	total  int
}

// BuildFrequencyTable counts the symbols of input in a single pass.  It
// fails with ErrEmptyInput when input holds no symbols.
func BuildFrequencyTable(input []Symbol) (*FrequencyTable, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	ft := &FrequencyTable{
		counts: make(map[Symbol]uint32, len(input)),
		total:  len(input),
	}
	for _, sym := range input {
		if ft.counts[sym] == 0 {
			ft.order = append(ft.order, sym)
		}
		ft.counts[sym]++
	}
	return ft, nil
}

// BuildFrequencyTableString counts the runes of s.
func BuildFrequencyTableString(s string) (*FrequencyTable, error) {
	return BuildFrequencyTable(SymbolsOf(s))
}

// Count returns the number of occurrences recorded for sym, or 0 if sym
// never occurred.
func (ft *FrequencyTable) Count(sym Symbol) uint32 {
	return ft.counts[sym]
}

// Total is the length of the counted input.
func (ft *FrequencyTable) Total() int {
	return ft.total
}

// Len is the number of distinct symbols.
func (ft *FrequencyTable) Len() int {
	return len(ft.counts)
}

// Symbols returns a copy of the distinct symbols in first-occurrence order.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.order))
	copy(out, ft.order)
	return out
}

// Dump writes a programmer-readable debugging dump of the table's current
// state to the given writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, sym := range ft.order {
		fmt.Fprintf(&buf, "\tCount(%q) = %d\n", rune(sym), ft.counts[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
