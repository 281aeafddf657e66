package huffman

// Symbol represents a symbol in an arbitrary alphabet.  The reference
// alphabet is text, so Symbol is rune-backed, but symbols are only ever
// compared for equality.  Negative symbols are not valid.
type Symbol rune

// InvalidSymbol is held by internal tree nodes and returned by some
// functions to clearly indicate that no symbol is being returned.
const InvalidSymbol = Symbol(-1)

// SymbolsOf converts a string into the symbol sequence of its runes.
func SymbolsOf(s string) []Symbol {
	runes := []rune(s)
	syms := make([]Symbol, len(runes))
	for i, r := range runes {
		syms[i] = Symbol(r)
	}
	return syms
}
