package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func deriveTestCodeBook(t *testing.T, input string) CodeBook {
	t.Helper()
	book, err := DeriveCodeBook(buildTestTree(t, input))
	require.NoError(t, err)
	return book
}

func TestDeriveCodeBookEmpty(t *testing.T) {
	_, err := DeriveCodeBook(nil)
	require.ErrorIs(t, err, ErrEmptyTree)
}

func TestDeriveCodeBookSingleSymbol(t *testing.T) {
	book := deriveTestCodeBook(t, "aaaa")

	require.Len(t, book, 1)
	hc, found := book.Lookup('a')
	require.True(t, found)
	require.Equal(t, MakeCode(1, 0), hc)
}

func TestDeriveCodeBookTwoSymbols(t *testing.T) {
	book := deriveTestCodeBook(t, "aabb")

	require.Equal(t, CodeBook{
		'a': MakeCode(1, 0),
		'b': MakeCode(1, 1),
	}, book)
}

func TestDeriveCodeBookBalanced(t *testing.T) {
	book := deriveTestCodeBook(t, "abcd")

	require.Equal(t, CodeBook{
		'a': MakeCode(2, 0),
		'b': MakeCode(2, 1),
		'c': MakeCode(2, 2),
		'd': MakeCode(2, 3),
	}, book)
}

func TestDeriveCodeBookSkewed(t *testing.T) {
	// a:8 b:4 c:1 d:1.  Higher frequency must never get a longer code.
	book := deriveTestCodeBook(t, "aaaaaaaabbbbcd")

	codeA, _ := book.Lookup('a')
	codeB, _ := book.Lookup('b')
	codeC, _ := book.Lookup('c')
	codeD, _ := book.Lookup('d')
	require.LessOrEqual(t, codeA.Size, codeB.Size)
	require.LessOrEqual(t, codeB.Size, codeC.Size)
	require.Equal(t, codeC.Size, codeD.Size)
}

func TestDeriveCodeBookPrefixFree(t *testing.T) {
	for _, input := range []string{
		"aaaa",
		"aabb",
		"abcd",
		"aaaaaaaabbbbcd",
		"abracadabra",
		"the quick brown fox jumps over the lazy dog",
	} {
		t.Run(input, func(t *testing.T) {
			book := deriveTestCodeBook(t, input)

			for symA, codeA := range book {
				require.GreaterOrEqual(t, codeA.Size, byte(1))
				for symB, codeB := range book {
					if symA == symB {
						continue
					}
					require.False(t, isCodePrefix(codeA, codeB),
						"code %s for %q is a prefix of code %s for %q",
						codeA, rune(symA), codeB, rune(symB))
				}
			}
		})
	}
}

// isCodePrefix reports whether a's bits are the leading bits of b.
func isCodePrefix(a, b Code) bool {
	if a.Size > b.Size {
		return false
	}
	return a.Bits == b.Bits>>(b.Size-a.Size)
}

func TestCodeBookDump(t *testing.T) {
	book := deriveTestCodeBook(t, "aaaaaaaabbbbcd")

	expectDump := strings.Join([]string{
		"CodeBook{\n",
		"\tLookup('a') = \"1\"\n",
		"\tLookup('b') = \"01\"\n",
		"\tLookup('c') = \"000\"\n",
		"\tLookup('d') = \"001\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = book.Dump(&buf)
	require.Equal(t, expectDump, buf.String())
}

func TestCodeString(t *testing.T) {
	require.Equal(t, "\"\"", Code{}.String())
	require.Equal(t, "\"0\"", MakeCode(1, 0).String())
	require.Equal(t, "\"010\"", MakeCode(3, 2).String())
}
