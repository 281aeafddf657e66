package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildFrequencyTable(t *testing.T) {
	ft, err := BuildFrequencyTableString("aaaaaaaabbbbcd")
	require.NoError(t, err)

	require.Equal(t, 14, ft.Total())
	require.Equal(t, 4, ft.Len())
	require.Equal(t, uint32(8), ft.Count('a'))
	require.Equal(t, uint32(4), ft.Count('b'))
	require.Equal(t, uint32(1), ft.Count('c'))
	require.Equal(t, uint32(1), ft.Count('d'))
	require.Equal(t, uint32(0), ft.Count('z'))
	require.Equal(t, []Symbol{'a', 'b', 'c', 'd'}, ft.Symbols())
}

func TestBuildFrequencyTableEmpty(t *testing.T) {
	_, err := BuildFrequencyTable(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = BuildFrequencyTableString("")
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestBuildFrequencyTableFirstOccurrenceOrder(t *testing.T) {
	ft, err := BuildFrequencyTableString("cabcab")
	require.NoError(t, err)
	require.Equal(t, []Symbol{'c', 'a', 'b'}, ft.Symbols())
}

func TestFrequencyTableDump(t *testing.T) {
	ft, err := BuildFrequencyTableString("aab")
	require.NoError(t, err)

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tTotal() = 3\n",
		"\tCount('a') = 2\n",
		"\tCount('b') = 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ft.Dump(&buf)
	require.Equal(t, expectDump, buf.String())
}
