// Package huffman builds prefix-free binary codes over arbitrary symbol
// alphabets by greedy minimum-frequency merging, then encodes symbol
// sequences into packed bitstreams and decodes them back losslessly.
//
// Tree construction is fully deterministic: ties between equal frequencies
// are broken by insertion order, so the same input always produces the same
// tree shape and the same code book.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
