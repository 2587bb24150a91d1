// Package vlz implements a self-contained LZ77-family byte compressor and a
// resumable streaming decoder.
//
// The wire format is not related to DEFLATE, LZO, Snappy, or any other
// existing LZ77 variant; it exists to be simple to decode incrementally from
// a byte stream where message boundaries are not otherwise marked. See the
// package-level functions Compress and NewDecompressor.
package vlz
