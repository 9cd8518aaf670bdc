// Package scan provides vectorized byte searching for the CSV engine.
//
// The engine's hot loop is "find the next interesting byte from position P",
// where the interesting set is the separator, the newline bytes, or the
// quote character. Single-byte searches delegate to bytes.IndexByte, which
// the Go runtime implements with platform SIMD instructions. Multi-byte
// searches use SWAR (SIMD Within A Register): eight input bytes are loaded
// into a uint64 and all candidate bytes are matched in parallel with the
// zero-byte detection trick, so the scan advances a word at a time instead
// of a byte at a time.
//
// All functions are stateless and safe for concurrent use over a shared
// buffer.
package scan

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

const (
	loMask = 0x0101010101010101
	hiMask = 0x8080808080808080
)

// IndexByteFrom returns the smallest offset >= from at which c occurs in
// buf, or -1 if c does not occur at or after from.
func IndexByteFrom(buf []byte, from int, c byte) int {
	if from >= len(buf) {
		return -1
	}
	i := bytes.IndexByte(buf[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}

// matchMask returns a mask with 0x80 set in every byte of w equal to b.
// This is the classic zero-byte detection trick: XOR turns matching bytes
// into zeros, and (x - 0x01) & ^x & 0x80 has the high bit set exactly for
// the bytes that were zero.
func matchMask(w uint64, b byte) uint64 {
	x := w ^ (uint64(b) * loMask)
	return (x - loMask) & ^x & hiMask
}

// IndexAny3From returns the smallest offset >= from at which any of a, b,
// or c occurs in buf, or -1 if none occurs at or after from.
func IndexAny3From(buf []byte, from int, a, b, c byte) int {
	i := from
	for ; i+8 <= len(buf); i += 8 {
		w := binary.LittleEndian.Uint64(buf[i:])
		m := matchMask(w, a) | matchMask(w, b) | matchMask(w, c)
		if m != 0 {
			// Little-endian load: byte k of the word sits in bits
			// 8k..8k+7, so the lowest set bit names the first match.
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < len(buf); i++ {
		if buf[i] == a || buf[i] == b || buf[i] == c {
			return i
		}
	}
	return -1
}
