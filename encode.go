// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snappy implements the Snappy block compression format: a
// fast, byte-oriented LZ77-style codec with a fixed wire format.
//
// Encode compresses a byte slice into a self-delimiting block; Decode
// reverses it exactly. Both operate on caller-owned buffers and carry
// no state across calls. Streaming/frame formats, a CLI, and a tunable
// compression level are out of scope for this package.
package snappy

// maxBlockSize is the largest segment encodeBlock works on in one call.
// Segments are hashed into a table of 16-bit offsets, so a segment must
// fit in 16 bits.
const maxBlockSize = 65536

// inputMargin is the number of trailing bytes encodeBlock leaves
// unsearched so that its main loop's load64 calls never run past the
// end of src.
const inputMargin = 16 - 1

// minNonLiteralBlockSize is the smallest segment encodeBlock will
// attempt a copy-aware encode on. Below this, a segment is emitted as
// one literal: the output must start with a literal (nothing to copy
// from yet), and a trailing copy needs at least inputMargin bytes of
// room behind it, so the floor is 1 (leading literal byte) + 1
// (smallest possible copy) + inputMargin.
const minNonLiteralBlockSize = 1 + 1 + inputMargin

// MaxEncodedLen returns an upper bound on the size of the block
// EncodeInto produces for a source of length n, or 0 if n is too large
// to encode (n, or the bound itself, would not fit in 32 bits).
func MaxEncodedLen(n int) int {
	m := uint64(n)
	if m > 0xffffffff {
		return 0
	}
	// A block is a header of at most 5 bytes followed by literal runs
	// and copies. A literal run of L bytes costs L + 1 bytes for
	// L <= 60, L + 2 for L <= 256 and L + 3 beyond that; a copy costs
	// 2 or 3 bytes for at least 4 bytes of input. 32 + n + n/6 bounds
	// both.
	m = 32 + m + m/6
	if m > 0xffffffff {
		return 0
	}
	return int(m)
}

// EncodeInto writes a complete Snappy block for src into dst and
// returns the number of bytes written.
//
// EncodeInto panics if len(dst) < MaxEncodedLen(len(src)): the caller
// is expected to size dst with MaxEncodedLen first. This mirrors the
// encoder's stated contract that a too-small dst or an oversized src
// is a programmer error, not a runtime failure.
func EncodeInto(dst, src []byte) int {
	n := MaxEncodedLen(len(src))
	if n == 0 {
		panic(ErrTooLarge)
	}
	if len(dst) < n {
		panic(ErrDstTooSmall)
	}

	d := putUvarint(dst, uint64(len(src)))

	for len(src) > 0 {
		p := src
		src = nil
		if len(p) > maxBlockSize {
			p, src = p[:maxBlockSize], p[maxBlockSize:]
		}
		if len(p) < minNonLiteralBlockSize {
			d += emitLiteral(dst[d:], p)
		} else {
			d += encodeBlock(dst[d:], p)
		}
	}
	return d
}

// Encode compresses src and returns the compressed block. If dst is
// large enough to hold MaxEncodedLen(len(src)) bytes it is used and
// the returned slice aliases it; otherwise a new slice is allocated.
// It is valid to pass a nil dst.
func Encode(dst, src []byte) []byte {
	n := MaxEncodedLen(len(src))
	if n == 0 {
		panic(ErrTooLarge)
	}
	if len(dst) < n {
		dst = make([]byte, n)
	}
	return dst[:EncodeInto(dst, src)]
}

func hash(u, shift uint32) uint32 {
	return (u * 0x1e35a7bd) >> shift
}

// encodeBlock encodes a non-empty src, whose varint length header has
// already been written, into a guaranteed large-enough dst. It assumes
// minNonLiteralBlockSize <= len(src) <= maxBlockSize.
func encodeBlock(dst, src []byte) (d int) {
	// The hash table holds 16-bit offsets into src, so len(src) <=
	// maxBlockSize == 1<<16 is required for entries to stay in range.
	const (
		maxTableSize = 1 << 14
		tableMask    = maxTableSize - 1 // redundant, but helps bounds-check elimination
	)
	shift, tableSize := uint32(32-8), 1<<8
	for tableSize < maxTableSize && tableSize < len(src) {
		shift--
		tableSize *= 2
	}
	var table [maxTableSize]uint16

	// sLimit is where the main loop stops looking for matches, leaving
	// inputMargin bytes of slack behind it.
	sLimit := len(src) - inputMargin

	// nextEmit marks where the next literal run, if any, begins.
	nextEmit := 0

	// The block must start with a literal (there is nothing yet to
	// copy from), so matching starts at s == 1.
	s := 1
	nextHash := hash(load32(src, s), shift)

	for {
		// Heuristic match skipping: after skip/32 bytes scanned with
		// no match, widen the stride so incompressible input doesn't
		// pay for an exhaustive scan. Reset to single-byte stride the
		// moment a match is found.
		skip := 32

		nextS := s
		candidate := 0
		for {
			s = nextS
			bytesBetweenHashLookups := skip >> 5
			nextS = s + bytesBetweenHashLookups
			skip += bytesBetweenHashLookups
			if nextS > sLimit {
				goto emitRemainder
			}
			candidate = int(table[nextHash&tableMask])
			table[nextHash&tableMask] = uint16(s)
			nextHash = hash(load32(src, nextS), shift)
			if load32(src, s) == load32(src, candidate) {
				break
			}
		}

		// src[nextEmit:s] is unmatched; flush it as a literal before
		// the copy that starts at s.
		d += emitLiteral(dst[d:], src[nextEmit:s])

		// Extend the match as far as it goes, emit the copy, and keep
		// chaining further copies for as long as the bytes right after
		// the one just emitted also hash-match.
		for {
			base := s
			s += 4
			for i := candidate + 4; s < len(src) && src[i] == src[s]; i, s = i+1, s+1 {
			}
			d += emitCopy(dst[d:], base-candidate, s-base)
			nextEmit = s
			if s >= sLimit {
				goto emitRemainder
			}

			// Update the table at s-1 and s from one 64-bit load
			// before deciding whether another copy chains directly on,
			// or the outer search resumes at s+1.
			x := load64(src, s-1)
			prevHash := hash(uint32(x>>0), shift)
			table[prevHash&tableMask] = uint16(s - 1)
			currHash := hash(uint32(x>>8), shift)
			candidate = int(table[currHash&tableMask])
			table[currHash&tableMask] = uint16(s)
			if uint32(x>>8) != load32(src, candidate) {
				nextHash = hash(uint32(x>>16), shift)
				s++
				break
			}
		}
	}

emitRemainder:
	if nextEmit < len(src) {
		d += emitLiteral(dst[d:], src[nextEmit:])
	}
	return d
}

// emitLiteral writes a literal chunk to dst and returns the number of
// bytes written. It assumes dst is long enough and 1 <= len(lit) <=
// 65536; this encoder never emits the 4- and 5-byte literal headers
// (tags 62 and 63), which are reserved for literals too large for it
// to ever produce.
func emitLiteral(dst, lit []byte) int {
	i, n := 0, uint(len(lit)-1)
	switch {
	case n < 60:
		dst[0] = uint8(n)<<2 | tagLiteral
		i = 1
	case n < 1<<8:
		dst[0] = 60<<2 | tagLiteral
		dst[1] = uint8(n)
		i = 2
	default:
		dst[0] = 61<<2 | tagLiteral
		dst[1] = uint8(n)
		dst[2] = uint8(n >> 8)
		i = 3
	}
	return i + copy(dst[i:], lit)
}

// emitCopy writes a copy chunk to dst and returns the number of bytes
// written. It assumes dst is long enough, 1 <= offset <= 65535, and
// 4 <= length <= 65535.
func emitCopy(dst []byte, offset, length int) int {
	i := 0
	// A single tagCopy1/tagCopy2 op tops out at length 64. The loop
	// threshold is 68 = 64 + 4, and the length emitted below the
	// threshold is 60 = 64 - 4, because a length-67 copy is cheaper to
	// encode as a length-60 tagCopy2 (3 bytes) followed by a length-7
	// tagCopy1 (2 bytes) than as length-64 + length-3 tagCopy2s (3 + 3
	// bytes). The 4 in 64+-4 is tagCopy1's minimum length.
	for length >= 68 {
		dst[i+0] = 63<<2 | tagCopy2
		dst[i+1] = uint8(offset)
		dst[i+2] = uint8(offset >> 8)
		i += 3
		length -= 64
	}
	if length > 64 {
		dst[i+0] = 59<<2 | tagCopy2
		dst[i+1] = uint8(offset)
		dst[i+2] = uint8(offset >> 8)
		i += 3
		length -= 60
	}
	if length >= 12 || offset >= 2048 {
		dst[i+0] = uint8(length-1)<<2 | tagCopy2
		dst[i+1] = uint8(offset)
		dst[i+2] = uint8(offset >> 8)
		return i + 3
	}
	dst[i+0] = uint8(offset>>8)<<5 | uint8(length-4)<<2 | tagCopy1
	dst[i+1] = uint8(offset)
	return i + 2
}
