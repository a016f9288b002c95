// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import "errors"

// The decode error taxonomy is closed: Decode and DecodeLen never
// return an error other than one of these four.
var (
	// ErrCorrupt reports that a block's header or body is malformed:
	// a bad varint, a truncated body, an out-of-range copy offset, or
	// a length mismatch at the end of the body.
	ErrCorrupt = errors.New("snappy: corrupt input")

	// ErrDstTooSmall reports that dst is shorter than the block's
	// declared uncompressed length.
	ErrDstTooSmall = errors.New("snappy: dst len is too small")

	// ErrDecodeTooLarge reports that a block's declared uncompressed
	// length exceeds what this host's address space can represent.
	ErrDecodeTooLarge = errors.New("snappy: decoded block is too large")

	// ErrUnsupportedLiteralLength reports a literal whose parsed
	// length overflows int, only reachable via the 4-byte literal length
	// extension on adversarial input, and only where int is 32 bits.
	ErrUnsupportedLiteralLength = errors.New("snappy: unsupported literal length")
)

// ErrTooLarge reports that a source buffer is too long to encode: its
// MaxEncodedLen would overflow a 32-bit length. EncodeInto panics with
// this error rather than returning it, per the encoder's contract that
// size-precondition violations are programmer errors, not runtime
// failures.
var ErrTooLarge = errors.New("snappy: source buffer is too large")
