// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import "encoding/binary"

// putUvarint writes x into buf as an unsigned LEB128-style varint and
// returns the number of bytes written. buf must be at least
// binary.MaxVarintLen64 bytes long.
func putUvarint(buf []byte, x uint64) int {
	return binary.PutUvarint(buf, x)
}

// uvarint reads a single varint from the front of buf.
//
// consumed > 0 is the number of bytes read on success; consumed == 0
// means buf ended before a terminating byte was seen; consumed < 0
// means the varint overflowed a uint64, with -consumed the number of
// bytes read up to and including the offending byte.
func uvarint(buf []byte) (value uint64, consumed int) {
	return binary.Uvarint(buf)
}
