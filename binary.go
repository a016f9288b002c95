// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

// load32 reads a little-endian uint32 starting at buf[i].
func load32(buf []byte, i int) uint32 {
	buf = buf[i : i+4 : len(buf)] // Help the compiler eliminate bounds checks on the next line.
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
}

// load64 reads a little-endian uint64 starting at buf[i].
func load64(buf []byte, i int) uint64 {
	buf = buf[i : i+8 : len(buf)] // Help the compiler eliminate bounds checks on the next line.
	return uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
		uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56
}
