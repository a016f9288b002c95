// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutUvarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 0xffffffff, 1 << 40}
	buf := make([]byte, 10)
	for _, x := range cases {
		n := putUvarint(buf, x)
		got, consumed := uvarint(buf[:n])
		assert.Equal(t, x, got)
		assert.Equal(t, n, consumed)
	}
}

func TestUvarintExhaustedBuffer(t *testing.T) {
	// A single continuation byte with nothing following: the reader
	// must report "buffer exhausted" (consumed == 0), not mistake it
	// for a valid zero.
	_, consumed := uvarint([]byte{0x80})
	assert.Equal(t, 0, consumed)
}

func TestUvarintOverflow(t *testing.T) {
	// 10 continuation bytes and then a terminator, 11 bytes in all:
	// more than the 10-byte limit for a 64-bit varint, so the reader
	// must report overflow, not success.
	buf := make([]byte, 11)
	for i := range buf {
		buf[i] = 0x80
	}
	buf[10] = 0x01
	_, consumed := uvarint(buf)
	assert.Less(t, consumed, 0)
}

func TestPutUvarintSingleByteForZero(t *testing.T) {
	buf := make([]byte, 10)
	n := putUvarint(buf, 0)
	assert.Equal(t, 1, n)
	assert.Equal(t, byte(0x00), buf[0])
}
