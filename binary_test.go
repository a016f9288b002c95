// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad32(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	assert.Equal(t, uint32(0x04030201), load32(buf, 0))
	assert.Equal(t, uint32(0x05040302), load32(buf, 1))
}

func TestLoad64(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}
	assert.Equal(t, uint64(0x0807060504030201), load64(buf, 0))
	assert.Equal(t, uint64(0x0908070605040302), load64(buf, 1))
}
