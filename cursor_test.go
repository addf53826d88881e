// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorTypedReads(t *testing.T) {
	buf := []byte{0x00, 0x01, 0xFF, 0xFF, 0xFF, 0xFE, 0x3F, 0x80, 0x00, 0x00}
	c := NewCursor(buf)

	u8, err := c.U8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x00), u8)

	u8, err = c.U8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), u8)

	i16, err := c.I16()
	require.NoError(t, err)
	assert.Equal(t, int16(-1), i16)

	i16, err = c.I16()
	require.NoError(t, err)
	assert.Equal(t, int16(-2), i16)

	f32, err := c.F32()
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), f32)

	assert.Equal(t, 0, c.Remaining())
}

func TestCursorOverread(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})
	_, err := c.ReadAt(3)
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = c.U32()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestCursorSkipAndPeek(t *testing.T) {
	c := NewCursor([]byte{0xAA, 0xBB, 0xCC, 0xDD})
	require.NoError(t, c.Skip(2))
	peeked, err := c.Peek(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xCC, 0xDD}, peeked)
	assert.Equal(t, 2, c.Pos())
}
