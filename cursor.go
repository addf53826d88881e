// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import (
	"encoding/binary"
	"math"
)

// Cursor is a bounded, big-endian, random-access view over a byte slice.
// It borrows its backing bytes; it never copies or owns them. Every typed
// read advances the cursor's position and fails with ErrTruncated if it
// would read past the bound.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor returns a Cursor bounded to exactly buf's length, starting at
// position 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current read offset within the cursor's buffer.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total length of the cursor's bounded buffer.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Bytes returns the raw backing slice, unaffected by position.
func (c *Cursor) Bytes() []byte { return c.buf }

// Skip advances the cursor by n bytes without reading them.
func (c *Cursor) Skip(n int) error {
	if n < 0 || n > c.Remaining() {
		return ErrTruncated
	}
	c.pos += n
	return nil
}

// ReadAt returns a view of n bytes starting at the cursor's position and
// advances past them. The returned slice aliases the cursor's buffer.
func (c *Cursor) ReadAt(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, ErrTruncated
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Peek returns a view of n bytes starting at the cursor's position without
// advancing it.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, ErrTruncated
	}
	return c.buf[c.pos : c.pos+n], nil
}

// U8 reads an unsigned 8-bit integer.
func (c *Cursor) U8() (uint8, error) {
	b, err := c.ReadAt(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// I8 reads a signed 8-bit integer.
func (c *Cursor) I8() (int8, error) {
	v, err := c.U8()
	return int8(v), err
}

// U16 reads a big-endian unsigned 16-bit integer.
func (c *Cursor) U16() (uint16, error) {
	b, err := c.ReadAt(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// I16 reads a big-endian signed 16-bit integer.
func (c *Cursor) I16() (int16, error) {
	v, err := c.U16()
	return int16(v), err
}

// U32 reads a big-endian unsigned 32-bit integer.
func (c *Cursor) U32() (uint32, error) {
	b, err := c.ReadAt(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// I32 reads a big-endian signed 32-bit integer.
func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

// F32 reads a big-endian IEEE-754 32-bit float (RP66 FSINGL).
func (c *Cursor) F32() (float32, error) {
	v, err := c.U32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// F64 reads a big-endian IEEE-754 64-bit float (RP66 FDOUBL).
func (c *Cursor) F64() (float64, error) {
	b, err := c.ReadAt(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}
