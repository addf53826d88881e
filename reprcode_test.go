// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUvariWidths(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"1-byte", []byte{0x01}, 1},
		{"1-byte max", []byte{0x7F}, 127},
		{"2-byte", []byte{0x81, 0x2C}, 300},
		{"4-byte", []byte{0xC0, 0x00, 0x08, 0x14}, 2068},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			v, err := decodeUvari(NewCursor(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestDecodeUvariMaxFits30Bits(t *testing.T) {
	// The two marker bits are masked off, so the widest 4-byte UVARI
	// decodes to 2^30-1.
	v, err := decodeUvari(NewCursor([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	require.NoError(t, err)
	assert.Equal(t, uint32(1<<30-1), v)
}

func TestDecodeIdent(t *testing.T) {
	buf := []byte{0x07, 'C', 'H', 'A', 'N', 'N', 'E', 'L'}
	v, err := Decode(IDENT, NewCursor(buf))
	require.NoError(t, err)
	assert.Equal(t, "CHANNEL", v.V)
}

func TestDecodeObname(t *testing.T) {
	// (origin=0, copynumber=0, id="TIME")
	buf := []byte{0x00, 0x00, 0x04, 'T', 'I', 'M', 'E'}
	v, err := Decode(OBNAME, NewCursor(buf))
	require.NoError(t, err)
	ob, ok := v.V.(Obname)
	require.True(t, ok)
	assert.Equal(t, Obname{Origin: 0, Copynumber: 0, ID: "TIME"}, ob)
}

func TestDecodeDtime(t *testing.T) {
	// 2011-08-20 22:48:50.000, month in low nibble, tz GMT (2) in high nibble
	b := []byte{111, 0x28, 20, 22, 48, 50, 0x00, 0x00}
	v, err := Decode(DTIME, NewCursor(b))
	require.NoError(t, err)
	dt := v.V.(DateTime)
	assert.Equal(t, 2011, dt.Year)
	assert.Equal(t, 8, dt.Month)
	assert.Equal(t, 2, dt.Timezone)
	assert.Equal(t, 20, dt.Day)
	assert.Equal(t, 22, dt.Hour)
	assert.Equal(t, 48, dt.Minute)
	assert.Equal(t, 50, dt.Second)
}

func TestDecodeSlongAndFsingl(t *testing.T) {
	v, err := Decode(SLONG, NewCursor([]byte{0x00, 0x00, 0x00, 0x2A}))
	require.NoError(t, err)
	assert.Equal(t, int32(42), v.V)

	v, err = Decode(FSINGL, NewCursor([]byte{0x3F, 0x80, 0x00, 0x00}))
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), v.V)
}

func TestDecodeUnknownReprc(t *testing.T) {
	_, err := Decode(RepresentationCode(99), NewCursor([]byte{0x00}))
	assert.ErrorIs(t, err, ErrUnknownReprc)
}

func TestDecodeLossyUTF8(t *testing.T) {
	buf := []byte{0x03, 0xC3, 0x28, 0x41} // invalid 2-byte seq then 'A'
	v, err := Decode(IDENT, NewCursor(buf))
	require.NoError(t, err)
	s := v.V.(string)
	assert.NotPanics(t, func() { _ = len(s) })
}
