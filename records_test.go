// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelFormatStringScalar(t *testing.T) {
	ch := Channel{Reprc: FSINGL}
	assert.Equal(t, "f", ch.FormatString())
}

func TestChannelFormatStringMultiElement(t *testing.T) {
	ch := Channel{Reprc: FSINGL, Dimension: []int{8, 10}}
	assert.Equal(t, 80, len(ch.FormatString()))
}

func TestFrameRowSchemaCarriesShape(t *testing.T) {
	tbl := NewTable()
	time := Channel{Name: Obname{ID: "TIME"}, Reprc: FDOUBL}
	pad := Channel{Name: Obname{ID: "PAD-ARRAY"}, Reprc: FSINGL, Dimension: []int{8, 10}}
	require.NoError(t, tbl.Insert(SetChannel, Fingerprint(SetChannel, "TIME", 0, 0), time))
	require.NoError(t, tbl.Insert(SetChannel, Fingerprint(SetChannel, "PAD-ARRAY", 0, 0), pad))

	f := Frame{Channels: []Obname{{ID: "TIME"}, {ID: "PAD-ARRAY"}}}
	schema := f.RowSchema(tbl)
	require.Len(t, schema, 2)
	assert.Equal(t, "TIME", schema[0].Name)
	assert.Nil(t, schema[0].Shape)
	assert.Equal(t, "PAD-ARRAY", schema[1].Name)
	assert.Equal(t, []int{8, 10}, schema[1].Shape)
}

func TestFrameDtypeRespectsDimension(t *testing.T) {
	tbl := NewTable()
	time := Channel{Name: Obname{ID: "TIME"}, Reprc: FDOUBL}
	pad := Channel{Name: Obname{ID: "PAD-ARRAY"}, Reprc: FSINGL, Dimension: []int{8, 10}}
	require.NoError(t, tbl.Insert(SetChannel, Fingerprint(SetChannel, "TIME", 0, 0), time))
	require.NoError(t, tbl.Insert(SetChannel, Fingerprint(SetChannel, "PAD-ARRAY", 0, 0), pad))

	f := Frame{Channels: []Obname{{ID: "TIME"}, {ID: "PAD-ARRAY"}}}
	dtype := f.Dtype(tbl)
	require.Len(t, dtype, 1+80)
	assert.Equal(t, byte('d'), dtype[0])
	for i := 1; i < len(dtype); i++ {
		assert.Equal(t, byte('f'), dtype[i])
	}
}

func TestFrameRowSchemaSkipsDanglingChannel(t *testing.T) {
	tbl := NewTable()
	f := Frame{Channels: []Obname{{ID: "GHOST"}}}
	assert.Empty(t, f.RowSchema(tbl))
	assert.Empty(t, f.Dtype(tbl))
}
