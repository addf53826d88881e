// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sulBytes() []byte {
	label := "   1" + "V1.00" + "RECORD" + " 8192" + "Default Storage Set" + strings.Repeat(" ", 41)
	return []byte(label)
}

func buildTestFile(leadingGarbage, midGarbage int) []byte {
	var b []byte
	b = append(b, make([]byte, leadingGarbage)...)
	b = append(b, sulBytes()...)
	b = append(b, make([]byte, midGarbage)...)
	vr := buildVR(buildLRS(LRTypeChannel, attrExplicit, buildChannelSet()))
	b = append(b, vr...)
	return b
}

func TestOpenBytesLocatesSUL(t *testing.T) {
	f, err := OpenBytes(buildTestFile(0, 0))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, int64(0), f.SULOffset())
	assert.Equal(t, "record", f.StorageLabel().Layout)
}

func TestOpenBytesSkipsLeadingGarbage(t *testing.T) {
	f, err := OpenBytes(buildTestFile(12, 0))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, int64(12), f.SULOffset())
}

func TestOpenBytesSkipsGarbageBeforeFirstVR(t *testing.T) {
	f, err := OpenBytes(buildTestFile(12, 7))
	require.NoError(t, err)
	defer f.Close()

	channels, err := f.Channels()
	require.NoError(t, err)
	require.Len(t, channels, 2)
}

func TestFileChannelsAndObjects(t *testing.T) {
	f, err := OpenBytes(buildTestFile(0, 0), WithEagerIndex(true))
	require.NoError(t, err)
	defer f.Close()

	channels, err := f.Channels()
	require.NoError(t, err)
	require.Len(t, channels, 2)
	// Kind-filtered iterators are fingerprint-sorted: PRESSURE before TIME.
	assert.Equal(t, "PRESSURE", channels[0].Name.ID)
	assert.Equal(t, "TIME", channels[1].Name.ID)

	tbl, err := f.Objects()
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
}

func TestFileReindexAndExtract(t *testing.T) {
	data := buildTestFile(0, 0)
	f, err := OpenBytes(data)
	require.NoError(t, err)
	defer f.Close()

	vrOffset := f.firstVR
	require.NoError(t, f.Reindex([]int64{vrOffset}, []int64{int64(len(data)) - vrOffset}))

	payloads, err := f.Extract([]int{0})
	require.NoError(t, err)
	require.Len(t, payloads, 1)
	assert.Equal(t, buildChannelSet(), payloads[0])
}

func TestFileUnsupportedVersionFails(t *testing.T) {
	label := "   1" + "V2.00" + "RECORD" + " 8192" + "Default Storage Set" + strings.Repeat(" ", 41)
	data := append([]byte(label), buildVR(buildLRS(LRTypeChannel, attrExplicit, buildChannelSet()))...)
	_, err := OpenBytes(data)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestFileObjectsAfterCloseFails(t *testing.T) {
	f, err := OpenBytes(buildTestFile(0, 0))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = f.Objects()
	assert.ErrorIs(t, err, ErrClosed)
}
