// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildVR wraps one or more already-framed LRS byte sequences into a single
// Visible Record.
func buildVR(segments ...[]byte) []byte {
	var body []byte
	for _, s := range segments {
		body = append(body, s...)
	}
	vr := make([]byte, 4+len(body))
	vr[0] = byte((len(body) + 4) >> 8)
	vr[1] = byte((len(body) + 4))
	vr[2] = 0xFF
	vr[3] = 0x01
	copy(vr[4:], body)
	return vr
}

// buildLRS frames one Logical Record Segment of the given type, with
// attrExtra as its attribute byte (predecessor/successor bits included,
// when the caller sets them).
func buildLRS(typ uint8, attrExtra byte, payload []byte) []byte {
	total := 4 + len(payload)
	seg := make([]byte, total)
	seg[0] = byte(total >> 8)
	seg[1] = byte(total)
	seg[2] = attrExtra
	seg[3] = typ
	copy(seg[4:], payload)
	return seg
}

func TestScannerSingleLR(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	vr := buildVR(buildLRS(LRTypeChannel, attrExplicit, payload))

	s := NewScanner(vr, 0)
	lr, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, LRTypeChannel, lr.Type)
	assert.Equal(t, payload, lr.Payload)
	assert.True(t, lr.Attributes.Explicit)

	_, ok, err = s.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScannerMultiSegmentReassembly(t *testing.T) {
	part1 := []byte{0x01, 0x02, 0x03}
	part2 := []byte{0x04, 0x05}
	seg1 := buildLRS(LRTypeChannel, attrExplicit|attrSuccessor, part1)
	seg2 := buildLRS(LRTypeChannel, attrPredecessor, part2)
	vr := buildVR(seg1, seg2)

	s := NewScanner(vr, 0)
	lr, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, append(append([]byte{}, part1...), part2...), lr.Payload)
}

func TestScannerPadCountEqualsBodyLength(t *testing.T) {
	// A 4-byte payload entirely consumed by padding: pad_count == body
	// length, leaving an empty reassembled payload. Still a legal, complete
	// LR per spec.md §8.
	body := []byte{0xAA, 0xBB, 0xBB, 0x04}
	seg := buildLRS(LRTypeChannel, attrExplicit|attrPadding, body)
	vr := buildVR(seg)

	s := NewScanner(vr, 0)
	lr, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, lr.Payload)
	assert.True(t, lr.Attributes.Explicit)
}

func TestScannerTruncatedMidLRS(t *testing.T) {
	vr := buildVR(buildLRS(LRTypeChannel, attrExplicit, []byte{0x01, 0x02}))
	truncated := vr[:len(vr)-1]

	s := NewScanner(truncated, 0)
	_, _, err := s.Next()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestScannerCleanEOFAtVRBoundary(t *testing.T) {
	vr := buildVR(buildLRS(LRTypeChannel, attrExplicit, []byte{0x01}))
	s := NewScanner(vr, 0)
	_, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = s.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScannerEncryptedRecordMarked(t *testing.T) {
	seg := buildLRS(LRTypeChannel, attrExplicit|attrEncryption, []byte{0x01, 0x02, 0x03})
	vr := buildVR(seg)
	s := NewScanner(vr, 0)
	lr, ok, err := s.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, lr.Encrypted)
}

func TestScannerRejectsMismatchedType(t *testing.T) {
	seg1 := buildLRS(LRTypeChannel, attrExplicit|attrSuccessor, []byte{0x01})
	seg2 := buildLRS(LRTypeFrame, attrPredecessor, []byte{0x02})
	vr := buildVR(seg1, seg2)
	s := NewScanner(vr, 0)
	_, _, err := s.Next()
	assert.ErrorIs(t, err, ErrMalformedLRS)
}
