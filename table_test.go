// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintUniqueness(t *testing.T) {
	a := Fingerprint("CHANNEL", "TIME", 2, 0)
	b := Fingerprint("CHANNEL", "TIME", 2, 1)
	c := Fingerprint("CHANNEL", "TDEP", 2, 0)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, Fingerprint("CHANNEL", "TIME", 2, 0))
}

func TestTableInsertGet(t *testing.T) {
	tbl := NewTable()
	fp := Fingerprint(SetChannel, "TIME", 0, 0)
	ch := Channel{Name: Obname{ID: "TIME"}, Units: "s"}

	require.NoError(t, tbl.Insert(SetChannel, fp, ch))
	got, ok := tbl.Get(fp)
	require.True(t, ok)
	assert.Equal(t, ch, got)
}

func TestTableDuplicateInsertTolerated(t *testing.T) {
	tbl := NewTable()
	fp := Fingerprint(SetChannel, "TIME", 0, 0)
	ch := Channel{Name: Obname{ID: "TIME"}}

	require.NoError(t, tbl.Insert(SetChannel, fp, ch))
	require.NoError(t, tbl.Insert(SetChannel, fp, ch))
}

func TestTableDuplicateInsertConflict(t *testing.T) {
	tbl := NewTable()
	fp := Fingerprint(SetChannel, "TIME", 0, 0)
	require.NoError(t, tbl.Insert(SetChannel, fp, Channel{Units: "s"}))
	err := tbl.Insert(SetChannel, fp, Channel{Units: "ms"})
	assert.ErrorIs(t, err, ErrDuplicateFingerprint)
}

func TestTableDanglingReference(t *testing.T) {
	tbl := NewTable()
	_, err := tbl.Resolve(Fingerprint(SetChannel, "NOPE", 0, 0))
	assert.ErrorIs(t, err, ErrDanglingReference)
}

func TestTableIterKindSorted(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Insert(SetChannel, Fingerprint(SetChannel, "B", 0, 0), Channel{Name: Obname{ID: "B"}}))
	require.NoError(t, tbl.Insert(SetChannel, Fingerprint(SetChannel, "A", 0, 0), Channel{Name: Obname{ID: "A"}}))

	all := tbl.IterKind(SetChannel)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].(Channel).Name.ID)
	assert.Equal(t, "B", all[1].(Channel).Name.ID)
}
