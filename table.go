// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Fingerprint is the canonical lookup key for an RP66 object: its set
// type, id, origin and copynumber, concatenated unambiguously. It is
// exported at package level (not only as a Table method) because callers
// may want to build a key before ever touching a loaded file, per
// SPEC_FULL.md §5.
func Fingerprint(setType, id string, origin int32, copynumber uint8) []byte {
	b := make([]byte, 0, len(setType)+1+len(id)+1+4+1)
	b = append(b, []byte(setType)...)
	b = append(b, 0)
	b = append(b, []byte(id)...)
	b = append(b, 0)
	var originBuf [4]byte
	binary.BigEndian.PutUint32(originBuf[:], uint32(origin))
	b = append(b, originBuf[:]...)
	b = append(b, copynumber)
	return b
}

// Table is the object table (C7): a fingerprint-keyed index over every
// object decoded from a file's EFLRs, built incrementally as Sets are
// parsed and resolved lazily by cross-referencing code (Frame.RowSchema,
// Frame.Dtype).
type Table struct {
	mu      sync.RWMutex
	objects map[string]interface{}
	byKind  map[string][]string
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		objects: make(map[string]interface{}),
		byKind:  make(map[string][]string),
	}
}

// Insert adds obj under fingerprint fp, tagged with its set type for
// IterKind. Re-inserting the exact same object at an existing fingerprint
// is tolerated silently (some producers legitimately repeat a Set across
// Visible Records); inserting a different object at an existing
// fingerprint is ErrDuplicateFingerprint.
func (t *Table) Insert(setType string, fp []byte, obj interface{}) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := string(fp)
	if existing, ok := t.objects[key]; ok {
		if reflect.DeepEqual(existing, obj) {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrDuplicateFingerprint, key)
	}
	t.objects[key] = obj
	t.byKind[setType] = append(t.byKind[setType], key)
	return nil
}

// Get returns the object at fingerprint fp and whether it has been
// indexed. Resolution is always lazy: Insert never validates
// cross-references; lookups happen only through Get and Resolve.
func (t *Table) Get(fp []byte) (interface{}, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	obj, ok := t.objects[string(fp)]
	return obj, ok
}

// Resolve is Get with the ErrDanglingReference contract spec.md §4.7
// names explicitly, for callers that want an error rather than a bool.
func (t *Table) Resolve(fp []byte) (interface{}, error) {
	obj, ok := t.Get(fp)
	if !ok {
		return nil, fmt.Errorf("%w: %x", ErrDanglingReference, fp)
	}
	return obj, nil
}

// IterKind returns every object of the given set type, in stable
// fingerprint-sorted order.
func (t *Table) IterKind(setType string) []interface{} {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys := append([]string(nil), t.byKind[setType]...)
	sort.Strings(keys)
	out := make([]interface{}, 0, len(keys))
	for _, k := range keys {
		out = append(out, t.objects[k])
	}
	return out
}

// Len returns the total number of indexed objects across all set types.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.objects)
}

// kindsSnapshot returns every set type currently indexed, for callers
// (like File.Unknowns) that need to walk kinds outside a fixed roster.
func (t *Table) kindsSnapshot() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.byKind))
	for k := range t.byKind {
		out = append(out, k)
	}
	return out
}
