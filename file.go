// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// indexEntry records one reassembled Logical Record's physical span, so
// Extract can pull its raw payload back out without a second full scan.
type indexEntry struct {
	offset int64
	length int64
	lr     LogicalRecord
}

// File is an open DLIS file: a Storage Unit Label, the Visible
// Record/Logical Record Segment stream that follows it, and the object
// table assembled from every EFLR encountered along the way.
type File struct {
	data      []byte
	mm        mmap.MMap
	f         *os.File
	opts      *Options
	sul       SUL
	sulOffset int64
	firstVR   int64

	table   *Table
	indexed bool
	records []indexEntry
	closed  bool
}

// Open maps path and locates its Storage Unit Label, tolerating leading
// garbage per spec.md §4.3 step 1. The object table is built lazily: the
// first call to Objects or a kind-filtered iterator triggers a full scan,
// unless WithEagerIndex(true) is passed.
func Open(path string, opts ...Option) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	file, err := newFile([]byte(data), opts...)
	if err != nil {
		data.Unmap()
		f.Close()
		return nil, err
	}
	file.mm = data
	file.f = f
	if file.opts.EagerIndex {
		if err := file.buildIndex(); err != nil {
			file.Close()
			return nil, err
		}
	}
	return file, nil
}

// Load maps path and eagerly builds the full object table before
// returning, equivalent to Open with WithEagerIndex(true).
func Load(path string, opts ...Option) (*File, error) {
	return Open(path, append(append([]Option{}, opts...), WithEagerIndex(true))...)
}

// OpenBytes wraps an in-memory buffer as a File, without mapping any file
// on disk. Close then only marks the handle closed.
func OpenBytes(data []byte, opts ...Option) (*File, error) {
	file, err := newFile(data, opts...)
	if err != nil {
		return nil, err
	}
	if file.opts.EagerIndex {
		if err := file.buildIndex(); err != nil {
			return nil, err
		}
	}
	return file, nil
}

func newFile(data []byte, opts ...Option) (*File, error) {
	o := defaultOptions()
	for _, apply := range opts {
		apply(o)
	}

	file := &File{data: data, opts: o, table: NewTable()}

	sulOffset, err := locateSUL(data)
	if err != nil {
		return nil, err
	}
	file.sulOffset = sulOffset

	sul, err := ParseSUL(data[sulOffset:], o.warn)
	if err != nil {
		return nil, err
	}
	file.sul = sul

	firstVR, err := locateVR(data[sulOffset+sulSize:])
	if err != nil {
		return nil, err
	}
	file.firstVR = sulOffset + sulSize + firstVR

	return file, nil
}

// locateSUL scans for the storage-label sync pattern, tolerating leading
// garbage (spec.md §4.3 step 1 / SPEC_FULL.md §5's pre-SUL-garbage case).
func locateSUL(data []byte) (int64, error) {
	if looksLikeSUL(data) {
		return 0, nil
	}
	limit := len(data) - sulSize
	for i := 1; i <= limit; i++ {
		if looksLikeSUL(data[i:]) {
			return int64(i), nil
		}
	}
	return 0, fmt.Errorf("%w: no storage unit label found", ErrMalformedVR)
}

// locateVR scans for the first valid Visible Record header starting at
// data[0], tolerating garbage between the Storage Unit Label and the
// first Visible Record (SPEC_FULL.md §5's pre-VR-garbage case).
func locateVR(data []byte) (int64, error) {
	s := &Scanner{data: data}
	for i := 0; i+4 <= len(data); i++ {
		if _, err := s.peekVRHeader(int64(i)); err == nil {
			return int64(i), nil
		}
	}
	return 0, fmt.Errorf("%w: no visible record found after storage unit label", ErrMalformedVR)
}

// StorageLabel returns the file's parsed Storage Unit Label.
func (file *File) StorageLabel() SUL { return file.sul }

// SULOffset returns the byte offset at which the Storage Unit Label was
// found, nonzero when leading garbage was skipped.
func (file *File) SULOffset() int64 { return file.sulOffset }

// Close releases the file's memory mapping, if any. Subsequent calls to
// Objects or a kind-filtered iterator return ErrClosed.
func (file *File) Close() error {
	file.closed = true
	if file.mm != nil {
		_ = file.mm.Unmap()
	}
	if file.f != nil {
		return file.f.Close()
	}
	return nil
}

// buildIndex walks every Logical Record once, recording its span and, for
// EFLR types, parsing and inserting its objects into the table.
func (file *File) buildIndex() error {
	if file.closed {
		return ErrClosed
	}
	if file.indexed {
		return nil
	}
	s := NewScanner(file.data, file.firstVR)
	count := 0
	for {
		lr, ok, err := s.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		file.records = append(file.records, indexEntry{offset: lr.Offset, length: lr.Length, lr: lr})

		if IsEFLRType(lr.Type) && !lr.Encrypted {
			set, err := ParseEFLR(lr)
			if err != nil {
				file.opts.warn(err, fmt.Sprintf("skipping malformed EFLR at offset %d", lr.Offset))
				continue
			}
			file.insertSet(set)
		}

		count++
		if file.opts.MaxObjects > 0 && count >= file.opts.MaxObjects {
			break
		}
	}
	file.indexed = true
	return nil
}

func (file *File) insertSet(set Set) {
	for _, obj := range BuildRecord(set) {
		var id string
		var origin uint32
		var copynumber uint8
		switch v := obj.(type) {
		case FileHeader:
			id, origin, copynumber = v.Name.ID, v.Name.Origin, v.Name.Copynumber
		case Origin:
			id, origin, copynumber = v.Name.ID, v.Name.Origin, v.Name.Copynumber
		case Channel:
			id, origin, copynumber = v.Name.ID, v.Name.Origin, v.Name.Copynumber
		case Frame:
			id, origin, copynumber = v.Name.ID, v.Name.Origin, v.Name.Copynumber
		case Tool:
			id, origin, copynumber = v.Name.ID, v.Name.Origin, v.Name.Copynumber
		case Parameter:
			id, origin, copynumber = v.Name.ID, v.Name.Origin, v.Name.Copynumber
		case Calibration:
			id, origin, copynumber = v.Name.ID, v.Name.Origin, v.Name.Copynumber
		case Axis:
			id, origin, copynumber = v.Name.ID, v.Name.Origin, v.Name.Copynumber
		case Zone:
			id, origin, copynumber = v.Name.ID, v.Name.Origin, v.Name.Copynumber
		case Equipment:
			id, origin, copynumber = v.Name.ID, v.Name.Origin, v.Name.Copynumber
		case Unknown:
			id, origin, copynumber = v.Name.ID, v.Name.Origin, v.Name.Copynumber
		default:
			continue
		}
		fp := Fingerprint(set.Type, id, int32(origin), copynumber)
		if err := file.table.Insert(set.Type, fp, obj); err != nil {
			file.opts.warn(err, fmt.Sprintf("object table insert for %s/%s", set.Type, id))
		}
	}
}

// Objects triggers a full index if needed and returns the object table.
func (file *File) Objects() (*Table, error) {
	if file.closed {
		return nil, ErrClosed
	}
	if !file.indexed {
		if err := file.buildIndex(); err != nil {
			return nil, err
		}
	}
	return file.table, nil
}

func (file *File) kind(setType string) ([]interface{}, error) {
	tbl, err := file.Objects()
	if err != nil {
		return nil, err
	}
	return tbl.IterKind(setType), nil
}

// Channels returns every CHANNEL object in the file.
func (file *File) Channels() ([]Channel, error) { return typedKind[Channel](file, SetChannel) }

// Frames returns every FRAME object in the file.
func (file *File) Frames() ([]Frame, error) { return typedKind[Frame](file, SetFrame) }

// Origins returns every ORIGIN object in the file.
func (file *File) Origins() ([]Origin, error) { return typedKind[Origin](file, SetOrigin) }

// Tools returns every TOOL object in the file.
func (file *File) Tools() ([]Tool, error) { return typedKind[Tool](file, SetTool) }

// Parameters returns every PARAMETER object in the file.
func (file *File) Parameters() ([]Parameter, error) { return typedKind[Parameter](file, SetParameter) }

// Calibrations returns every CALIBRATION object in the file.
func (file *File) Calibrations() ([]Calibration, error) {
	return typedKind[Calibration](file, SetCalibration)
}

// Axes returns every AXIS object in the file.
func (file *File) Axes() ([]Axis, error) { return typedKind[Axis](file, SetAxis) }

// Zones returns every ZONE object in the file.
func (file *File) Zones() ([]Zone, error) { return typedKind[Zone](file, SetZone) }

// Equipment returns every EQUIPMENT object in the file.
func (file *File) Equipment() ([]Equipment, error) { return typedKind[Equipment](file, SetEquipment) }

// Unknowns returns every object whose set type fell outside the typed
// roster.
func (file *File) Unknowns() ([]Unknown, error) {
	tbl, err := file.Objects()
	if err != nil {
		return nil, err
	}
	var out []Unknown
	for _, setType := range tbl.kindsSnapshot() {
		if isTypedKind(setType) {
			continue
		}
		for _, obj := range tbl.IterKind(setType) {
			if u, ok := obj.(Unknown); ok {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func isTypedKind(setType string) bool {
	switch setType {
	case SetFileHeader, SetOrigin, SetChannel, SetFrame, SetTool, SetParameter,
		SetCalibration, SetAxis, SetZone, SetEquipment:
		return true
	default:
		return false
	}
}

func typedKind[T any](file *File, setType string) ([]T, error) {
	objs, err := file.kind(setType)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(objs))
	for _, o := range objs {
		if t, ok := o.(T); ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// Reindex replaces the file's record index with manually supplied
// (offset, length) spans, bypassing automatic scanning. This is the
// recovery path for files whose automatic Visible Record walk gives up,
// per SPEC_FULL.md §5's reindex/extract feature.
func (file *File) Reindex(offsets, lengths []int64) error {
	if len(offsets) != len(lengths) {
		return fmt.Errorf("reindex: %d offsets but %d lengths", len(offsets), len(lengths))
	}
	records := make([]indexEntry, 0, len(offsets))
	for i := range offsets {
		off, ln := offsets[i], lengths[i]
		if off < 0 || ln < 4 || off+ln > int64(len(file.data)) {
			return fmt.Errorf("%w: reindex span [%d,%d) outside file", ErrOutsideBoundary, off, off+ln)
		}
		s := NewScanner(file.data, off)
		lr, ok, err := s.Next()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: no logical record at reindexed offset %d", ErrTruncated, off)
		}
		records = append(records, indexEntry{offset: off, length: ln, lr: lr})
	}
	file.records = records
	file.indexed = true
	return nil
}

// Extract returns the raw reassembled payload of each indexed record at
// the given positions, in request order.
func (file *File) Extract(indices []int) ([][]byte, error) {
	out := make([][]byte, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(file.records) {
			return nil, fmt.Errorf("%w: record index %d out of range (have %d)", ErrNotFound, i, len(file.records))
		}
		out = append(out, file.records[i].lr.Payload)
	}
	return out, nil
}
