// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import "errors"

// Errors returned by the parsing and object-assembly engine. Callers match
// against these with errors.Is / errors.As; wrapped errors carry additional
// context via fmt.Errorf's %w verb.
var (
	// ErrBufferTooSmall is returned when a Storage Unit Label buffer is
	// shorter than the fixed 80-byte label.
	ErrBufferTooSmall = errors.New("dlis: buffer too small for storage unit label")

	// ErrUnsupportedVersion is returned when a Storage Unit Label carries a
	// version other than V1.00.
	ErrUnsupportedVersion = errors.New("dlis: unsupported storage unit label version")

	// ErrLabelInconsistent is raised as a warning (never returned as a hard
	// error) when a Storage Unit Label's layout field is neither RECORD nor
	// empty.
	ErrLabelInconsistent = errors.New("dlis: label inconsistent")

	// ErrMalformedVR is returned when a Visible Record header fails its
	// magic or length checks.
	ErrMalformedVR = errors.New("dlis: malformed visible record")

	// ErrMalformedLRS is returned when a Logical Record Segment header is
	// too short or its predecessor/successor chain is inconsistent.
	ErrMalformedLRS = errors.New("dlis: malformed logical record segment")

	// ErrTruncated is returned when a read runs past the end of the
	// available bytes.
	ErrTruncated = errors.New("dlis: truncated read")

	// ErrUnknownReprc is returned when an attribute carries a
	// representation code outside 1-27.
	ErrUnknownReprc = errors.New("dlis: unknown representation code")

	// ErrDanglingReference is returned when an OBNAME reference cannot be
	// resolved against the object table.
	ErrDanglingReference = errors.New("dlis: dangling object reference")

	// ErrEncrypted is returned when a caller requests decoded content from
	// an EFLR whose encryption bit is set.
	ErrEncrypted = errors.New("dlis: record is encrypted")

	// ErrClosed is returned when a handle is used after Close.
	ErrClosed = errors.New("dlis: handle closed")

	// ErrDuplicateFingerprint is returned when Table.Insert is given a
	// fingerprint that already exists with a different object.
	ErrDuplicateFingerprint = errors.New("dlis: duplicate fingerprint")

	// ErrOutsideBoundary is returned by File.Reindex when a supplied span
	// lies outside the file.
	ErrOutsideBoundary = errors.New("dlis: read outside boundary")

	// ErrNotFound is returned by File.Extract when a requested record
	// index is out of range.
	ErrNotFound = errors.New("dlis: object not found")

	// ErrMalformedEFLR is returned when a Set/Template/Object byte stream
	// violates the component grammar in spec.md §4.5 (an unexpected
	// component role, or an object with the wrong number of attributes).
	ErrMalformedEFLR = errors.New("dlis: malformed explicit formatted logical record")
)
