// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import (
	"fmt"
	"strconv"
	"strings"
)

// sulSize is the fixed size, in bytes, of a Storage Unit Label.
const sulSize = 80

// SUL is a parsed Storage Unit Label, the fixed 80-byte ASCII header that
// opens every DLIS file.
type SUL struct {
	Sequence int
	Version  string
	// Layout is "record" or "unknown".
	Layout string
	MaxLen int
	ID     string
}

// ParseSUL parses an 80-byte Storage Unit Label buffer. warn, if non-nil,
// is called with ErrLabelInconsistent when the layout field is neither
// RECORD nor empty; the result's Layout is set to "unknown" in that case
// rather than failing.
func ParseSUL(buf []byte, warn func(err error, context string)) (SUL, error) {
	if len(buf) < sulSize {
		return SUL{}, fmt.Errorf("%w: got %d bytes, need %d", ErrBufferTooSmall, len(buf), sulSize)
	}
	buf = buf[:sulSize]

	seqField := string(buf[0:4])
	sequence, err := strconv.Atoi(strings.TrimSpace(seqField))
	if err != nil {
		return SUL{}, fmt.Errorf("%w: sequence number %q: %v", ErrMalformedVR, seqField, err)
	}

	versionField := string(buf[4:9])
	version, ok := sulVersion(versionField)
	if !ok {
		return SUL{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, versionField)
	}

	layoutField := strings.TrimSpace(string(buf[9:15]))
	layout := "unknown"
	switch layoutField {
	case "RECORD":
		layout = "record"
	case "":
		layout = "unknown"
	default:
		layout = "unknown"
		if warn != nil {
			warn(ErrLabelInconsistent, fmt.Sprintf("storage unit label layout %q is neither RECORD nor empty", layoutField))
		}
	}

	maxLenField := string(buf[15:20])
	maxLen, err := strconv.Atoi(strings.TrimSpace(maxLenField))
	if err != nil {
		// A garbled maxlen field falls back to 0 silently; the layout field
		// is the only warning path spec.md §4.4 calls for.
		maxLen = 0
	}

	id := string(buf[20:80])

	return SUL{
		Sequence: sequence,
		Version:  version,
		Layout:   layout,
		MaxLen:   maxLen,
		ID:       id,
	}, nil
}

// sulVersion maps the 5-byte version field to its short form. Only V1.00
// is supported.
func sulVersion(field string) (string, bool) {
	if field == "V1.00" {
		return "1.0", true
	}
	return "", false
}

// looksLikeSUL is the byte pattern storage-label discovery scans for: 4
// sequence characters (digits or spaces) followed by a version field
// shaped "Vx.xx". It is the
// anchor spec.md §4.3 step 1 calls for when skipping leading garbage; it
// does not itself reject unsupported versions; ParseSUL does, so that a
// version mismatch reports ErrUnsupportedVersion rather than "no label
// found".
func looksLikeSUL(buf []byte) bool {
	if len(buf) < 9 {
		return false
	}
	for _, b := range buf[0:4] {
		if b != ' ' && (b < '0' || b > '9') {
			return false
		}
	}
	isDigit := func(b byte) bool { return b >= '0' && b <= '9' }
	return buf[4] == 'V' && isDigit(buf[5]) && buf[6] == '.' && isDigit(buf[7]) && isDigit(buf[8])
}
