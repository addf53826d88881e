// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import "fmt"

// Logical Record type codes, RP66 V1 Appendix 1. Types 0-11 are the
// reserved EFLR (Explicit Formatted) set types; everything else is an
// IFLR (frame data or no-format) type.
const (
	LRTypeFileHeader  uint8 = 0
	LRTypeOrigin      uint8 = 1
	LRTypeAxis        uint8 = 2
	LRTypeChannel     uint8 = 3
	LRTypeFrame       uint8 = 4
	LRTypeStatic      uint8 = 5
	LRTypeScript      uint8 = 6
	LRTypeUpdate      uint8 = 7
	LRTypeUDI         uint8 = 8
	LRTypeLongName    uint8 = 9
	LRTypeSpec        uint8 = 10
	LRTypeDictionary  uint8 = 11
	LRTypeFrameData   uint8 = 126
	LRTypeNoFormat    uint8 = 127
)

// IsEFLRType reports whether typ is one of the 0-11 reserved EFLR types.
func IsEFLRType(typ uint8) bool { return typ <= LRTypeDictionary }

// Segment attribute bit masks, MSB first, in the order spec.md §3 lists
// them: logical-record-structure, predecessor, successor, encryption,
// encryption-packet, checksum, trailing-length, padding.
const (
	attrExplicit         = 0x80
	attrPredecessor      = 0x40
	attrSuccessor        = 0x20
	attrEncryption       = 0x10
	attrEncryptionPacket = 0x08
	attrChecksum         = 0x04
	attrTrailingLength   = 0x02
	attrPadding          = 0x01
)

// SegmentAttributes decodes a Logical Record Segment's attribute byte.
type SegmentAttributes struct {
	Explicit         bool
	Predecessor      bool
	Successor        bool
	Encryption       bool
	EncryptionPacket bool
	Checksum         bool
	TrailingLength   bool
	Padding          bool
}

func decodeSegmentAttributes(b byte) SegmentAttributes {
	return SegmentAttributes{
		Explicit:         b&attrExplicit != 0,
		Predecessor:      b&attrPredecessor != 0,
		Successor:        b&attrSuccessor != 0,
		Encryption:       b&attrEncryption != 0,
		EncryptionPacket: b&attrEncryptionPacket != 0,
		Checksum:         b&attrChecksum != 0,
		TrailingLength:   b&attrTrailingLength != 0,
		Padding:          b&attrPadding != 0,
	}
}

// LogicalRecord is the reassembly of one or more Logical Record Segments,
// per spec.md §3/§4.3.
type LogicalRecord struct {
	Type       uint8
	Attributes SegmentAttributes
	Payload    []byte
	Encrypted  bool
	// Offset and Length describe the record's physical span in the file,
	// in case a caller wants to Reindex/Extract around it.
	Offset int64
	Length int64
}

// Scanner walks Visible Records and Logical Record Segments over a byte
// source starting at a given offset, emitting reassembled Logical Records.
type Scanner struct {
	data []byte
	pos  int64
}

// NewScanner returns a Scanner over data starting at offset.
func NewScanner(data []byte, offset int64) *Scanner {
	return &Scanner{data: data, pos: offset}
}

// Pos returns the scanner's current file offset.
func (s *Scanner) Pos() int64 { return s.pos }

// Next reassembles and returns the next Logical Record, or (LogicalRecord{},
// false, nil) at clean end-of-file. A truncated VR/LRS at any other point
// returns a non-nil error.
func (s *Scanner) Next() (LogicalRecord, bool, error) {
	var lr LogicalRecord
	var have bool

	for {
		if s.pos >= int64(len(s.data)) {
			if have {
				return lr, true, nil
			}
			return LogicalRecord{}, false, nil
		}

		remaining := int64(len(s.data)) - s.pos
		if remaining < 4 {
			if have {
				return LogicalRecord{}, false, fmt.Errorf("%w: logical record left open at end of file", ErrTruncated)
			}
			// Clean EOF: trailing bytes too short to be a new VR header,
			// and nothing is mid-flight. Per spec.md §9's Open Question
			// resolution, truncation exactly at a VR boundary is not an
			// error.
			return LogicalRecord{}, false, nil
		}

		vrStart := s.pos
		vrLen, err := s.peekVRHeader(vrStart)
		if err != nil {
			return LogicalRecord{}, false, err
		}
		vrBodyStart := vrStart + 4
		vrBodyEnd := vrStart + int64(vrLen)
		if vrBodyEnd > int64(len(s.data)) {
			return LogicalRecord{}, false, fmt.Errorf("%w: visible record at %d extends past end of file", ErrTruncated, vrStart)
		}

		pos := vrBodyStart
		for pos < vrBodyEnd {
			segStart := pos
			if vrBodyEnd-pos < 4 {
				return LogicalRecord{}, false, fmt.Errorf("%w: logical record segment header at %d runs past visible record", ErrMalformedLRS, segStart)
			}
			segLen := int64(be16(s.data[pos : pos+2]))
			attrByte := s.data[pos+2]
			segType := s.data[pos+3]
			if segLen < 4 {
				return LogicalRecord{}, false, fmt.Errorf("%w: segment length %d below header size at %d", ErrMalformedLRS, segLen, segStart)
			}
			if segStart+segLen > vrBodyEnd {
				return LogicalRecord{}, false, fmt.Errorf("%w: segment at %d overruns visible record body", ErrMalformedLRS, segStart)
			}

			attrs := decodeSegmentAttributes(attrByte)
			body := s.data[pos+4 : segStart+segLen]
			payload, err := stripTrailer(body, attrs)
			if err != nil {
				return LogicalRecord{}, false, fmt.Errorf("%w: segment at %d: %v", ErrMalformedLRS, segStart, err)
			}

			if !attrs.Predecessor {
				if have {
					return LogicalRecord{}, false, fmt.Errorf("%w: segment at %d starts a new record before the previous one closed", ErrMalformedLRS, segStart)
				}
				lr = LogicalRecord{Type: segType, Attributes: attrs, Offset: segStart}
				have = true
			} else {
				if !have {
					return LogicalRecord{}, false, fmt.Errorf("%w: segment at %d has predecessor bit set with no open record", ErrMalformedLRS, segStart)
				}
				if lr.Type != segType {
					return LogicalRecord{}, false, fmt.Errorf("%w: segment at %d type %d does not match open record type %d", ErrMalformedLRS, segStart, segType, lr.Type)
				}
			}

			lr.Payload = append(lr.Payload, payload...)
			if attrs.Encryption {
				lr.Encrypted = true
			}
			lr.Length = segStart + segLen - lr.Offset

			pos = segStart + segLen

			if !attrs.Successor {
				s.pos = pos
				return lr, true, nil
			}
		}
		s.pos = vrBodyEnd
	}
}

// peekVRHeader reads and validates a Visible Record header at offset,
// returning the record's total length (including the 4-byte header).
func (s *Scanner) peekVRHeader(offset int64) (uint16, error) {
	if offset+4 > int64(len(s.data)) {
		return 0, fmt.Errorf("%w: visible record header at %d truncated", ErrTruncated, offset)
	}
	h := s.data[offset : offset+4]
	length := be16(h[0:2])
	if h[2] != 0xFF || h[3] != 0x01 {
		return 0, fmt.Errorf("%w: bad format word at %d: %02x%02x", ErrMalformedVR, offset, h[2], h[3])
	}
	if length < 4 {
		return 0, fmt.Errorf("%w: visible record length %d at %d", ErrMalformedVR, length, offset)
	}
	return length, nil
}

// stripTrailer removes, in order from the end of body, padding bytes,
// the trailing-length field, and the checksum field, returning the
// remaining payload (which may still carry an undecoded encryption packet
// when attrs.Encryption is set — callers must not attempt to decode it,
// per spec.md §4.3).
func stripTrailer(body []byte, attrs SegmentAttributes) ([]byte, error) {
	end := len(body)

	if attrs.Padding {
		if end == 0 {
			return nil, fmt.Errorf("padding flag set with empty segment body")
		}
		padCount := int(body[end-1])
		if padCount > end {
			return nil, fmt.Errorf("pad count %d exceeds segment body length %d", padCount, end)
		}
		end -= padCount
	}

	if attrs.TrailingLength {
		if end < 2 {
			return nil, fmt.Errorf("trailing-length flag set but only %d bytes remain", end)
		}
		end -= 2
	}

	if attrs.Checksum {
		if end < 2 {
			return nil, fmt.Errorf("checksum flag set but only %d bytes remain", end)
		}
		end -= 2
	}

	return body[:end], nil
}

func be16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}
