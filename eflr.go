// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

import "fmt"

// Component roles occupy the top 3 bits of a component descriptor byte.
// roleAttribFamily (000) is shared by the absent marker and the invariant
// attribute; a clear bit4 on an all-zero byte means absent, a set bit4
// means invariant attribute.
const (
	roleAttribFamily = 0
	roleAttrib       = 1
	roleObject       = 3
	roleSet          = 7
)

const invariantBit = 0x10

func componentRole(b byte) byte { return (b >> 5) & 0x07 }

// ParseEFLR parses a reassembled Logical Record's payload as an Explicit
// Formatted Logical Record, per the Set/Template/Object component grammar
// in spec.md §4.5. An encrypted record's payload is opaque and returns
// ErrEncrypted without attempting to decode it.
func ParseEFLR(lr LogicalRecord) (Set, error) {
	if lr.Encrypted {
		return Set{}, ErrEncrypted
	}
	cur := NewCursor(lr.Payload)

	set, err := parseSetHeader(cur)
	if err != nil {
		return Set{}, err
	}

	template, err := parseTemplate(cur)
	if err != nil {
		return Set{}, err
	}
	set.Template = template

	objects, err := parseObjects(cur, template)
	if err != nil {
		return Set{}, err
	}
	set.Objects = objects

	return set, nil
}

func parseSetHeader(cur *Cursor) (Set, error) {
	b, err := cur.U8()
	if err != nil {
		return Set{}, err
	}
	if componentRole(b) != roleSet {
		return Set{}, fmt.Errorf("%w: expected SET component, got descriptor %#02x", ErrMalformedEFLR, b)
	}

	var set Set
	if b&0x10 != 0 { // T: type present
		set.Type, err = decodeIdentString(cur)
		if err != nil {
			return Set{}, err
		}
	}
	if b&0x08 != 0 { // N: name present
		set.Name, err = decodeIdentString(cur)
		if err != nil {
			return Set{}, err
		}
	}
	return set, nil
}

// parseTemplate consumes attribute components until it sees the first
// OBJECT component, which it leaves unread for parseObjects.
func parseTemplate(cur *Cursor) ([]Attribute, error) {
	var template []Attribute
	for {
		if cur.Remaining() == 0 {
			return nil, fmt.Errorf("%w: set ended before any object", ErrMalformedEFLR)
		}
		peek, err := cur.Peek(1)
		if err != nil {
			return nil, err
		}
		if componentRole(peek[0]) == roleObject {
			return template, nil
		}

		b, err := cur.U8()
		if err != nil {
			return nil, err
		}
		baseline := Attribute{Count: 1, Reprc: IDENT}
		attr, err := parseAttributeComponent(cur, b, baseline)
		if err != nil {
			return nil, err
		}
		template = append(template, attr)
	}
}

func parseObjects(cur *Cursor, template []Attribute) ([]Object, error) {
	var objects []Object
	for cur.Remaining() > 0 {
		b, err := cur.U8()
		if err != nil {
			return nil, err
		}
		if componentRole(b) != roleObject {
			return nil, fmt.Errorf("%w: expected OBJECT component, got descriptor %#02x", ErrMalformedEFLR, b)
		}
		name, err := decodeObname(cur)
		if err != nil {
			return nil, err
		}

		attrs := make([]Attribute, len(template))
		for i, slot := range template {
			if cur.Remaining() == 0 {
				return nil, fmt.Errorf("%w: object %s ended after %d of %d attributes", ErrMalformedEFLR, name.ID, i, len(template))
			}
			ab, err := cur.U8()
			if err != nil {
				return nil, err
			}
			attr, err := parseAttributeComponent(cur, ab, slot)
			if err != nil {
				return nil, err
			}
			attrs[i] = attr
		}
		objects = append(objects, Object{Name: name, Attributes: attrs})
	}
	return objects, nil
}

// parseAttributeComponent decodes one ATTRIB/INVATR/ABSENT component,
// inheriting any field it does not itself carry from defaults (the
// Template's slot at the same ordinal position). The 0x00 absent marker
// drops the slot's value wholesale, keeping only the Template's label,
// representation code and units, regardless of what defaults otherwise
// supplies.
func parseAttributeComponent(cur *Cursor, b byte, defaults Attribute) (Attribute, error) {
	role := componentRole(b)

	if role == roleAttribFamily && b&invariantBit == 0 {
		if b != 0 {
			return Attribute{}, fmt.Errorf("%w: malformed absent/invariant component descriptor %#02x", ErrMalformedEFLR, b)
		}
		return Attribute{Label: defaults.Label, Reprc: defaults.Reprc, Units: defaults.Units, Absent: true}, nil
	}

	invariant := role == roleAttribFamily && b&invariantBit != 0
	if !invariant && role != roleAttrib {
		return Attribute{}, fmt.Errorf("%w: expected ATTRIB component, got descriptor %#02x", ErrMalformedEFLR, b)
	}

	attr := defaults
	attr.Absent = false

	var hasLabel, hasCount, hasReprc, hasUnits, hasValue bool
	if invariant {
		flags := b & 0x0F
		hasCount = flags&0x08 != 0
		hasReprc = flags&0x04 != 0
		hasUnits = flags&0x02 != 0
		hasValue = flags&0x01 != 0
	} else {
		flags := b & 0x1F
		hasLabel = flags&0x10 != 0
		hasCount = flags&0x08 != 0
		hasReprc = flags&0x04 != 0
		hasUnits = flags&0x02 != 0
		hasValue = flags&0x01 != 0
	}

	var err error
	if hasLabel {
		attr.Label, err = decodeIdentString(cur)
		if err != nil {
			return Attribute{}, err
		}
	}
	if hasCount {
		n, err := decodeUvari(cur)
		if err != nil {
			return Attribute{}, err
		}
		attr.Count = int(n)
	}
	if hasReprc {
		r, err := cur.U8()
		if err != nil {
			return Attribute{}, err
		}
		attr.Reprc = RepresentationCode(r)
	}
	if hasUnits {
		attr.Units, err = decodeIdentString(cur)
		if err != nil {
			return Attribute{}, err
		}
	}
	if hasValue {
		values := make([]Value, 0, attr.Count)
		for i := 0; i < attr.Count; i++ {
			v, err := Decode(attr.Reprc, cur)
			if err != nil {
				return Attribute{}, err
			}
			values = append(values, v)
		}
		attr.Values = values
	}
	return attr, nil
}
