// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

// Attribute is one named slot of a Set's Template, or one value-bearing slot
// of an Object, per spec.md §4.5. A slot inherited wholesale from the
// Template carries the Template's Label/Count/Reprc/Units unchanged; only
// the fields an object's byte stream actually supplies are overridden.
type Attribute struct {
	Label  string
	Count  int
	Reprc  RepresentationCode
	Units  string
	Values []Value
	// Absent is true when the object's stream carried the 0x00 absent
	// marker for this slot: the slot is dropped regardless of what the
	// Template defaults to.
	Absent bool
}

// Value0 returns the attribute's first decoded value, or nil if the
// attribute is absent or carries no values.
func (a Attribute) Value0() interface{} {
	if a.Absent || len(a.Values) == 0 {
		return nil
	}
	return a.Values[0].V
}

// Object is one OBNAME-identified member of a Set, carrying exactly
// len(Set.Template) attributes in template order.
type Object struct {
	Name       Obname
	Attributes []Attribute
}

// ByLabel returns the object's attribute with the given label and whether
// it was found. Labels are compared case-sensitively, matching the ASCII
// mnemonics RP66 producers emit (e.g. "LONG-NAME").
func (o Object) ByLabel(label string) (Attribute, bool) {
	for _, a := range o.Attributes {
		if a.Label == label {
			return a, true
		}
	}
	return Attribute{}, false
}

// Set is one parsed Explicit Formatted Logical Record: a Type/Name header,
// the Template that gives every object's attribute slots their identity and
// defaults, and the Objects themselves.
type Set struct {
	Type     string
	Name     string
	Template []Attribute
	Objects  []Object
}
