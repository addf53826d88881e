// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

// Conversion helpers from an Attribute's loosely-typed Values to the
// concrete Go types the per-kind typed records (C6) want. These mirror the
// field-by-field population style of saferwall/pe/ntheader.go: explicit
// switches, no reflection-based unmarshaling.

func attrString(a Attribute) string {
	if a.Absent || len(a.Values) == 0 {
		return ""
	}
	if s, ok := a.Values[0].V.(string); ok {
		return s
	}
	return ""
}

func attrStrings(a Attribute) []string {
	if a.Absent {
		return nil
	}
	out := make([]string, 0, len(a.Values))
	for _, v := range a.Values {
		if s, ok := v.V.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func attrInt(a Attribute) int {
	if a.Absent || len(a.Values) == 0 {
		return 0
	}
	return toInt(a.Values[0].V)
}

func attrInts(a Attribute) []int {
	if a.Absent {
		return nil
	}
	out := make([]int, 0, len(a.Values))
	for _, v := range a.Values {
		out = append(out, toInt(v.V))
	}
	return out
}

func toInt(v interface{}) int {
	switch n := v.(type) {
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case float32:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func attrFloat64(a Attribute) float64 {
	if a.Absent || len(a.Values) == 0 {
		return 0
	}
	switch n := a.Values[0].V.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return float64(toInt(a.Values[0].V))
	}
}

func attrBool(a Attribute) bool {
	if a.Absent || len(a.Values) == 0 {
		return false
	}
	b, _ := a.Values[0].V.(bool)
	return b
}

func attrObname(a Attribute) (Obname, bool) {
	if a.Absent || len(a.Values) == 0 {
		return Obname{}, false
	}
	o, ok := a.Values[0].V.(Obname)
	return o, ok
}

func attrObnames(a Attribute) []Obname {
	if a.Absent {
		return nil
	}
	out := make([]Obname, 0, len(a.Values))
	for _, v := range a.Values {
		if o, ok := v.V.(Obname); ok {
			out = append(out, o)
		}
	}
	return out
}

func attrObjref(a Attribute) (Objref, bool) {
	if a.Absent || len(a.Values) == 0 {
		return Objref{}, false
	}
	o, ok := a.Values[0].V.(Objref)
	return o, ok
}

func attrDateTime(a Attribute) DateTime {
	if a.Absent || len(a.Values) == 0 {
		return DateTime{}
	}
	d, _ := a.Values[0].V.(DateTime)
	return d
}
