// Copyright 2026 The DLIS Parse Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package dlis

// BuildRecord dispatches a parsed Set to its typed builder by set type,
// returning one typed record per object. Unrecognized set types fall back
// to Unknown, matching spec.md §4.6/§9's explicit "no typed schema, no
// data loss" fallback.
func BuildRecord(set Set) []interface{} {
	switch set.Type {
	case SetFileHeader:
		out := make([]interface{}, 0, len(set.Objects))
		for _, fh := range BuildFileHeaders(set) {
			out = append(out, fh)
		}
		return out
	case SetOrigin:
		out := make([]interface{}, 0, len(set.Objects))
		for _, o := range BuildOrigins(set) {
			out = append(out, o)
		}
		return out
	case SetChannel:
		out := make([]interface{}, 0, len(set.Objects))
		for _, c := range BuildChannels(set) {
			out = append(out, c)
		}
		return out
	case SetFrame:
		out := make([]interface{}, 0, len(set.Objects))
		for _, f := range BuildFrames(set) {
			out = append(out, f)
		}
		return out
	case SetTool:
		out := make([]interface{}, 0, len(set.Objects))
		for _, t := range BuildTools(set) {
			out = append(out, t)
		}
		return out
	case SetParameter:
		out := make([]interface{}, 0, len(set.Objects))
		for _, p := range BuildParameters(set) {
			out = append(out, p)
		}
		return out
	case SetCalibration:
		out := make([]interface{}, 0, len(set.Objects))
		for _, c := range BuildCalibrations(set) {
			out = append(out, c)
		}
		return out
	case SetAxis:
		out := make([]interface{}, 0, len(set.Objects))
		for _, a := range BuildAxes(set) {
			out = append(out, a)
		}
		return out
	case SetZone:
		out := make([]interface{}, 0, len(set.Objects))
		for _, z := range BuildZones(set) {
			out = append(out, z)
		}
		return out
	case SetEquipment:
		out := make([]interface{}, 0, len(set.Objects))
		for _, e := range BuildEquipment(set) {
			out = append(out, e)
		}
		return out
	default:
		out := make([]interface{}, 0, len(set.Objects))
		for _, u := range BuildUnknowns(set) {
			out = append(out, u)
		}
		return out
	}
}

// BuildFileHeaders builds every FILE-HEADER object in set.
func BuildFileHeaders(set Set) []FileHeader {
	out := make([]FileHeader, 0, len(set.Objects))
	for _, obj := range set.Objects {
		fh := FileHeader{Name: obj.Name}
		for _, a := range obj.Attributes {
			switch a.Label {
			case "ID":
				fh.Id = attrString(a)
			case "SEQUENCE-NUMBER":
				fh.SequenceNr = attrString(a)
			}
		}
		out = append(out, fh)
	}
	return out
}

// BuildOrigins builds every ORIGIN object in set.
func BuildOrigins(set Set) []Origin {
	out := make([]Origin, 0, len(set.Objects))
	for _, obj := range set.Objects {
		o := Origin{Name: obj.Name}
		for _, a := range obj.Attributes {
			switch a.Label {
			case "FILE-ID":
				o.FileId = attrString(a)
			case "FILE-SET-NAME":
				o.FileSetName = attrString(a)
			case "FILE-SET-NUMBER":
				o.FileSetNr = attrInt(a)
			case "FILE-NUMBER":
				o.FileNr = attrInt(a)
			case "FILE-TYPE":
				o.FileType = attrString(a)
			case "PRODUCT":
				o.Product = attrString(a)
			case "VERSION":
				o.Version = attrString(a)
			case "PROGRAMS":
				o.Programs = attrStrings(a)
			case "CREATION-TIME":
				o.CreationTime = attrDateTime(a)
			case "ORDER-NUMBER":
				o.OrderNr = attrString(a)
			case "DESCENT-NUMBER":
				o.DescentNr = attrStrings(a)
			case "RUN-NUMBER":
				o.RunNr = attrStrings(a)
			case "WELL-ID":
				o.WellId = attrString(a)
			case "WELL-NAME":
				o.WellName = attrString(a)
			case "FIELD-NAME":
				o.FieldName = attrString(a)
			case "PRODUCER-CODE":
				o.ProducerCode = attrInt(a)
			case "PRODUCER-NAME":
				o.ProducerName = attrString(a)
			case "COMPANY":
				o.Company = attrString(a)
			case "NAME-SPACE-NAME":
				o.NamespaceName = attrString(a)
			case "NAME-SPACE-VERSION":
				o.NamespaceVersion = attrString(a)
			}
		}
		out = append(out, o)
	}
	return out
}

// BuildChannels builds every CHANNEL object in set.
func BuildChannels(set Set) []Channel {
	out := make([]Channel, 0, len(set.Objects))
	for _, obj := range set.Objects {
		c := Channel{Name: obj.Name, Type: set.Type}
		for _, a := range obj.Attributes {
			switch a.Label {
			case "LONG-NAME":
				c.LongName = attrString(a)
			case "REPRESENTATION-CODE":
				c.Reprc = RepresentationCode(attrInt(a))
			case "PROPERTIES":
				c.Properties = attrStrings(a)
			case "DIMENSION":
				c.Dimension = attrInts(a)
			case "AXIS":
				c.Axis = attrObnames(a)
			case "ELEMENT-LIMIT":
				c.ElementLimit = attrInts(a)
			case "UNITS":
				c.Units = attrString(a)
			case "SOURCE":
				if ref, ok := attrObjref(a); ok {
					c.Source = &ref
				}
			}
		}
		out = append(out, c)
	}
	return out
}

// BuildFrames builds every FRAME object in set.
func BuildFrames(set Set) []Frame {
	out := make([]Frame, 0, len(set.Objects))
	for _, obj := range set.Objects {
		f := Frame{Name: obj.Name, Type: set.Type}
		for _, a := range obj.Attributes {
			switch a.Label {
			case "DESCRIPTION":
				f.Description = attrString(a)
			case "CHANNELS":
				f.Channels = attrObnames(a)
			case "INDEX-TYPE":
				f.IndexType = attrString(a)
			case "DIRECTION":
				f.Direction = attrString(a)
			case "SPACING":
				f.Spacing = attrFloat64(a)
			case "INDEX-MIN":
				f.IndexMin = attrFloat64(a)
			case "INDEX-MAX":
				f.IndexMax = attrFloat64(a)
			case "ENCRYPTED":
				f.Encrypted = attrBool(a)
			}
		}
		out = append(out, f)
	}
	return out
}

// BuildTools builds every TOOL object in set.
func BuildTools(set Set) []Tool {
	out := make([]Tool, 0, len(set.Objects))
	for _, obj := range set.Objects {
		t := Tool{Name: obj.Name, Type: set.Type}
		for _, a := range obj.Attributes {
			switch a.Label {
			case "DESCRIPTION":
				t.Description = attrString(a)
			case "TRADEMARK-NAME":
				t.TrademarkName = attrString(a)
			case "GENERIC-NAME":
				t.GenericName = attrString(a)
			case "STATUS":
				t.Status = attrInt(a)
			case "PARAMETERS":
				t.Parameters = attrObnames(a)
			case "CHANNELS":
				t.Channels = attrObnames(a)
			case "PARTS":
				t.Parts = attrObnames(a)
			}
		}
		out = append(out, t)
	}
	return out
}

// BuildParameters builds every PARAMETER object in set.
func BuildParameters(set Set) []Parameter {
	out := make([]Parameter, 0, len(set.Objects))
	for _, obj := range set.Objects {
		p := Parameter{Name: obj.Name, Type: set.Type}
		for _, a := range obj.Attributes {
			switch a.Label {
			case "LONG-NAME":
				p.LongName = attrString(a)
			case "DIMENSION":
				if !a.Absent {
					p.Dimension = attrInts(a)
				}
			case "AXIS":
				if !a.Absent {
					p.Axis = attrObnames(a)
				}
			case "ZONES":
				if !a.Absent {
					p.Zones = attrObnames(a)
				}
			case "VALUES":
				p.Values = a.Values
			}
		}
		out = append(out, p)
	}
	return out
}

// BuildCalibrations builds every CALIBRATION object in set.
func BuildCalibrations(set Set) []Calibration {
	out := make([]Calibration, 0, len(set.Objects))
	for _, obj := range set.Objects {
		c := Calibration{Name: obj.Name, Type: set.Type}
		for _, a := range obj.Attributes {
			switch a.Label {
			case "METHOD":
				if !a.Absent {
					c.Method = attrString(a)
				}
			case "PARAMETERS":
				c.Parameters = attrObnames(a)
			case "COEFFICIENTS":
				c.Coefficients = attrObnames(a)
			case "CALIBRATED-CHANNELS":
				c.CalibratedChannels = attrObnames(a)
			case "UNCALIBRATED-CHANNELS":
				c.UncalibratedChannels = attrObnames(a)
			}
		}
		out = append(out, c)
	}
	return out
}

// BuildAxes builds every AXIS object in set.
func BuildAxes(set Set) []Axis {
	out := make([]Axis, 0, len(set.Objects))
	for _, obj := range set.Objects {
		ax := Axis{Name: obj.Name}
		for _, a := range obj.Attributes {
			switch a.Label {
			case "AXIS-ID":
				ax.AxisId = attrString(a)
			case "COORDINATES":
				ax.Coordinates = a.Values
			case "SPACING":
				ax.Spacing = attrFloat64(a)
			}
		}
		out = append(out, ax)
	}
	return out
}

// BuildZones builds every ZONE object in set.
func BuildZones(set Set) []Zone {
	out := make([]Zone, 0, len(set.Objects))
	for _, obj := range set.Objects {
		z := Zone{Name: obj.Name}
		for _, a := range obj.Attributes {
			switch a.Label {
			case "DESCRIPTION":
				z.Description = attrString(a)
			case "DOMAIN":
				z.Domain = attrString(a)
			case "MAXIMUM":
				if len(a.Values) > 0 {
					z.Maximum = a.Values[0]
				}
			case "MINIMUM":
				if len(a.Values) > 0 {
					z.Minimum = a.Values[0]
				}
			}
		}
		out = append(out, z)
	}
	return out
}

// BuildEquipment builds every EQUIPMENT object in set.
func BuildEquipment(set Set) []Equipment {
	out := make([]Equipment, 0, len(set.Objects))
	for _, obj := range set.Objects {
		e := Equipment{Name: obj.Name}
		for _, a := range obj.Attributes {
			switch a.Label {
			case "TRADEMARK-NAME":
				e.Trademark = attrString(a)
			case "STATUS":
				e.Status = attrInt(a)
			case "GENERIC-TYPE":
				e.Generic = attrString(a)
			case "SERIAL-NUMBER":
				e.SerialNumber = attrString(a)
			case "WEIGHT":
				e.Weight = attrFloat64(a)
			}
		}
		out = append(out, e)
	}
	return out
}

// BuildUnknowns builds the fallback Unknown record for any set type
// outside the typed roster, keeping every attribute as-is.
func BuildUnknowns(set Set) []Unknown {
	out := make([]Unknown, 0, len(set.Objects))
	for _, obj := range set.Objects {
		out = append(out, Unknown{Name: obj.Name, Type: set.Type, Attributes: obj.Attributes})
	}
	return out
}
