// SPDX-License-Identifier: MIT
//
// File: asset.go
// Role: Immutable record view with typed attribute readers.

package cim

import (
	"math"
	"strconv"
)

// Attribute keys read by the pipeline.
const (
	AttrTerminalEquipment = "cim:Terminal.ConductingEquipment"
	AttrTerminalNode      = "cim:Terminal.ConnectivityNode"

	AttrSwitchOpen       = "cim:Switch.open"
	AttrSwitchNormalOpen = "cim:Switch.normalOpen"

	AttrLineR    = "cim:ACLineSegment.r"
	AttrLineX    = "cim:ACLineSegment.x"
	AttrLineR0   = "cim:ACLineSegment.r0"
	AttrLineX0   = "cim:ACLineSegment.x0"
	AttrLineGch  = "cim:ACLineSegment.gch"
	AttrLineBch  = "cim:ACLineSegment.bch"
	AttrLineG0ch = "cim:ACLineSegment.g0ch"
	AttrLineB0ch = "cim:ACLineSegment.b0ch"
)

// lineAttrs lists every numeric line-segment key validated at load time.
var lineAttrs = []string{
	AttrLineR, AttrLineX, AttrLineR0, AttrLineX0,
	AttrLineGch, AttrLineBch, AttrLineG0ch, AttrLineB0ch,
}

// Asset is one loaded record. Attributes are the record-level fields merged
// with its fullobject bag. An Asset is never mutated after loading.
type Asset struct {
	mrid  string
	class string
	kind  Kind
	attrs map[string]interface{}
}

// MRID returns the unique identifier of the asset.
func (a *Asset) MRID() string { return a.mrid }

// Class returns the raw cimclass tag.
func (a *Asset) Class() string { return a.class }

// Kind returns the classified equipment kind.
func (a *Asset) Kind() Kind { return a.kind }

// Has reports whether key is present with a non-null value.
func (a *Asset) Has(key string) bool {
	v, ok := a.attrs[key]
	return ok && v != nil
}

// Text returns the attribute as a string. Numbers are formatted without
// exponent so that numeric references compare equal to their string form.
func (a *Asset) Text(key string) (string, bool) {
	return textValue(a.attrs[key])
}

// Float returns the attribute as a float64. A null or absent attribute, or a
// value that is not numeric, reports false.
func (a *Asset) Float(key string) (float64, bool) {
	return floatValue(a.attrs[key])
}

// Bool returns the attribute as a bool. Strings accepted by strconv.ParseBool
// and the numbers 0 and 1 are accepted as well.
func (a *Asset) Bool(key string) (bool, bool) {
	return boolValue(a.attrs[key])
}

// Equipment returns the conducting-equipment mrid a terminal refers to.
func (a *Asset) Equipment() (string, bool) {
	if a.kind != KindTerminal {
		return "", false
	}

	return a.Text(AttrTerminalEquipment)
}

// Node returns the connectivity-node mrid a terminal refers to.
func (a *Asset) Node() (string, bool) {
	if a.kind != KindTerminal {
		return "", false
	}

	return a.Text(AttrTerminalNode)
}

// LineSegment returns the raw electrical parameters of an AC line segment.
// Absent or null parameters read as zero; the second result is false when the
// asset is not a line segment.
func (a *Asset) LineSegment() (LineSegment, bool) {
	if a.kind != KindACLineSegment {
		return LineSegment{}, false
	}
	read := func(key string) float64 {
		v, _ := a.Float(key)
		return v
	}

	return LineSegment{
		R:    read(AttrLineR),
		X:    read(AttrLineX),
		R0:   read(AttrLineR0),
		X0:   read(AttrLineX0),
		Gch:  read(AttrLineGch),
		Bch:  read(AttrLineBch),
		G0ch: read(AttrLineG0ch),
		B0ch: read(AttrLineB0ch),
	}, true
}

// Record returns a deep-enough copy of the asset as a Record: the attribute map
// is fresh, values are shared (they are scalars after decoding).
func (a *Asset) Record() Record {
	attrs := make(map[string]interface{}, len(a.attrs))
	for k, v := range a.attrs {
		attrs[k] = v
	}

	return Record{MRID: a.mrid, Class: a.class, Attributes: attrs}
}

// LineSegment holds positive- and zero-sequence parameters of a line segment
// in the units of the source model (ohms, siemens).
type LineSegment struct {
	R, X       float64 // positive-sequence series resistance and reactance
	R0, X0     float64 // zero-sequence series resistance and reactance
	Gch, Bch   float64 // positive-sequence shunt conductance and susceptance
	G0ch, B0ch float64 // zero-sequence shunt conductance and susceptance
}

// numberLike is satisfied by json.Number from both encoding/json and go-json.
type numberLike interface {
	Float64() (float64, error)
	String() string
}

func textValue(v interface{}) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case numberLike:
		return t.String(), true
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10), true
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}

func boolValue(v interface{}) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return false, false
		}
		return b, true
	case nil:
		return false, false
	}
	f, ok := floatValue(v)
	if !ok || (f != 0 && f != 1) {
		return false, false
	}

	return f == 1, true
}

func floatValue(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		return t, true
	case numberLike:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}
