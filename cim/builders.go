// SPDX-License-Identifier: MIT
//
// File: builders.go
// Role: Programmatic record constructors for tests, examples and callers that
// assemble models without JSON.

package cim

// Terminal mrid suffixes used by Connect.
const (
	TerminalSuffix1 = ".T1"
	TerminalSuffix2 = ".T2"
)

// NodeRecord returns a ConnectivityNode record.
func NodeRecord(mrid string) Record {
	return Record{MRID: mrid, Class: ClassConnectivityNode, Attributes: map[string]interface{}{}}
}

// TerminalRecord returns a Terminal record linking equipment to node.
func TerminalRecord(mrid, equipment, node string) Record {
	return Record{MRID: mrid, Class: ClassTerminal, Attributes: map[string]interface{}{
		AttrTerminalEquipment: equipment,
		AttrTerminalNode:      node,
	}}
}

// SwitchRecord returns a Breaker or Disconnector record (class must be one of
// ClassBreaker, ClassDisconnector) with the given open state.
func SwitchRecord(mrid, class string, open bool) Record {
	return Record{MRID: mrid, Class: class, Attributes: map[string]interface{}{
		AttrSwitchOpen: open,
	}}
}

// LineRecord returns an ACLineSegment record carrying seg's parameters.
// Zero-valued parameters are emitted as null, matching sparse source data.
func LineRecord(mrid string, seg LineSegment) Record {
	attrs := make(map[string]interface{}, len(lineAttrs))
	put := func(key string, v float64) {
		if v == 0 {
			attrs[key] = nil
			return
		}
		attrs[key] = v
	}
	put(AttrLineR, seg.R)
	put(AttrLineX, seg.X)
	put(AttrLineR0, seg.R0)
	put(AttrLineX0, seg.X0)
	put(AttrLineGch, seg.Gch)
	put(AttrLineBch, seg.Bch)
	put(AttrLineG0ch, seg.G0ch)
	put(AttrLineB0ch, seg.B0ch)

	return Record{MRID: mrid, Class: ClassACLineSegment, Attributes: attrs}
}

// Connect returns equipment followed by two terminals joining it to from and
// to. Terminal mrids are equipment.MRID plus TerminalSuffix1 / TerminalSuffix2.
func Connect(equipment Record, from, to string) []Record {
	return []Record{
		equipment,
		TerminalRecord(equipment.MRID+TerminalSuffix1, equipment.MRID, from),
		TerminalRecord(equipment.MRID+TerminalSuffix2, equipment.MRID, to),
	}
}
