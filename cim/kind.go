// SPDX-License-Identifier: MIT

package cim

// Class tags recognised in the cimclass field of a record.
const (
	ClassConnectivityNode = "cim:ConnectivityNode"
	ClassTerminal         = "cim:Terminal"
	ClassBreaker          = "cim:Breaker"
	ClassDisconnector     = "cim:Disconnector"
	ClassACLineSegment    = "cim:ACLineSegment"
)

// Kind is the closed set of equipment kinds the reduction pipeline understands.
// Every class tag outside the known set maps to KindOther.
type Kind uint8

const (
	// KindOther is any record the pipeline carries but never interprets.
	KindOther Kind = iota
	// KindConnectivityNode is a zero-impedance electrical point.
	KindConnectivityNode
	// KindTerminal links one piece of equipment to one connectivity node.
	KindTerminal
	// KindBreaker is a switch that can interrupt load current.
	KindBreaker
	// KindDisconnector is an off-load switch.
	KindDisconnector
	// KindACLineSegment is a branch with series impedance and shunt admittance.
	KindACLineSegment
)

// ParseKind maps a cimclass tag to its Kind.
func ParseKind(class string) Kind {
	switch class {
	case ClassConnectivityNode:
		return KindConnectivityNode
	case ClassTerminal:
		return KindTerminal
	case ClassBreaker:
		return KindBreaker
	case ClassDisconnector:
		return KindDisconnector
	case ClassACLineSegment:
		return KindACLineSegment
	default:
		return KindOther
	}
}

// IsSwitch reports whether equipment of this kind has an open/closed state.
func (k Kind) IsSwitch() bool {
	switch k {
	case KindBreaker, KindDisconnector:
		return true
	case KindOther, KindConnectivityNode, KindTerminal, KindACLineSegment:
		return false
	default:
		return false
	}
}

// String returns the class tag for k, or "other".
func (k Kind) String() string {
	switch k {
	case KindConnectivityNode:
		return ClassConnectivityNode
	case KindTerminal:
		return ClassTerminal
	case KindBreaker:
		return ClassBreaker
	case KindDisconnector:
		return ClassDisconnector
	case KindACLineSegment:
		return ClassACLineSegment
	case KindOther:
		return "other"
	default:
		return "other"
	}
}
