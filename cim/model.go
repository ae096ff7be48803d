// SPDX-License-Identifier: MIT
//
// File: model.go
// Role: Immutable RawModel and its lookup structures.
//
// Determinism:
//   - Nodes() and Switches() return mrids sorted ascending.
//   - Terminal lists keep record input order.

package cim

import (
	"sort"

	"go.uber.org/zap"
)

// Model is the loaded node-breaker network. It is built once by NewModel and
// never mutated; every slice or map returned by an accessor is a fresh copy.
type Model struct {
	nodes        []string
	nodeSet      map[string]struct{}
	assets       map[string]*Asset
	switches     map[string]bool     // switch mrid → closed
	terminals    map[string][]string // equipment mrid → terminal mrids
	connectivity map[string][]string // connectivity node mrid → terminal mrids
	terminalNode map[string]string   // terminal mrid → connectivity node mrid
}

// NewModel classifies records and builds the lookup structures.
//
// Implementation:
//   - Stage 1: Reject duplicate mrids (ErrDuplicateMRID).
//   - Stage 2: Register the asset and dispatch on its Kind.
//   - Stage 3: Terminals must name both their equipment and their node
//     (ErrMalformed); the referenced records need not exist.
//   - Stage 4: Line segments must carry numeric or null parameters, switches
//     boolean (true/false, 0/1) or null state (ErrMalformed).
//
// Complexity:
//   - Time O(R·A + N log N) for R records with A attributes and N nodes.
func NewModel(records []Record, opts ...Option) (*Model, error) {
	o := gatherOptions(opts)

	m := &Model{
		nodeSet:      make(map[string]struct{}),
		assets:       make(map[string]*Asset, len(records)),
		switches:     make(map[string]bool),
		terminals:    make(map[string][]string),
		connectivity: make(map[string][]string),
		terminalNode: make(map[string]string),
	}

	for i, rec := range records {
		if rec.MRID == "" {
			return nil, recordErrorf(i, "", ErrMalformed, "missing %q", keyMRID)
		}
		if rec.Class == "" {
			return nil, recordErrorf(i, rec.MRID, ErrMalformed, "missing %q", keyClass)
		}
		if _, dup := m.assets[rec.MRID]; dup {
			return nil, recordErrorf(i, rec.MRID, ErrDuplicateMRID, "already loaded")
		}

		attrs := make(map[string]interface{}, len(rec.Attributes))
		for k, v := range rec.Attributes {
			attrs[k] = v
		}
		a := &Asset{mrid: rec.MRID, class: rec.Class, kind: ParseKind(rec.Class), attrs: attrs}
		m.assets[a.mrid] = a

		switch a.kind {
		case KindConnectivityNode:
			m.nodes = append(m.nodes, a.mrid)
			m.nodeSet[a.mrid] = struct{}{}
		case KindBreaker, KindDisconnector:
			for _, key := range []string{AttrSwitchOpen, AttrSwitchNormalOpen} {
				if v, present := a.attrs[key]; present && v != nil {
					if _, ok := boolValue(v); !ok {
						return nil, recordErrorf(i, a.mrid, ErrMalformed, "non-boolean %q", key)
					}
				}
			}
			m.switches[a.mrid] = switchClosed(a)
		case KindTerminal:
			equipment, ok := a.Equipment()
			if !ok || equipment == "" {
				return nil, recordErrorf(i, a.mrid, ErrMalformed, "terminal without %q", AttrTerminalEquipment)
			}
			node, ok := a.Node()
			if !ok || node == "" {
				return nil, recordErrorf(i, a.mrid, ErrMalformed, "terminal without %q", AttrTerminalNode)
			}
			m.terminals[equipment] = append(m.terminals[equipment], a.mrid)
			m.connectivity[node] = append(m.connectivity[node], a.mrid)
			m.terminalNode[a.mrid] = node
		case KindACLineSegment:
			for _, key := range lineAttrs {
				if v, present := a.attrs[key]; present && v != nil {
					if _, ok := floatValue(v); !ok {
						return nil, recordErrorf(i, a.mrid, ErrMalformed, "non-numeric %q", key)
					}
				}
			}
		case KindOther:
			// carried, never interpreted
		}
	}
	sort.Strings(m.nodes)

	o.Logger.Debug("model loaded",
		zap.Int("records", len(records)),
		zap.Int("connectivity_nodes", len(m.nodes)),
		zap.Int("switches", len(m.switches)),
		zap.Int("terminals", len(m.terminalNode)),
	)

	return m, nil
}

// switchClosed reads the switch state: open wins when cim:Switch.open is true;
// without it cim:Switch.normalOpen decides; with neither the switch is closed.
func switchClosed(a *Asset) bool {
	if open, ok := a.Bool(AttrSwitchOpen); ok {
		return !open
	}
	if open, ok := a.Bool(AttrSwitchNormalOpen); ok {
		return !open
	}

	return true
}

// Nodes returns every ConnectivityNode mrid in ascending order.
func (m *Model) Nodes() []string {
	out := make([]string, len(m.nodes))
	copy(out, m.nodes)

	return out
}

// HasNode reports whether mrid is a loaded ConnectivityNode.
func (m *Model) HasNode(mrid string) bool {
	_, ok := m.nodeSet[mrid]
	return ok
}

// Len returns the number of loaded records.
func (m *Model) Len() int { return len(m.assets) }

// Asset returns the record with the given mrid.
func (m *Model) Asset(mrid string) (*Asset, bool) {
	a, ok := m.assets[mrid]
	return a, ok
}

// Assets returns every record, ordered by mrid.
func (m *Model) Assets() []*Asset {
	out := make([]*Asset, 0, len(m.assets))
	for _, a := range m.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].mrid < out[j].mrid })

	return out
}

// SwitchState reports whether the switch is closed. known is false when no
// switch record with that mrid was loaded.
func (m *Model) SwitchState(mrid string) (closed, known bool) {
	closed, known = m.switches[mrid]
	return closed, known
}

// Switches returns every switch mrid in ascending order.
func (m *Model) Switches() []string {
	out := make([]string, 0, len(m.switches))
	for id := range m.switches {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Terminals returns the terminals attached to a piece of equipment.
func (m *Model) Terminals(equipment string) []string {
	return cloneStrings(m.terminals[equipment])
}

// NodeTerminals returns the terminals attached to a connectivity node.
func (m *Model) NodeTerminals(node string) []string {
	return cloneStrings(m.connectivity[node])
}

// Connectivity returns a copy of the connectivity adjacency map. Keys include
// nodes referenced by terminals even when no node record exists.
func (m *Model) Connectivity() map[string][]string {
	out := make(map[string][]string, len(m.connectivity))
	for k, v := range m.connectivity {
		out[k] = cloneStrings(v)
	}

	return out
}

// TerminalNode returns the connectivity node a terminal refers to.
func (m *Model) TerminalNode(terminal string) (string, bool) {
	n, ok := m.terminalNode[terminal]
	return n, ok
}

// OtherTerminal returns the first terminal of equipment that is not terminal.
func (m *Model) OtherTerminal(equipment, terminal string) (string, bool) {
	for _, t := range m.terminals[equipment] {
		if t != terminal {
			return t, true
		}
	}

	return "", false
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)

	return out
}
