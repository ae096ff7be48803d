// SPDX-License-Identifier: MIT
//
// File: topology.go
// Role: Immutable reduction result and read-only accessors.

package topology

import (
	"fmt"

	"github.com/katalvlaran/gridreduce/cim"
)

// Topology is the result of Reduce. It is immutable; accessors return copies.
type Topology struct {
	source       *cim.Model
	nodes        []string            // representatives, ascending
	members      map[string][]string // representative → members, ascending
	rep          map[string]string   // connectivity node → representative
	connectivity map[string][]string // node → terminals; absorbed nodes map to empty
}

// Source returns the raw model the topology was reduced from.
func (t *Topology) Source() *cim.Model { return t.source }

// Len returns the number of topological nodes.
func (t *Topology) Len() int { return len(t.nodes) }

// Nodes returns the representative mrids in ascending order. This order is the
// row/column order of every matrix built from the topology.
func (t *Topology) Nodes() []string {
	out := make([]string, len(t.nodes))
	copy(out, t.nodes)

	return out
}

// Members returns the connectivity nodes absorbed by representative rep,
// including rep itself, in ascending order.
func (t *Topology) Members(rep string) ([]string, bool) {
	ms, ok := t.members[rep]
	if !ok {
		return nil, false
	}
	out := make([]string, len(ms))
	copy(out, ms)

	return out, true
}

// Groups returns a copy of the representative → members mapping.
func (t *Topology) Groups() map[string][]string {
	out := make(map[string][]string, len(t.members))
	for r, ms := range t.members {
		cp := make([]string, len(ms))
		copy(cp, ms)
		out[r] = cp
	}

	return out
}

// Representative returns the topological node a connectivity node belongs to.
func (t *Topology) Representative(node string) (string, bool) {
	r, ok := t.rep[node]
	return r, ok
}

// Terminals returns the terminals attached to the topological node rep. For an
// absorbed connectivity node the list is empty.
func (t *Topology) Terminals(rep string) []string {
	terms := t.connectivity[rep]
	out := make([]string, len(terms))
	copy(out, terms)

	return out
}

// Connectivity returns the re-keyed connectivity adjacency: every connectivity
// node is a key, representatives carry the terminals of all their members and
// absorbed nodes map to an empty list.
func (t *Topology) Connectivity() map[string][]string {
	out := make(map[string][]string, len(t.connectivity))
	for k, v := range t.connectivity {
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}

	return out
}

// Reduced re-expresses the topology as a raw model whose connectivity nodes are
// the representatives: absorbed node records are dropped and every terminal on
// an absorbed node is re-pointed at its representative. Reducing the result
// again yields the same grouping.
func (t *Topology) Reduced() (*cim.Model, error) {
	assets := t.source.Assets()
	records := make([]cim.Record, 0, len(assets))
	for _, a := range assets {
		switch a.Kind() {
		case cim.KindConnectivityNode:
			if r := t.rep[a.MRID()]; r != a.MRID() {
				continue
			}
			records = append(records, a.Record())
		case cim.KindTerminal:
			rec := a.Record()
			if node, ok := a.Node(); ok {
				if r, known := t.rep[node]; known {
					rec.Attributes[cim.AttrTerminalNode] = r
				}
			}
			records = append(records, rec)
		case cim.KindBreaker, cim.KindDisconnector, cim.KindACLineSegment, cim.KindOther:
			records = append(records, a.Record())
		}
	}

	m, err := cim.NewModel(records)
	if err != nil {
		return nil, fmt.Errorf("topology: rebuild reduced model: %w", err)
	}

	return m, nil
}

// String renders the grouping for debugging, one topological node per line.
func (t *Topology) String() string {
	var s string
	for _, r := range t.nodes {
		s += fmt.Sprintf("%s: %v\n", r, t.members[r])
	}

	return s
}
