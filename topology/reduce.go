// SPDX-License-Identifier: MIT
//
// File: reduce.go
// Role: Union-by-maximum-id merging of connectivity nodes across closed switches.

package topology

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridreduce/cim"
)

// Reduce merges connectivity nodes joined by closed switches.
//
// Implementation:
//   - Stage 1: merge[n] = n for every node.
//   - Stage 2: Forward pass in ascending mrid order. The candidate group of a
//     node holds its resolved image and the resolved image of every node reached
//     through a closed switch; all candidates are re-pointed at the maximum.
//   - Stage 3: Flattening pass in descending order resolving every image to a
//     fixed point.
//   - Stage 4: Invert merge into groups and re-key the connectivity adjacency.
//
// Returns ErrNilModel for a nil model. All per-element data problems are
// recovered as "no fusion" and logged at Debug.
//
// Complexity:
//   - Time O(N log N + T·h), Space O(N + T).
func Reduce(m *cim.Model, opts ...Option) (*Topology, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger

	nodes := m.Nodes()
	merge := make(map[string]string, len(nodes))
	for _, n := range nodes {
		merge[n] = n
	}

	var fused int
	for _, n := range nodes {
		group := map[string]struct{}{resolve(merge, n): {}}
		for _, term := range m.NodeTerminals(n) {
			far, ok := fusedNode(m, term, log)
			if !ok {
				continue
			}
			fused++
			group[resolve(merge, far)] = struct{}{}
		}
		if len(group) == 1 {
			continue
		}

		maxID := ""
		for id := range group {
			if id > maxID {
				maxID = id
			}
		}
		for id := range group {
			if id != maxID {
				merge[id] = maxID
			}
		}
	}

	// Chains only ever point at strictly larger ids, so resolution terminates.
	for i := len(nodes) - 1; i >= 0; i-- {
		merge[nodes[i]] = resolve(merge, nodes[i])
	}

	t := newTopology(m, nodes, merge, log)
	log.Info("topology reduced",
		zap.Int("connectivity_nodes", len(nodes)),
		zap.Int("topological_nodes", len(t.nodes)),
		zap.Int("fusing_terminals", fused),
	)

	return t, nil
}

// resolve follows merge links from id to its fixed point.
func resolve(merge map[string]string, id string) string {
	for {
		next, ok := merge[id]
		if !ok || next == id {
			return id
		}
		id = next
	}
}

// fusedNode returns the connectivity node on the far side of a closed switch
// attached to term, or false when term does not fuse anything.
func fusedNode(m *cim.Model, term string, log *zap.Logger) (string, bool) {
	t, ok := m.Asset(term)
	if !ok {
		return "", false
	}
	equipment, ok := t.Equipment()
	if !ok {
		return "", false
	}
	// Equipment without a record is a switch of unknown state: open.
	eq, ok := m.Asset(equipment)
	if !ok {
		log.Debug("terminal references missing equipment, treated as open",
			zap.String("terminal", term), zap.String("equipment", equipment))
		return "", false
	}
	if !eq.Kind().IsSwitch() {
		return "", false
	}
	// Every switch record has a state in the model.
	if closed, _ := m.SwitchState(equipment); !closed {
		return "", false
	}
	other, ok := m.OtherTerminal(equipment, term)
	if !ok {
		log.Debug("closed switch has no second terminal", zap.String("switch", equipment))
		return "", false
	}
	far, ok := m.TerminalNode(other)
	if !ok || !m.HasNode(far) {
		log.Debug("switch terminal references missing connectivity node",
			zap.String("switch", equipment), zap.String("terminal", other), zap.String("node", far))
		return "", false
	}

	return far, true
}

// newTopology inverts a fully resolved merge map and re-keys connectivity.
func newTopology(m *cim.Model, nodes []string, merge map[string]string, log *zap.Logger) *Topology {
	t := &Topology{
		source:       m,
		members:      make(map[string][]string),
		rep:          make(map[string]string, len(nodes)),
		connectivity: make(map[string][]string, len(nodes)),
	}

	// nodes is ascending, so member lists come out sorted.
	for _, n := range nodes {
		r := merge[n]
		t.rep[n] = r
		t.members[r] = append(t.members[r], n)
		if _, ok := t.connectivity[n]; !ok {
			t.connectivity[n] = []string{}
		}
		if _, ok := t.connectivity[r]; !ok {
			t.connectivity[r] = []string{}
		}
		t.connectivity[r] = append(t.connectivity[r], m.NodeTerminals(n)...)
	}

	for r := range t.members {
		t.nodes = append(t.nodes, r)
	}
	sort.Strings(t.nodes)

	for cn, terms := range m.Connectivity() {
		if !m.HasNode(cn) {
			log.Debug("terminals reference missing connectivity node",
				zap.String("node", cn), zap.Strings("terminals", terms))
		}
	}

	return t
}
