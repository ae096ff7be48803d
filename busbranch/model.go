// SPDX-License-Identifier: MIT

package busbranch

import (
	"github.com/katalvlaran/gridreduce/matrix"
)

// Model is the bus-branch view of a network: ordered buses and their
// admittance matrix. It is immutable; accessors return copies.
type Model struct {
	buses    []string
	index    map[string]int
	members  map[string][]string
	y        *matrix.Dense
	branches []Branch
	skipped  []Skip
}

// Nodes returns the bus ids (topological node representatives) in matrix
// order, which is ascending mrid order.
func (m *Model) Nodes() []string {
	out := make([]string, len(m.buses))
	copy(out, m.buses)

	return out
}

// Len returns the number of buses.
func (m *Model) Len() int { return len(m.buses) }

// Index returns the matrix row/column of bus.
func (m *Model) Index(bus string) (int, bool) {
	i, ok := m.index[bus]
	return i, ok
}

// Members returns the connectivity nodes fused into bus, ascending.
func (m *Model) Members(bus string) ([]string, bool) {
	ms, ok := m.members[bus]
	if !ok {
		return nil, false
	}
	out := make([]string, len(ms))
	copy(out, ms)

	return out, true
}

// Admittance returns a copy of the N×N admittance matrix.
func (m *Model) Admittance() *matrix.Dense { return m.y.Clone() }

// Branches returns the contributing line segments in stamping order.
func (m *Model) Branches() []Branch {
	out := make([]Branch, len(m.branches))
	copy(out, m.branches)

	return out
}

// Skipped returns the line segments left out of the matrix, in visit order.
func (m *Model) Skipped() []Skip {
	out := make([]Skip, len(m.skipped))
	copy(out, m.skipped)

	return out
}
