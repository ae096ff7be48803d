// SPDX-License-Identifier: MIT

// Package busbranch assembles the bus admittance matrix (Y-bus) of a reduced
// topology.
//
// # What
//
//   - Build takes a *topology.Topology and returns a Model: the ordered bus
//     list (representatives, ascending), the N×N complex admittance matrix in
//     that order, and the branches that contributed to it.
//   - Only AC line segments contribute. Switches were already folded into the
//     buses by the topology stage; every other equipment class is ignored.
//
// # Stamping
//
// Every line segment is collected exactly once (buses ascending, then terminal
// order on the bus) and stamped into all four positions in one step:
//
//	Y[i,i] += y + ysh     Y[i,j] -= y
//	Y[j,j] += y + ysh     Y[j,i] -= y
//
// with y = 1/(r + jx) and ysh = gch/2 + j·bch/2. When a positive-sequence
// parameter is zero or absent its zero-sequence counterpart (r0, x0, g0ch,
// b0ch) is used instead. A segment whose two ends fall on the same bus leaves
// only 2·ysh on the diagonal.
//
// # Soft failures
//
// Degenerate impedance (r²+x² == 0), a segment without exactly two terminals
// and an end that does not land on a known bus are skipped. Each is logged
// at Debug and reported by Model.Skipped; none of them fail the build.
//
// # Fatal failures
//
// ErrInvariant signals that a bus produced by the topology has no matrix
// index. That can only happen on a corrupted Topology and is never recovered.
//
// # Determinism
//
// Given the same topology, Build produces bit-identical matrices: the stamping
// order is fixed and floating-point additions happen in that order.
package busbranch
