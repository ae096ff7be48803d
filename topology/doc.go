// SPDX-License-Identifier: MIT

// Package topology merges connectivity nodes joined by closed switches into
// topological nodes.
//
// # What
//
//   - Reduce walks a *cim.Model and returns a Topology: the grouping of every
//     ConnectivityNode into exactly one TopologicalNode, and the connectivity
//     adjacency re-keyed by representative.
//   - A TopologicalNode is identified by its representative, the maximum mrid
//     among its members (plain string order).
//
// # Algorithm (union by maximum id)
//
//  1. merge[n] = n for every connectivity node n.
//  2. Forward pass, nodes ascending: the candidate group of n is the resolved
//     image of n plus the resolved image of every node reached through a closed
//     switch on one of n's terminals. Every candidate other than the maximum is
//     re-pointed at the maximum.
//  3. Flattening pass, nodes descending: resolve every image to a fixed point,
//     so merge chains of any depth collapse onto their final representative.
//  4. Invert the merge map into representative → members.
//
// Because step 2 only ever re-points resolved images (roots), two groups joined
// by a switch are always united as wholes; the result is the partition of the
// node set into components of the closed-switch graph.
//
// # Soft failures
//
//   - Open switches and switches with unknown state never fuse.
//   - Terminals whose equipment has no record, or whose far end names a node
//     that has no record, never fuse.
//   - Non-switch equipment never fuses.
//
// Complexity (N = nodes, T = terminals)
//
//   - Time:   O(N log N + T·h) where h is the longest merge chain (h ≤ N).
//   - Memory: O(N + T).
package topology
