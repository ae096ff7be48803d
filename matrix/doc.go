// SPDX-License-Identifier: MIT

// Package matrix provides the complex dense matrix used to store bus
// admittance (Y-bus) matrices.
//
// Dense is a square, bounds-checked wrapper over gonum's mat.CDense. Entries
// start at exact zero; Add accumulates contributions in place, which is how
// admittance stamping writes into the matrix. Public indexers never panic: an
// invalid index returns ErrOutOfRange.
//
// Complexity:
//
//	NewDense is O(n²) time and memory.
//	At, Set and Add are O(1).
//	Clone, RawRows, EqualApprox and ValidateSymmetric are O(n²).
package matrix
