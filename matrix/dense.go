// SPDX-License-Identifier: MIT
//
// File: dense.go
// Role: Square complex128 matrix with bounds-checked access.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// Dense is an n×n matrix of complex128 values. A zero-size Dense is valid and
// has no backing storage (gonum rejects zero-length matrices).
type Dense struct {
	n    int
	data *mat.CDense // nil when n == 0
}

// NewDense creates an n×n Dense initialised to zeros.
// Returns ErrBadShape for n < 0.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrBadShape)
	}
	if n == 0 {
		return &Dense{}, nil
	}

	return &Dense{n: n, data: mat.NewCDense(n, n, nil)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.n }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.n }

func (m *Dense) check(method string, row, col int) error {
	if m == nil {
		return denseErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return denseErrorf(method, row, col, ErrOutOfRange)
	}

	return nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (complex128, error) {
	if err := m.check("At", row, col); err != nil {
		return 0, err
	}

	return m.data.At(row, col), nil
}

// Set assigns v at (row, col). Non-finite components are rejected with ErrNaNInf.
func (m *Dense) Set(row, col int, v complex128) error {
	if err := m.check("Set", row, col); err != nil {
		return err
	}
	if !finite(v) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data.Set(row, col, v)

	return nil
}

// Add accumulates v into (row, col).
func (m *Dense) Add(row, col int, v complex128) error {
	if err := m.check("Add", row, col); err != nil {
		return err
	}
	sum := m.data.At(row, col) + v
	if !finite(sum) {
		return denseErrorf("Add", row, col, ErrNaNInf)
	}
	m.data.Set(row, col, sum)

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	if m.n == 0 {
		return &Dense{}
	}
	cp := mat.NewCDense(m.n, m.n, nil)
	cp.Copy(m.data)

	return &Dense{n: m.n, data: cp}
}

// RawRows returns the entries as a freshly allocated slice of rows.
func (m *Dense) RawRows() [][]complex128 {
	out := make([][]complex128, m.n)
	for i := 0; i < m.n; i++ {
		row := make([]complex128, m.n)
		for j := 0; j < m.n; j++ {
			row[j] = m.data.At(i, j)
		}
		out[i] = row
	}

	return out
}

// CDense returns a copy of the backing gonum matrix for use with gonum
// routines. It returns nil for a zero-size matrix.
func (m *Dense) CDense() *mat.CDense {
	if m.n == 0 {
		return nil
	}

	return m.Clone().data
}

// EqualApprox reports whether m and other have the same size and every pair of
// entries differs by at most eps (absolute or relative, per gonum).
func (m *Dense) EqualApprox(other *Dense, eps float64) bool {
	if m == nil || other == nil || m.n != other.n {
		return false
	}
	if m.n == 0 {
		return true
	}

	return mat.CEqualApprox(m.data, other.data, eps)
}

// IsZero reports whether every entry is exactly zero.
func (m *Dense) IsZero() bool {
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.data.At(i, j) != 0 {
				return false
			}
		}
	}

	return true
}

// String renders one bracketed row per line using %g for both components.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		b.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data.At(i, j))
		}
		b.WriteString("]\n")
	}

	return b.String()
}

func finite(v complex128) bool {
	return !cmplx.IsNaN(v) && !math.IsInf(real(v), 0) && !math.IsInf(imag(v), 0)
}
