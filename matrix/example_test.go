// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/gridreduce/matrix"
)

// ExampleDense_Add stamps one branch admittance into a 2×2 matrix.
func ExampleDense_Add() {
	y, _ := matrix.NewDense(2)
	g := complex(0.5, -1)
	_ = y.Add(0, 0, g)
	_ = y.Add(1, 1, g)
	_ = y.Add(0, 1, -g)
	_ = y.Add(1, 0, -g)

	fmt.Print(y)
	fmt.Println(matrix.ValidateSymmetric(y, 0))
	// Output:
	// [(0.5-1i), (-0.5+1i)]
	// [(-0.5+1i), (0.5-1i)]
	// <nil>
}
