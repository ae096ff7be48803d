// SPDX-License-Identifier: MIT

// Package main provides the gridreduce CLI: it reduces a node-breaker record
// set to its bus-branch model and prints the admittance matrix.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
