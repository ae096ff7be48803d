// SPDX-License-Identifier: MIT

// Package gridreduce turns a node-breaker power network into its bus-branch
// model and the bus admittance matrix (Y-bus).
//
// The pipeline has three stages, each in its own package:
//
//	cim/       decode the record set and classify assets (RawModel)
//	topology/  fuse connectivity nodes joined by closed switches
//	busbranch/ stamp AC line segments into the complex admittance matrix
//
// Supporting packages:
//
//	matrix/    square complex128 matrix over gonum's CDense, symmetry check
//	config/    YAML and environment settings for the command
//	report/    text and JSON rendering of a bus-branch model
//
// Quick example:
//
//	raw, _ := cim.Load("network.json")
//	top, _ := topology.Reduce(raw)
//	bb, _ := busbranch.Build(top)
//	fmt.Println(bb.Nodes())
//	fmt.Print(bb.Admittance())
//
// The cmd/gridreduce command wires the same pipeline with logging and
// configuration:
//
//	go run ./cmd/gridreduce network.json --format json
package gridreduce
