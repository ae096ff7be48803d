// SPDX-License-Identifier: MIT

// Package cim loads a node-breaker network model from CIM-style records and
// exposes it as an immutable set of lookup structures.
//
// # What
//
//   - Decode a JSON array of records (mrid, cimclass, fullobject) into a Model.
//   - Classify every record into a closed set of equipment kinds (Kind).
//   - Build the five lookup structures the reducers consume:
//   - node set:           every ConnectivityNode mrid, ascending
//   - asset map:          mrid → *Asset
//   - switch state:       switch mrid → closed?
//   - terminal adjacency: equipment mrid → terminal mrids (input order)
//   - connectivity:       connectivity node mrid → terminal mrids (input order)
//
// # Why
//
//	Topology reduction and admittance assembly only ever read these maps. Keeping
//	them behind accessors that hand out copies lets every later stage treat the
//	model as a value: nothing downstream can alias or mutate the loaded snapshot.
//
// # Errors
//
//   - ErrNilReader      if Decode receives a nil reader.
//   - ErrMalformed      for unparsable input or records missing required fields.
//   - ErrDuplicateMRID  if two records share an mrid.
//
// Dangling references (a terminal naming equipment or a node that has no record)
// are NOT errors here; they are resolved softly by the topology and busbranch
// packages.
//
// # Usage
//
//	m, err := cim.Load("substation.json", cim.WithLogger(logger))
//	if err != nil {
//		// errors.Is(err, cim.ErrMalformed) ...
//	}
//	for _, cn := range m.Nodes() {
//		fmt.Println(cn, m.NodeTerminals(cn))
//	}
package cim
