// SPDX-License-Identifier: MIT

package topology_test

import (
	"fmt"

	"github.com/katalvlaran/gridreduce/cim"
	"github.com/katalvlaran/gridreduce/topology"
)

// ExampleReduce shows two bus sections joined by a closed coupler and a third
// section behind an open breaker.
func ExampleReduce() {
	recs := []cim.Record{cim.NodeRecord("BB1"), cim.NodeRecord("BB2"), cim.NodeRecord("BB3")}
	recs = append(recs, cim.Connect(cim.SwitchRecord("CPL", cim.ClassBreaker, false), "BB1", "BB2")...)
	recs = append(recs, cim.Connect(cim.SwitchRecord("CB3", cim.ClassBreaker, true), "BB2", "BB3")...)

	m, _ := cim.NewModel(recs)
	top, err := topology.Reduce(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(top)

	// Output:
	// BB2: [BB1 BB2]
	// BB3: [BB3]
}
