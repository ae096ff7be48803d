// SPDX-License-Identifier: MIT
// Package cim_test verifies record classification and the lookup structures.

package cim_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/gridreduce/cim"
)

// substation builds two nodes joined by a breaker plus a line to a third node.
func substation() []cim.Record {
	recs := []cim.Record{
		cim.NodeRecord("N2"),
		cim.NodeRecord("N1"),
		cim.NodeRecord("N3"),
	}
	recs = append(recs, cim.Connect(cim.SwitchRecord("BRK1", cim.ClassBreaker, false), "N1", "N2")...)
	recs = append(recs, cim.Connect(cim.LineRecord("L1", cim.LineSegment{R: 1, X: 2}), "N2", "N3")...)

	return recs
}

func TestNewModel_LookupStructures(t *testing.T) {
	m, err := cim.NewModel(substation(), cim.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	assert.Equal(t, []string{"N1", "N2", "N3"}, m.Nodes())
	assert.True(t, m.HasNode("N1"))
	assert.False(t, m.HasNode("BRK1"))
	assert.Equal(t, 9, m.Len())

	closed, known := m.SwitchState("BRK1")
	assert.True(t, known)
	assert.True(t, closed)
	_, known = m.SwitchState("L1")
	assert.False(t, known)
	assert.Equal(t, []string{"BRK1"}, m.Switches())

	assert.Equal(t, []string{"BRK1.T1", "BRK1.T2"}, m.Terminals("BRK1"))
	assert.Equal(t, []string{"BRK1.T2", "L1.T1"}, m.NodeTerminals("N2"))
	assert.Empty(t, m.NodeTerminals("missing"))

	node, ok := m.TerminalNode("L1.T2")
	require.True(t, ok)
	assert.Equal(t, "N3", node)

	other, ok := m.OtherTerminal("L1", "L1.T1")
	require.True(t, ok)
	assert.Equal(t, "L1.T2", other)
}

func TestNewModel_TerminalAndSwitchAccessorsAreDistinct(t *testing.T) {
	m, err := cim.NewModel(substation())
	require.NoError(t, err)

	// The terminal map is keyed by equipment and lists terminals, whatever the
	// equipment kind; the switch map only knows switches.
	assert.Equal(t, []string{"L1.T1", "L1.T2"}, m.Terminals("L1"))
	_, known := m.SwitchState("L1")
	assert.False(t, known)
}

func TestNewModel_AccessorsReturnCopies(t *testing.T) {
	m, err := cim.NewModel(substation())
	require.NoError(t, err)

	nodes := m.Nodes()
	nodes[0] = "mutated"
	assert.Equal(t, "N1", m.Nodes()[0])

	terms := m.NodeTerminals("N2")
	terms[0] = "mutated"
	assert.Equal(t, "BRK1.T2", m.NodeTerminals("N2")[0])

	conn := m.Connectivity()
	conn["N1"] = nil
	assert.Len(t, m.NodeTerminals("N1"), 1)
}

func TestNewModel_SwitchState(t *testing.T) {
	normallyOpen := cim.Record{MRID: "D2", Class: cim.ClassDisconnector, Attributes: map[string]interface{}{
		cim.AttrSwitchNormalOpen: true,
	}}
	openOverrides := cim.Record{MRID: "D3", Class: cim.ClassDisconnector, Attributes: map[string]interface{}{
		cim.AttrSwitchOpen:       false,
		cim.AttrSwitchNormalOpen: true,
	}}
	stateless := cim.Record{MRID: "B4", Class: cim.ClassBreaker, Attributes: map[string]interface{}{}}
	m, err := cim.NewModel([]cim.Record{
		cim.SwitchRecord("B1", cim.ClassBreaker, true),
		normallyOpen, openOverrides, stateless,
	})
	require.NoError(t, err)

	for id, want := range map[string]bool{"B1": false, "D2": false, "D3": true, "B4": true} {
		closed, known := m.SwitchState(id)
		assert.True(t, known, id)
		assert.Equal(t, want, closed, id)
	}
}

func TestNewModel_NumericSwitchState(t *testing.T) {
	in := `[
	  {"mrid": "B1", "cimclass": "cim:Breaker", "fullobject": {"cim:Switch.open": 1}},
	  {"mrid": "B2", "cimclass": "cim:Breaker", "fullobject": {"cim:Switch.open": 0, "cim:Switch.normalOpen": 1}},
	  {"mrid": "B3", "cimclass": "cim:Breaker", "fullobject": {"cim:Switch.normalOpen": 1}}
	]`
	m, err := cim.Decode(strings.NewReader(in))
	require.NoError(t, err)

	for id, want := range map[string]bool{"B1": false, "B2": true, "B3": false} {
		closed, known := m.SwitchState(id)
		require.True(t, known, id)
		assert.Equal(t, want, closed, id)
	}
}

func TestNewModel_NonBooleanSwitchStateIsMalformed(t *testing.T) {
	for name, v := range map[string]interface{}{
		"word":   "maybe",
		"number": 2.0,
		"object": map[string]interface{}{},
	} {
		rec := cim.Record{MRID: "B1", Class: cim.ClassBreaker, Attributes: map[string]interface{}{
			cim.AttrSwitchOpen: v,
		}}
		_, err := cim.NewModel([]cim.Record{rec})
		assert.ErrorIs(t, err, cim.ErrMalformed, name)
	}

	nullState := cim.Record{MRID: "B2", Class: cim.ClassBreaker, Attributes: map[string]interface{}{
		cim.AttrSwitchNormalOpen: nil,
	}}
	m, err := cim.NewModel([]cim.Record{nullState})
	require.NoError(t, err)
	closed, _ := m.SwitchState("B2")
	assert.True(t, closed)
}

func TestNewModel_Errors(t *testing.T) {
	_, err := cim.NewModel([]cim.Record{cim.NodeRecord("N1"), cim.NodeRecord("N1")})
	require.ErrorIs(t, err, cim.ErrDuplicateMRID)

	_, err = cim.NewModel([]cim.Record{{MRID: "", Class: cim.ClassConnectivityNode}})
	require.ErrorIs(t, err, cim.ErrMalformed)

	_, err = cim.NewModel([]cim.Record{{MRID: "X", Class: ""}})
	require.ErrorIs(t, err, cim.ErrMalformed)

	noNode := cim.Record{MRID: "T1", Class: cim.ClassTerminal, Attributes: map[string]interface{}{
		cim.AttrTerminalEquipment: "BRK1",
	}}
	_, err = cim.NewModel([]cim.Record{noNode})
	require.ErrorIs(t, err, cim.ErrMalformed)

	badLine := cim.Record{MRID: "L1", Class: cim.ClassACLineSegment, Attributes: map[string]interface{}{
		cim.AttrLineR: "one ohm",
	}}
	_, err = cim.NewModel([]cim.Record{badLine})
	require.ErrorIs(t, err, cim.ErrMalformed)
}

func TestNewModel_DanglingReferencesAreNotErrors(t *testing.T) {
	recs := []cim.Record{
		cim.NodeRecord("N1"),
		cim.TerminalRecord("T1", "GHOST", "N1"),
		cim.TerminalRecord("T2", "GHOST", "NOWHERE"),
	}
	m, err := cim.NewModel(recs)
	require.NoError(t, err)

	assert.Equal(t, []string{"N1"}, m.Nodes())
	assert.Equal(t, []string{"T2"}, m.NodeTerminals("NOWHERE"))
	_, ok := m.Asset("GHOST")
	assert.False(t, ok)
}

func TestAsset_LineSegment(t *testing.T) {
	m, err := cim.NewModel([]cim.Record{
		cim.LineRecord("L1", cim.LineSegment{R: 0.5, X0: 3, Bch: 1e-4}),
		cim.NodeRecord("N1"),
	})
	require.NoError(t, err)

	a, ok := m.Asset("L1")
	require.True(t, ok)
	assert.Equal(t, cim.KindACLineSegment, a.Kind())
	seg, ok := a.LineSegment()
	require.True(t, ok)
	assert.Equal(t, cim.LineSegment{R: 0.5, X0: 3, Bch: 1e-4}, seg)
	assert.False(t, a.Has(cim.AttrLineX))

	n, _ := m.Asset("N1")
	_, ok = n.LineSegment()
	assert.False(t, ok)
	_, ok = n.Equipment()
	assert.False(t, ok)
}

func TestAsset_RecordIsIndependent(t *testing.T) {
	m, err := cim.NewModel([]cim.Record{cim.SwitchRecord("B1", cim.ClassBreaker, false)})
	require.NoError(t, err)

	a, _ := m.Asset("B1")
	rec := a.Record()
	rec.Attributes[cim.AttrSwitchOpen] = true

	open, ok := a.Bool(cim.AttrSwitchOpen)
	require.True(t, ok)
	assert.False(t, open)
}
