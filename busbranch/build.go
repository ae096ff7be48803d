// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Single-pass Y-bus stamping over the line segments of a topology.

package busbranch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridreduce/cim"
	"github.com/katalvlaran/gridreduce/matrix"
	"github.com/katalvlaran/gridreduce/topology"
)

// Build assembles the admittance matrix of t.
//
// Implementation:
//   - Stage 1: Invert the re-keyed connectivity map into terminal → bus.
//   - Stage 2: Collect every line segment once, buses ascending then terminal
//     order, resolving both ends and applying the zero-sequence fallback.
//   - Stage 3: Stamp (i,i), (j,j), (i,j), (j,i) per collected branch.
//
// Complexity:
//   - Time O(N² + T) for N buses and T terminals (the N² is the zeroed matrix).
func Build(t *topology.Topology, opts ...Option) (*Model, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger

	buses := t.Nodes()
	index := make(map[string]int, len(buses))
	for i, b := range buses {
		index[b] = i
	}

	// Stage 1
	owner := make(map[string]string)
	for node, terms := range t.Connectivity() {
		for _, term := range terms {
			owner[term] = node
		}
	}

	// Stage 2
	src := t.Source()
	seen := make(map[string]struct{})
	var branches []Branch
	var skipped []Skip
	for _, bus := range buses {
		for _, term := range t.Terminals(bus) {
			line, ok := lineOf(src, term)
			if !ok {
				continue
			}
			if _, dup := seen[line.MRID()]; dup {
				continue
			}
			seen[line.MRID()] = struct{}{}

			br, reason := collect(src, line, term, bus, owner)
			if reason != 0 {
				log.Debug("line segment skipped",
					zap.String("mrid", line.MRID()), zap.Stringer("reason", reason))
				skipped = append(skipped, Skip{MRID: line.MRID(), Reason: reason})
				continue
			}
			branches = append(branches, br)
		}
	}

	// Stage 3
	y, err := matrix.NewDense(len(buses))
	if err != nil {
		return nil, fmt.Errorf("busbranch: allocate admittance: %w", err)
	}
	for _, br := range branches {
		i, ok := index[br.From]
		if !ok {
			return nil, fmt.Errorf("busbranch: bus %q of %q has no index: %w", br.From, br.MRID, ErrInvariant)
		}
		j, ok := index[br.To]
		if !ok {
			return nil, fmt.Errorf("busbranch: bus %q of %q has no index: %w", br.To, br.MRID, ErrInvariant)
		}
		if err = stamp(y, i, j, br.Series(), br.Shunt()); err != nil {
			return nil, fmt.Errorf("busbranch: stamp %q: %w", br.MRID, err)
		}
	}

	log.Info("admittance matrix assembled",
		zap.Int("buses", len(buses)),
		zap.Int("branches", len(branches)),
		zap.Int("skipped", len(skipped)))

	return &Model{
		buses:    buses,
		index:    index,
		members:  t.Groups(),
		y:        y,
		branches: branches,
		skipped:  skipped,
	}, nil
}

// lineOf resolves the equipment behind term and reports whether it is an AC
// line segment.
func lineOf(src *cim.Model, term string) (*cim.Asset, bool) {
	ta, ok := src.Asset(term)
	if !ok {
		return nil, false
	}
	eqID, ok := ta.Equipment()
	if !ok {
		return nil, false
	}
	eq, ok := src.Asset(eqID)
	if !ok {
		return nil, false
	}
	switch eq.Kind() {
	case cim.KindACLineSegment:
		return eq, true
	case cim.KindConnectivityNode, cim.KindTerminal, cim.KindBreaker, cim.KindDisconnector, cim.KindOther:
		return nil, false
	}

	return nil, false
}

// collect turns a line segment seen from term on bus into a Branch, or tells
// why it cannot contribute.
func collect(src *cim.Model, line *cim.Asset, term, bus string, owner map[string]string) (Branch, SkipReason) {
	if len(src.Terminals(line.MRID())) != 2 {
		return Branch{}, SkipTerminalCount
	}
	far, ok := src.OtherTerminal(line.MRID(), term)
	if !ok {
		return Branch{}, SkipTerminalCount
	}
	to, ok := owner[far]
	if !ok {
		return Branch{}, SkipDanglingEnd
	}

	seg, _ := line.LineSegment()
	br := Branch{
		MRID: line.MRID(),
		From: bus,
		To:   to,
		R:    fallback(seg.R, seg.R0),
		X:    fallback(seg.X, seg.X0),
		Gch:  fallback(seg.Gch, seg.G0ch),
		Bch:  fallback(seg.Bch, seg.B0ch),
	}
	if br.R*br.R+br.X*br.X == 0 {
		return Branch{}, SkipDegenerate
	}

	return br, 0
}

// fallback returns v, or the zero-sequence value when v is zero.
func fallback(v, zero float64) float64 {
	if v == 0 {
		return zero
	}

	return v
}

func stamp(y *matrix.Dense, i, j int, series, shunt complex128) error {
	if err := y.Add(i, i, series+shunt); err != nil {
		return err
	}
	if err := y.Add(j, j, series+shunt); err != nil {
		return err
	}
	if err := y.Add(i, j, -series); err != nil {
		return err
	}

	return y.Add(j, i, -series)
}
