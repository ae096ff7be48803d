// SPDX-License-Identifier: MIT

package busbranch

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for admittance assembly.
var (
	// ErrNilTopology is returned when Build receives a nil topology.
	ErrNilTopology = errors.New("busbranch: topology is nil")

	// ErrInvariant indicates an internal inconsistency in the topology, such
	// as a bus with terminals that is missing from the bus ordering.
	ErrInvariant = errors.New("busbranch: topology invariant violated")
)

// Option configures Build.
type Option func(*Options)

// Options holds builder settings.
type Options struct {
	// Logger receives skipped segments at Debug and a summary at Info.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the builder logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Branch is a line segment that contributed to the admittance matrix. R, X,
// Gch and Bch are the effective values after the zero-sequence fallback.
type Branch struct {
	MRID     string
	From, To string // buses, From ≤ To is not guaranteed
	R, X     float64
	Gch, Bch float64
}

// Series returns the series admittance 1/(R + jX).
func (b Branch) Series() complex128 {
	d := b.R*b.R + b.X*b.X
	return complex(b.R/d, -b.X/d)
}

// Shunt returns the per-end shunt admittance Gch/2 + j·Bch/2.
func (b Branch) Shunt() complex128 {
	return complex(b.Gch/2, b.Bch/2)
}

// SkipReason tells why a line segment did not contribute.
type SkipReason uint8

const (
	// SkipDegenerate marks a segment with r² + x² == 0 after fallback.
	SkipDegenerate SkipReason = iota + 1
	// SkipTerminalCount marks a segment without exactly two terminals.
	SkipTerminalCount
	// SkipDanglingEnd marks a segment whose far end is on no known bus.
	SkipDanglingEnd
)

// String returns a short label for the reason.
func (r SkipReason) String() string {
	switch r {
	case SkipDegenerate:
		return "degenerate impedance"
	case SkipTerminalCount:
		return "terminal count"
	case SkipDanglingEnd:
		return "dangling end"
	default:
		return "unknown"
	}
}

// Skip records a line segment left out of the matrix.
type Skip struct {
	MRID   string
	Reason SkipReason
}
