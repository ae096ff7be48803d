// SPDX-License-Identifier: MIT

package topology

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for topology reduction.
var (
	// ErrNilModel is returned when Reduce receives a nil model.
	ErrNilModel = errors.New("topology: model is nil")
)

// Option configures Reduce.
type Option func(*Options)

// Options holds reducer settings.
type Options struct {
	// Logger receives per-element recoveries at Debug and a summary at Info.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the reducer logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
