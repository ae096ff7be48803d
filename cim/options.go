// SPDX-License-Identifier: MIT

package cim

import "go.uber.org/zap"

// Option configures model loading.
type Option func(*Options)

// Options holds loader settings. Use DefaultOptions and the WithX helpers.
type Options struct {
	// Logger receives load summaries. Never nil after DefaultOptions.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger used while loading. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
