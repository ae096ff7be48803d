// SPDX-License-Identifier: MIT

package cim

import (
	"errors"
	"fmt"
)

// Sentinel errors for model loading.
var (
	// ErrNilReader indicates that Decode was called with a nil io.Reader.
	ErrNilReader = errors.New("cim: reader is nil")

	// ErrMalformed indicates unparsable input or a record missing a required field.
	ErrMalformed = errors.New("cim: malformed record set")

	// ErrDuplicateMRID indicates that two records carry the same mrid.
	ErrDuplicateMRID = errors.New("cim: duplicate mrid")
)

// recordErrorf wraps err with the position and mrid of the offending record.
func recordErrorf(index int, mrid string, err error, format string, args ...interface{}) error {
	if mrid == "" {
		return fmt.Errorf("record %d: %s: %w", index, fmt.Sprintf(format, args...), err)
	}

	return fmt.Errorf("record %d (%s): %s: %w", index, mrid, fmt.Sprintf(format, args...), err)
}
