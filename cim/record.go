// SPDX-License-Identifier: MIT
//
// File: record.go
// Role: JSON ingestion of the raw record set.

package cim

import (
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// Record keys of the raw input format.
const (
	keyMRID       = "mrid"
	keyClass      = "cimclass"
	keyFullObject = "fullobject"
)

// Record is one decoded input record: identifier, class tag, and the attribute
// bag formed by merging the record-level fields with its fullobject.
type Record struct {
	MRID       string
	Class      string
	Attributes map[string]interface{}
}

// Decode reads a JSON array of records from r and builds a Model.
//
// Each element must be an object with an "mrid" (string or number) and a
// "cimclass" string. An optional "fullobject" object is merged over the
// record-level fields, so fullobject values win on key collisions.
//
// The input must hold exactly one JSON value; anything after the array is
// ErrMalformed. Returns ErrNilReader, or ErrMalformed wrapped with record context.
func Decode(r io.Reader, opts ...Option) (*Model, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw []map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode record set: %v: %w", err, ErrMalformed)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode record set: trailing data: %w", ErrMalformed)
	}

	records := make([]Record, 0, len(raw))
	for i, obj := range raw {
		rec, err := recordFromObject(i, obj)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return NewModel(records, opts...)
}

// Load opens path and decodes it with Decode.
func Load(path string, opts ...Option) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record set: %w", err)
	}
	defer f.Close()

	m, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// recordFromObject flattens one decoded JSON object into a Record.
func recordFromObject(index int, obj map[string]interface{}) (Record, error) {
	if obj == nil {
		return Record{}, recordErrorf(index, "", ErrMalformed, "record is not an object")
	}
	mrid, ok := textValue(obj[keyMRID])
	if !ok || mrid == "" {
		return Record{}, recordErrorf(index, "", ErrMalformed, "missing %q", keyMRID)
	}
	class, ok := obj[keyClass].(string)
	if !ok || class == "" {
		return Record{}, recordErrorf(index, mrid, ErrMalformed, "missing %q", keyClass)
	}

	attrs := make(map[string]interface{}, len(obj))
	for k, v := range obj {
		if k == keyMRID || k == keyClass || k == keyFullObject {
			continue
		}
		attrs[k] = v
	}
	switch full := obj[keyFullObject].(type) {
	case nil:
		// no nested attributes
	case map[string]interface{}:
		for k, v := range full {
			attrs[k] = v
		}
	default:
		return Record{}, recordErrorf(index, mrid, ErrMalformed, "%q is not an object", keyFullObject)
	}

	return Record{MRID: mrid, Class: class, Attributes: attrs}, nil
}
