// SPDX-License-Identifier: MIT

// Package report renders a bus-branch model for people (text) and for
// programs (JSON).
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/gridreduce/busbranch"
)

// ErrFormat is returned by Write for an unknown output format.
var ErrFormat = errors.New("report: unknown format")

// Complex is a JSON-friendly complex number.
type Complex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// Bus is one topological node and the connectivity nodes fused into it.
type Bus struct {
	ID      string   `json:"id"`
	Members []string `json:"members"`
}

// Branch is a contributing line segment.
type Branch struct {
	MRID   string  `json:"mrid"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Series Complex `json:"series"`
	Shunt  Complex `json:"shunt"`
}

// Skip is a line segment left out of the matrix.
type Skip struct {
	MRID   string `json:"mrid"`
	Reason string `json:"reason"`
}

// Report is the serialisable summary of a bus-branch model.
type Report struct {
	RunID      string      `json:"run_id,omitempty"`
	Buses      []Bus       `json:"buses"`
	Admittance [][]Complex `json:"admittance"`
	Branches   []Branch    `json:"branches"`
	Skipped    []Skip      `json:"skipped"`
	Islands    [][]string  `json:"islands"`
}

// New collects everything a report shows from m.
func New(m *busbranch.Model) Report {
	r := Report{
		Buses:    make([]Bus, 0, m.Len()),
		Branches: []Branch{},
		Skipped:  []Skip{},
		Islands:  m.Islands(),
	}
	for _, id := range m.Nodes() {
		members, _ := m.Members(id)
		r.Buses = append(r.Buses, Bus{ID: id, Members: members})
	}
	rows := m.Admittance().RawRows()
	r.Admittance = make([][]Complex, len(rows))
	for i, row := range rows {
		r.Admittance[i] = make([]Complex, len(row))
		for j, v := range row {
			r.Admittance[i][j] = toComplex(v)
		}
	}
	for _, br := range m.Branches() {
		r.Branches = append(r.Branches, Branch{
			MRID:   br.MRID,
			From:   br.From,
			To:     br.To,
			Series: toComplex(br.Series()),
			Shunt:  toComplex(br.Shunt()),
		})
	}
	for _, s := range m.Skipped() {
		r.Skipped = append(r.Skipped, Skip{MRID: s.MRID, Reason: s.Reason.String()})
	}
	if r.Islands == nil {
		r.Islands = [][]string{}
	}

	return r
}

func toComplex(v complex128) Complex { return Complex{Re: real(v), Im: imag(v)} }

// Write renders r in format ("text" or "json"). precision is the number of
// significant digits in text output; 0 means the shortest exact form. JSON
// output always carries full precision.
func Write(w io.Writer, r Report, format string, precision int) error {
	switch format {
	case "text":
		return WriteText(w, r, precision)
	case "json":
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("report: %q: %w", format, ErrFormat)
	}
}

// WriteJSON encodes r as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}

// WriteText renders r as a plain-text listing.
func WriteText(w io.Writer, r Report, precision int) error {
	var b strings.Builder
	if r.RunID != "" {
		fmt.Fprintf(&b, "run: %s\n", r.RunID)
	}
	fmt.Fprintf(&b, "buses: %d\n", len(r.Buses))
	for i, bus := range r.Buses {
		fmt.Fprintf(&b, "  %d %s %v\n", i, bus.ID, bus.Members)
	}
	b.WriteString("admittance:\n")
	for _, row := range r.Admittance {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = FormatComplex(v, precision)
		}
		fmt.Fprintf(&b, "  [%s]\n", strings.Join(cells, " "))
	}
	if len(r.Skipped) > 0 {
		b.WriteString("skipped:\n")
		for _, s := range r.Skipped {
			fmt.Fprintf(&b, "  %s (%s)\n", s.MRID, s.Reason)
		}
	}
	fmt.Fprintf(&b, "islands: %d\n", len(r.Islands))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report: write text: %w", err)
	}

	return nil
}

// FormatComplex renders v as "re±imi" with precision significant digits
// (0 for the shortest exact form).
func FormatComplex(v Complex, precision int) string {
	p := precision
	if p == 0 {
		p = -1
	}
	re := strconv.FormatFloat(v.Re, 'g', p, 64)
	im := strconv.FormatFloat(v.Im, 'g', p, 64)
	if !strings.HasPrefix(im, "-") {
		im = "+" + im
	}

	return re + im + "i"
}
