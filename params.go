// bridgegad - a library for generating bridge general arrangement drawings
// Copyright (C) 2026  The bridgegad authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package bridgegad

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Kind describes the numeric type of a design parameter.
type Kind int

const (
	Int Kind = iota + 1
	Float
)

// Definition describes one design parameter: its numeric kind, the range
// accepted by the upstream validator, and the default used when the
// parameter is absent from the input.
type Definition struct {
	Name        string
	Kind        Kind
	Min, Max    float64
	Default     float64
	Description string
}

// definitions is the fixed table of design parameters.  The names form the
// input contract: callers hand the library a map from these names to
// numeric values.
var definitions = map[string]Definition{
	// bridge geometry
	"NSPAN":   {"NSPAN", Int, 1, 51, 3, "Number of spans"},
	"SPAN1":   {"SPAN1", Float, 3, 100, 30, "Span length (m)"},
	"LBRIDGE": {"LBRIDGE", Float, 3, 1000, 90, "Total bridge length (m)"},
	"BRIDGEW": {"BRIDGEW", Float, 6, 30, 12, "Bridge width (m)"},
	"SKEW":    {"SKEW", Float, 0, 45, 0, "Skew angle (degrees)"},

	// levels
	"RTL":   {"RTL", Float, 90, 200, 105, "Riding surface level (m)"},
	"DATUM": {"DATUM", Float, 80, 150, 100, "Drawing datum level (m)"},
	"ABTL":  {"ABTL", Float, 0, 100, 0, "Left abutment chainage (m)"},

	// deck
	"DECKT": {"DECKT", Float, 0.8, 3, 1.2, "Deck thickness (m)"},

	// piers
	"CAPT":       {"CAPT", Float, 90, 200, 104, "Pier cap top level (m)"},
	"CAPB":       {"CAPB", Float, 85, 195, 102, "Pier cap bottom level (m)"},
	"CAPW":       {"CAPW", Float, 0.8, 3, 1.2, "Pier cap width (m)"},
	"PIERTW":     {"PIERTW", Float, 0.5, 2, 0.8, "Pier top width (m)"},
	"BATTR":      {"BATTR", Float, 3, 20, 6, "Pier batter ratio"},
	"PIER_WIDTH": {"PIER_WIDTH", Float, 1, 5, 2, "Pier width in plan (m)"},

	// pier foundations
	"FUTRL": {"FUTRL", Float, 80, 150, 98, "Foundation top level (m)"},
	"FUTD":  {"FUTD", Float, 0.5, 3, 1, "Foundation depth (m)"},
	"FUTW":  {"FUTW", Float, 1.5, 5, 2.5, "Foundation width (m)"},

	// abutments
	"ABUT_HEIGHT": {"ABUT_HEIGHT", Float, 3, 15, 6, "Abutment height (m)"},
	"ABUT_WIDTH":  {"ABUT_WIDTH", Float, 1, 3, 1.5, "Abutment width (m)"},
	"FOOT_LENGTH": {"FOOT_LENGTH", Float, 4, 15, 8, "Abutment footing length (m)"},
	"FOOT_THICK":  {"FOOT_THICK", Float, 0.8, 2.5, 1.2, "Abutment footing thickness (m)"},

	// approach slabs
	"APPR_LENGTH": {"APPR_LENGTH", Float, 5, 15, 8, "Approach slab length (m)"},
	"APPR_THICK":  {"APPR_THICK", Float, 0.2, 0.6, 0.3, "Approach slab thickness (m)"},

	// drawing scale
	"SCALE1": {"SCALE1", Float, 50, 1000, 100, "Drawing scale numerator"},
	"SCALE2": {"SCALE2", Float, 25, 200, 50, "Drawing scale denominator"},
}

// Definitions returns the parameter table in sorted name order.
func Definitions() []Definition {
	names := maps.Keys(definitions)
	slices.Sort(names)
	res := make([]Definition, len(names))
	for i, name := range names {
		res[i] = definitions[name]
	}
	return res
}

// Params is the fully-typed form of a parameter set.  All defaulting has
// already happened by the time a Params exists; the geometry builders read
// the fields directly and never fall back to defaults themselves.
//
// All lengths and levels are in metres, the skew angle in degrees.
type Params struct {
	NSpan   int
	Span1   float64
	LBridge float64
	BridgeW float64
	Skew    float64

	RTL   float64
	Datum float64
	AbtL  float64

	DeckT float64

	CapT      float64
	CapB      float64
	CapW      float64
	PierTW    float64
	Battr     float64
	PierWidth float64

	FutRL float64
	FutD  float64
	FutW  float64

	AbutHeight float64
	AbutWidth  float64
	FootLength float64
	FootThick  float64

	ApprLength float64
	ApprThick  float64

	Scale1 float64
	Scale2 float64
}

// Resolve turns a raw name/value mapping into a fully-typed Params.
//
// Every parameter missing from raw is filled in from the table default, and
// one Note per defaulted parameter is returned so that missing input is
// visible to the caller.  Keys not present in the parameter table are
// ignored, again with a Note.  Resolve checks the structural invariants
// that later geometry depends on (span count, batter ratio, scale sign) and
// reports a violation as a *GeometryError.
func Resolve(raw map[string]float64) (*Params, []Note, error) {
	var notes []Note

	values := make(map[string]float64, len(definitions))
	for _, def := range Definitions() {
		v, ok := raw[def.Name]
		if !ok {
			v = def.Default
			notes = append(notes, Note{
				Feature: "params",
				Message: fmt.Sprintf("%s missing, using default %g", def.Name, def.Default),
			})
		}
		values[def.Name] = v
	}

	unknown := maps.Keys(raw)
	slices.Sort(unknown)
	for _, name := range unknown {
		if _, ok := definitions[name]; !ok {
			notes = append(notes, Note{
				Feature: "params",
				Message: fmt.Sprintf("unknown parameter %s ignored", name),
			})
		}
	}

	p := &Params{
		NSpan:   int(values["NSPAN"]),
		Span1:   values["SPAN1"],
		LBridge: values["LBRIDGE"],
		BridgeW: values["BRIDGEW"],
		Skew:    values["SKEW"],

		RTL:   values["RTL"],
		Datum: values["DATUM"],
		AbtL:  values["ABTL"],

		DeckT: values["DECKT"],

		CapT:      values["CAPT"],
		CapB:      values["CAPB"],
		CapW:      values["CAPW"],
		PierTW:    values["PIERTW"],
		Battr:     values["BATTR"],
		PierWidth: values["PIER_WIDTH"],

		FutRL: values["FUTRL"],
		FutD:  values["FUTD"],
		FutW:  values["FUTW"],

		AbutHeight: values["ABUT_HEIGHT"],
		AbutWidth:  values["ABUT_WIDTH"],
		FootLength: values["FOOT_LENGTH"],
		FootThick:  values["FOOT_THICK"],

		ApprLength: values["APPR_LENGTH"],
		ApprThick:  values["APPR_THICK"],

		Scale1: values["SCALE1"],
		Scale2: values["SCALE2"],
	}

	if p.NSpan < 1 {
		return nil, notes, &GeometryError{
			Feature: "spans",
			Reason:  fmt.Sprintf("span count %d is less than 1", p.NSpan),
		}
	}
	if p.NSpan > 1 && p.Battr == 0 {
		return nil, notes, &GeometryError{
			Feature: "pier",
			Reason:  "batter ratio BATTR is zero",
		}
	}
	if p.Scale1 <= 0 || p.Scale2 <= 0 {
		return nil, notes, &GeometryError{
			Feature: "scale",
			Reason:  fmt.Sprintf("scale ratio %g:%g is not positive", p.Scale1, p.Scale2),
		}
	}

	return p, notes, nil
}

// BridgeLength is the right-hand bridge extent derived from the span
// configuration.  This is the value all geometry uses; the separately
// supplied LBRIDGE parameter may disagree with it, which is a concern of
// the upstream validator, not of the geometry builders.
func (p *Params) BridgeLength() float64 {
	return p.AbtL + float64(p.NSpan)*p.Span1
}

// Frame returns the coordinate frame implied by the scale and datum
// parameters.  All builders working on one document must share this frame.
func (p *Params) Frame() Frame {
	return NewFrame(p.Scale1/p.Scale2, p.Datum)
}

// Info is a human-readable summary of a parameter set, suitable for
// display next to a generated drawing.
type Info struct {
	BridgeType    string
	Spans         int
	TotalLength   string
	BridgeWidth   string
	SkewAngle     string
	DeckThickness string
	RidingLevel   string
	DatumLevel    string
}

// Info summarizes the parameter set.
func (p *Params) Info() Info {
	return Info{
		BridgeType:    "Slab Bridge",
		Spans:         p.NSpan,
		TotalLength:   fmt.Sprintf("%.2f m", p.LBridge),
		BridgeWidth:   fmt.Sprintf("%.2f m", p.BridgeW),
		SkewAngle:     fmt.Sprintf("%.1f°", p.Skew),
		DeckThickness: fmt.Sprintf("%.2f m", p.DeckT),
		RidingLevel:   fmt.Sprintf("%.2f m", p.RTL),
		DatumLevel:    fmt.Sprintf("%.2f m", p.Datum),
	}
}
