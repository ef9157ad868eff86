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

// Package assemble sequences the shape and annotation builders into one
// complete drawing document.
//
// Generation is strictly sequential and synchronous: entity insertion
// order determines layering, and annotation placement refers to positions
// computed earlier in the build.  One call to [Generate] either yields a
// complete document together with a build report, or fails as a whole; a
// partially built document is never returned.
package assemble

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/vec"

	"bridgegad"
	"bridgegad/annotate"
	"bridgegad/drawing"
	"bridgegad/shape"
)

// The geometric scale is always normalized to this fixed pair before
// building, independent of the display scale the caller selected.  The
// title block can therefore state "1:200" while the geometry is generated
// at 100:50.  This mirrors the behavior downstream drawings are checked
// against; the divergence is surfaced in the build report.
const (
	internalScale1 = 100.0
	internalScale2 = 50.0
)

// northArrowPos is where the north arrow is placed, near the plan view.
var northArrowPos = vec.Vec2{X: 300, Y: -100}

// Report is the diagnostics side of a generation call: everything that
// was defaulted, skipped or found inconsistent without being fatal.
type Report struct {
	// ID identifies one generation call, for correlating the report
	// with the drawing it belongs to.
	ID string

	// Notes lists the non-fatal events in the order they occurred.
	Notes []bridgegad.Note
}

type generator struct {
	doc    *drawing.Document
	report *Report
}

func (g *generator) note(feature, format string, args ...any) {
	g.report.Notes = append(g.report.Notes, bridgegad.Note{
		Feature: feature,
		Message: fmt.Sprintf(format, args...),
	})
}

// addStructural appends the output of a structural builder.  A hatch the
// document rejects is skipped with a note; any other rejected entity makes
// the whole feature invalid.
func (g *generator) addStructural(feature string, ee []drawing.Entity) error {
	for _, e := range ee {
		if err := g.doc.Add(e); err != nil {
			if _, ok := e.(*drawing.Hatch); ok {
				g.note(feature, "hatch skipped: %v", err)
				continue
			}
			return &bridgegad.GeometryError{Feature: feature, Reason: err.Error()}
		}
	}
	return nil
}

// addOptional appends the output of an optional builder.  Rejected
// entities are skipped individually with a note.
func (g *generator) addOptional(feature string, ee []drawing.Entity) {
	for _, e := range ee {
		if err := g.doc.Add(e); err != nil {
			g.note(feature, "skipped: %v", err)
		}
	}
}

// Generate builds the complete general arrangement drawing for the given
// raw parameter set.  A nil opts is equivalent to
// [bridgegad.DefaultOptions].
//
// The build order is fixed: elevation (deck, piers, abutments, approach
// slabs), plan (outline, centerline, pier markers), then dimensions, title
// block and annotations as enabled by opts.
//
// On success the returned document is complete and must not be modified;
// the report lists every defaulted parameter and skipped sub-feature.  On
// failure both document and report are nil and the error is a
// *bridgegad.ConfigurationError or *bridgegad.GeometryError naming the
// offending option or feature.
func Generate(raw map[string]float64, opts *bridgegad.Options) (*drawing.Document, *Report, error) {
	if opts == nil {
		opts = bridgegad.DefaultOptions()
	} else if opts.Date == "" {
		clone := *opts
		clone.Date = time.Now().Format("2006-01-02")
		opts = &clone
	}
	displayNum, displayDen, err := bridgegad.ParseScale(opts.Scale)
	if err != nil {
		return nil, nil, err
	}

	p, notes, err := bridgegad.Resolve(raw)
	if err != nil {
		return nil, nil, err
	}

	g := &generator{
		doc:    drawing.NewDocument(),
		report: &Report{ID: uuid.NewString(), Notes: notes},
	}

	// normalize the geometric scale to the fixed internal pair
	p.Scale1, p.Scale2 = internalScale1, internalScale2
	if displayNum/displayDen != internalScale1/internalScale2 {
		g.note("scale", "display scale %s differs from internal drawing scale %g:%g",
			opts.Scale, internalScale1, internalScale2)
	}
	if math.Abs(p.LBridge-p.BridgeLength()) > 0.1 {
		g.note("extent", "stated length %g m does not match %d spans of %g m",
			p.LBridge, p.NSpan, p.Span1)
	}

	f := p.Frame()

	structural := []struct {
		name  string
		build func(*bridgegad.Params, bridgegad.Frame) ([]drawing.Entity, error)
	}{
		{"deck", shape.Deck},
		{"piers", shape.Piers},
		{"abutments", shape.Abutments},
		{"approach slabs", shape.ApproachSlabs},
		{"plan outline", shape.PlanOutline},
		{"plan centerline", shape.PlanCenterline},
		{"plan piers", shape.PlanPiers},
	}
	for _, s := range structural {
		ee, err := s.build(p, f)
		if err != nil {
			return nil, nil, err
		}
		if err := g.addStructural(s.name, ee); err != nil {
			return nil, nil, err
		}
	}

	if opts.IncludeDimensions {
		ee, dimNotes := annotate.Dimensions(p, f)
		g.report.Notes = append(g.report.Notes, dimNotes...)
		g.addOptional("dimensions", ee)
	}

	if opts.IncludeTitleBlock {
		ee, err := annotate.TitleBlock(opts)
		if err != nil {
			g.note("title block", "skipped: %v", err)
		} else {
			g.addOptional("title block", ee)
		}
	}

	if opts.IncludeAnnotations {
		ee, err := annotate.Grid(p, f, annotate.GridConfig{})
		if err != nil {
			g.note("grid", "skipped: %v", err)
		} else {
			g.addOptional("grid", ee)
		}

		ee, err = annotate.ViewLabels()
		if err != nil {
			g.note("view labels", "skipped: %v", err)
		} else {
			g.addOptional("view labels", ee)
		}

		ee, err = annotate.NorthArrow(northArrowPos)
		if err != nil {
			g.note("north arrow", "skipped: %v", err)
		} else {
			g.addOptional("north arrow", ee)
		}
	}

	return g.doc, g.report, nil
}
