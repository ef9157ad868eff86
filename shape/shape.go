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

// Package shape builds the structural features of a bridge drawing: the
// deck, piers, abutments and approach slabs of the elevation view, and the
// outline, centerline and pier markers of the plan view.
//
// Each builder is a pure function from a parameter set and a coordinate
// frame to a list of drawing entities.  Builders never touch a document
// directly; the assembler appends their output, so entity order within one
// builder's result is preserved in the final drawing.
package shape

import (
	"seehuhn.de/go/geom/vec"

	"bridgegad/drawing"
)

// PlanOffsetY is the vertical drawing-space offset of the plan view below
// the elevation view.  Both views share the horizontal axis; the offset
// keeps them from overlapping.
const PlanOffsetY = -100.0

// rectangle returns a closed rectangular polyline with opposite corners a
// and b.
func rectangle(layer string, a, b vec.Vec2) *drawing.Polyline {
	return &drawing.Polyline{
		Layer: layer,
		Points: []vec.Vec2{
			{X: a.X, Y: a.Y},
			{X: b.X, Y: a.Y},
			{X: b.X, Y: b.Y},
			{X: a.X, Y: b.Y},
		},
		Closed: true,
	}
}
