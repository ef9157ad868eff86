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

package annotate

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"bridgegad"
	"bridgegad/drawing"
)

// Dimensions builds the linear dimensions of the elevation view: one
// horizontal dimension per span below the deck, and vertical dimensions
// for the deck thickness and the abutment height to the right of the
// bridge extent.
//
// Dimensions degrade individually: a dimension whose measured points
// coincide cannot be rendered and is skipped with a note, without
// affecting the remaining dimensions.
func Dimensions(p *bridgegad.Params, f bridgegad.Frame) ([]drawing.Entity, []bridgegad.Note) {
	var ee []drawing.Entity
	var notes []bridgegad.Note

	skip := func(name string) {
		notes = append(notes, bridgegad.Note{
			Feature: "dimensions",
			Message: name + " skipped: zero measure",
		})
	}

	// span dimensions, below the deck
	dimY := f.VPos(p.Datum - 10)
	for i := 0; i < p.NSpan; i++ {
		x1 := f.HPos(p.AbtL + float64(i)*p.Span1)
		x2 := f.HPos(p.AbtL + float64(i+1)*p.Span1)
		if x1 == x2 {
			skip(fmt.Sprintf("span %d dimension", i+1))
			continue
		}
		ee = append(ee, &drawing.LinearDim{
			Layer: drawing.LayerDimensions,
			Base:  vec.Vec2{X: x1, Y: dimY},
			P1:    vec.Vec2{X: x1, Y: dimY + 5},
			P2:    vec.Vec2{X: x2, Y: dimY + 5},
			Style: drawing.DimStyleProfessional,
		})
	}

	// vertical dimensions, right of the bridge
	dimX := f.HPos(p.LBridge + 15)

	if y1, y2 := f.VPos(p.RTL-p.DeckT), f.VPos(p.RTL); y1 == y2 {
		skip("deck thickness dimension")
	} else {
		ee = append(ee, &drawing.LinearDim{
			Layer: drawing.LayerDimensions,
			Base:  vec.Vec2{X: dimX, Y: y1},
			P1:    vec.Vec2{X: dimX, Y: y1},
			P2:    vec.Vec2{X: dimX, Y: y2},
			Style: drawing.DimStyleProfessional,
		})
	}

	if y1, y2 := f.VPos(p.RTL-p.AbutHeight), f.VPos(p.RTL); y1 == y2 {
		skip("abutment height dimension")
	} else {
		ee = append(ee, &drawing.LinearDim{
			Layer: drawing.LayerDimensions,
			Base:  vec.Vec2{X: dimX + 2, Y: y1},
			P1:    vec.Vec2{X: dimX + 2, Y: y1},
			P2:    vec.Vec2{X: dimX + 2, Y: y2},
			Style: drawing.DimStyleProfessional,
		})
	}

	return ee, notes
}
