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
	"seehuhn.de/go/geom/vec"

	"bridgegad/drawing"
)

// ViewLabels builds the static "ELEVATION" and "PLAN" captions next to the
// two views.
func ViewLabels() ([]drawing.Entity, error) {
	return []drawing.Entity{
		&drawing.Text{
			Layer:   drawing.LayerAnnotations,
			Pos:     vec.Vec2{X: -50, Y: 50},
			Content: "ELEVATION",
			Height:  4,
			Style:   drawing.StyleTitleText,
		},
		&drawing.Text{
			Layer:   drawing.LayerAnnotations,
			Pos:     vec.Vec2{X: -50, Y: -150},
			Content: "PLAN",
			Height:  4,
			Style:   drawing.StyleTitleText,
		},
	}, nil
}

// northArrowSize is the height of the north arrow glyph in drawing units.
const northArrowSize = 10.0

// NorthArrow builds a small north arrow glyph with an "N" label above it,
// placed at the given position near the plan view.
func NorthArrow(at vec.Vec2) ([]drawing.Entity, error) {
	s := northArrowSize
	return []drawing.Entity{
		&drawing.Polyline{
			Layer: drawing.LayerAnnotations,
			Points: []vec.Vec2{
				{X: at.X, Y: at.Y + s},
				{X: at.X - s/3, Y: at.Y},
				{X: at.X, Y: at.Y - s/6},
				{X: at.X + s/3, Y: at.Y},
			},
			Closed: true,
		},
		&drawing.Text{
			Layer:   drawing.LayerAnnotations,
			Pos:     vec.Vec2{X: at.X, Y: at.Y + s + 5},
			Content: "N",
			Height:  3,
			Style:   drawing.StyleMainText,
		},
	}, nil
}
