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

	"bridgegad"
	"bridgegad/drawing"
)

// Title block placement, in drawing units from the drawing origin.
const (
	titleX = 200.0
	titleY = 20.0
	titleW = 180.0
	titleH = 60.0
)

// TitleBlock builds the title block: a fixed-size border, the drawing
// title, and four info lines (project, scale, date, preparer).  The scale
// line shows the caller's display scale string verbatim, which need not
// match the geometric scale the drawing was generated at.
func TitleBlock(opts *bridgegad.Options) ([]drawing.Entity, error) {
	var ee []drawing.Entity

	ee = append(ee, &drawing.Polyline{
		Layer: drawing.LayerStructure,
		Points: []vec.Vec2{
			{X: titleX, Y: titleY},
			{X: titleX + titleW, Y: titleY},
			{X: titleX + titleW, Y: titleY + titleH},
			{X: titleX, Y: titleY + titleH},
		},
		Closed: true,
	})

	ee = append(ee, &drawing.Text{
		Layer:   drawing.LayerAnnotations,
		Pos:     vec.Vec2{X: titleX + 5, Y: titleY + titleH - 15},
		Content: opts.DrawingTitle,
		Height:  4,
		Style:   drawing.StyleTitleText,
	})

	info := []string{
		"Project: " + opts.ProjectName,
		"Scale: " + opts.Scale,
		"Date: " + opts.Date,
		"Drawn by: " + opts.PreparedBy,
	}
	for i, line := range info {
		ee = append(ee, &drawing.Text{
			Layer:   drawing.LayerAnnotations,
			Pos:     vec.Vec2{X: titleX + 5, Y: titleY + 30 - float64(i)*8},
			Content: line,
			Height:  2.5,
			Style:   drawing.StyleMainText,
		})
	}

	return ee, nil
}
