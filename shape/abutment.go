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

package shape

import (
	"bridgegad"
	"bridgegad/drawing"
)

// Abutments builds the elevation view of the two abutments.  The left
// abutment sits at chainage ABTL, the right one at the span-derived bridge
// end ABTL + NSPAN*SPAN1; both stems extend outwards from the deck.  Each
// abutment is a stem rectangle from RTL down to RTL - ABUT_HEIGHT and a
// footing rectangle of length FOOT_LENGTH and thickness FOOT_THICK
// centered under the stem.
func Abutments(p *bridgegad.Params, f bridgegad.Frame) ([]drawing.Entity, error) {
	stemTop := p.RTL
	stemBottom := p.RTL - p.AbutHeight
	footBottom := stemBottom - p.FootThick

	var ee []drawing.Entity

	// left abutment, stem extending to the left of ABTL
	leftCenter := p.AbtL - p.AbutWidth/2
	ee = append(ee, rectangle(drawing.LayerStructure,
		f.Point(p.AbtL-p.AbutWidth, stemTop),
		f.Point(p.AbtL, stemBottom)))
	ee = append(ee, rectangle(drawing.LayerStructure,
		f.Point(leftCenter-p.FootLength/2, footBottom),
		f.Point(leftCenter+p.FootLength/2, stemBottom)))

	// right abutment, stem extending to the right of the bridge end
	end := p.BridgeLength()
	rightCenter := end + p.AbutWidth/2
	ee = append(ee, rectangle(drawing.LayerStructure,
		f.Point(end, stemTop),
		f.Point(end+p.AbutWidth, stemBottom)))
	ee = append(ee, rectangle(drawing.LayerStructure,
		f.Point(rightCenter-p.FootLength/2, footBottom),
		f.Point(rightCenter+p.FootLength/2, stemBottom)))

	return ee, nil
}
