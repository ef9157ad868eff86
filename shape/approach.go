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

// ApproachSlabs builds the two approach slabs flanking the bridge: one
// over [ABTL - APPR_LENGTH, ABTL], one over the same length beyond the
// span-derived bridge end, both APPR_THICK thick with their top at RTL.
func ApproachSlabs(p *bridgegad.Params, f bridgegad.Frame) ([]drawing.Entity, error) {
	end := p.BridgeLength()

	spans := [][2]float64{
		{p.AbtL - p.ApprLength, p.AbtL},
		{end, end + p.ApprLength},
	}

	var ee []drawing.Entity
	for _, s := range spans {
		ee = append(ee, rectangle(drawing.LayerStructure,
			f.Point(s[0], p.RTL),
			f.Point(s[1], p.RTL-p.ApprThick)))
	}
	return ee, nil
}
