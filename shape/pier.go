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
	"fmt"

	"seehuhn.de/go/geom/vec"

	"bridgegad"
	"bridgegad/drawing"
)

// Piers builds the elevation view of the piers.  A bridge with NSPAN spans
// has NSPAN-1 piers, one at each interior span boundary; for a single span
// the result is empty.
//
// Each pier consists of a cap rectangle, a tapered shaft and a footing
// rectangle.  The shaft is drawn as its two battered boundary lines: the
// half-width grows linearly from PIERTW/2 at the cap underside to
// PIERTW/2 + height/BATTR at the footing top, where height is
// CAPB - FUTRL - FUTD.  A negative height means the cap underside lies
// below the footing top, which is not a drawable pier; Piers reports this
// as a *bridgegad.GeometryError.
func Piers(p *bridgegad.Params, f bridgegad.Frame) ([]drawing.Entity, error) {
	if p.NSpan <= 1 {
		return nil, nil
	}
	if p.Battr == 0 {
		return nil, &bridgegad.GeometryError{
			Feature: "pier",
			Reason:  "batter ratio BATTR is zero",
		}
	}

	height := p.CapB - p.FutRL - p.FutD
	if height < 0 {
		return nil, &bridgegad.GeometryError{
			Feature: "pier",
			Reason:  fmt.Sprintf("cap bottom %g lies %g below footing top %g", p.CapB, -height, p.FutRL+p.FutD),
		}
	}

	// The taper term is added in level units, not drawing units.  This
	// mirrors the long-standing behavior downstream drawings are checked
	// against, so it is kept as is.
	topHalf := p.PierTW * f.Scale / 2
	bottomHalf := topHalf + height/p.Battr

	var ee []drawing.Entity
	for i := 1; i < p.NSpan; i++ {
		ch := p.AbtL + float64(i)*p.Span1
		x := f.HPos(ch)

		// cap
		ee = append(ee, rectangle(drawing.LayerStructure,
			vec.Vec2{X: x - p.CapW*f.Scale/2, Y: f.VPos(p.CapT)},
			vec.Vec2{X: x + p.CapW*f.Scale/2, Y: f.VPos(p.CapB)}))

		// battered shaft, cap underside down to footing top
		yTop := f.VPos(p.CapB)
		yBottom := f.VPos(p.FutRL + p.FutD)
		ee = append(ee, &drawing.Line{
			Layer: drawing.LayerStructure,
			P1:    vec.Vec2{X: x - topHalf, Y: yTop},
			P2:    vec.Vec2{X: x - bottomHalf, Y: yBottom},
		})
		ee = append(ee, &drawing.Line{
			Layer: drawing.LayerStructure,
			P1:    vec.Vec2{X: x + topHalf, Y: yTop},
			P2:    vec.Vec2{X: x + bottomHalf, Y: yBottom},
		})

		// footing
		ee = append(ee, rectangle(drawing.LayerStructure,
			vec.Vec2{X: x - p.FutW*f.Scale/2, Y: yBottom},
			vec.Vec2{X: x + p.FutW*f.Scale/2, Y: f.VPos(p.FutRL)}))
	}
	return ee, nil
}
