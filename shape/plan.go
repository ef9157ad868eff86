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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"bridgegad"
	"bridgegad/drawing"
)

// planOffset shifts plan-view geometry below the elevation view.
var planOffset = matrix.Translate(0, PlanOffsetY)

func planPoint(x, y float64) vec.Vec2 {
	px, py := planOffset.Apply(x, y)
	return vec.Vec2{X: px, Y: py}
}

// PlanOutline builds the deck outline of the plan view.  The outline spans
// chainage 0 to LBRIDGE (the stated total length; plan extent follows the
// stated length, elevation geometry the span-derived one).  With zero skew
// the outline is an axis-aligned rectangle of width BRIDGEW; with nonzero
// skew the far edge is displaced along the axis by BRIDGEW*tan(SKEW),
// turning the outline into a parallelogram.  The displacement vanishes
// continuously as the skew approaches zero.
func PlanOutline(p *bridgegad.Params, f bridgegad.Frame) ([]drawing.Entity, error) {
	x1 := f.HPos(0)
	x2 := f.HPos(p.LBridge)
	halfW := p.BridgeW / 2 * f.Scale
	skewOff := p.BridgeW * math.Tan(p.Skew*math.Pi/180) * f.Scale

	corners := []vec.Vec2{
		planPoint(x1, -halfW),
		planPoint(x2, -halfW+skewOff),
		planPoint(x2, halfW+skewOff),
		planPoint(x1, halfW),
	}

	outline := &drawing.Polyline{
		Layer:  drawing.LayerStructure,
		Points: corners,
		Closed: true,
	}
	return []drawing.Entity{outline}, nil
}

// PlanCenterline builds the bridge centerline of the plan view.
func PlanCenterline(p *bridgegad.Params, f bridgegad.Frame) ([]drawing.Entity, error) {
	cl := &drawing.Line{
		Layer: drawing.LayerCenterlines,
		P1:    planPoint(f.HPos(0), 0),
		P2:    planPoint(f.HPos(p.LBridge), 0),
	}
	return []drawing.Entity{cl}, nil
}

// PlanPiers builds the pier markers of the plan view: one rectangle per
// interior pier, slightly wider than the deck, each labeled "P1", "P2", …
// centered on the marker.  Single-span bridges produce no markers.
func PlanPiers(p *bridgegad.Params, f bridgegad.Frame) ([]drawing.Entity, error) {
	if p.NSpan <= 1 {
		return nil, nil
	}

	halfW := p.PierWidth / 2 * f.Scale
	halfL := (p.BridgeW + 1) / 2 * f.Scale

	var ee []drawing.Entity
	for i := 1; i < p.NSpan; i++ {
		x := f.HPos(p.AbtL + float64(i)*p.Span1)

		ee = append(ee, &drawing.Polyline{
			Layer: drawing.LayerStructure,
			Points: []vec.Vec2{
				planPoint(x-halfW, -halfL),
				planPoint(x+halfW, -halfL),
				planPoint(x+halfW, halfL),
				planPoint(x-halfW, halfL),
			},
			Closed: true,
		})
		ee = append(ee, &drawing.Text{
			Layer:   drawing.LayerAnnotations,
			Pos:     planPoint(x, 0),
			Content: fmt.Sprintf("P%d", i),
			Height:  2.5,
			Style:   drawing.StyleMainText,
		})
	}
	return ee, nil
}
