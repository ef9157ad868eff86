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

// Hatch pattern for deck cross sections.
const (
	deckHatchPattern = "ANSI31"
	deckHatchScale   = 0.5
	deckHatchColor   = 8
)

// Deck builds the elevation view of the deck slab: one closed rectangle
// plus one hatch fill per span.  The spans are contiguous along the
// chainage axis, span i covering ABTL + i*SPAN1 to ABTL + (i+1)*SPAN1,
// with the deck top at RTL and the underside at RTL - DECKT.
func Deck(p *bridgegad.Params, f bridgegad.Frame) ([]drawing.Entity, error) {
	var ee []drawing.Entity
	for i := 0; i < p.NSpan; i++ {
		left := p.AbtL + float64(i)*p.Span1
		right := left + p.Span1

		outline := rectangle(drawing.LayerStructure,
			f.Point(left, p.RTL),
			f.Point(right, p.RTL-p.DeckT))
		ee = append(ee, outline)

		ee = append(ee, &drawing.Hatch{
			Layer:        drawing.LayerHatching,
			Boundary:     outline.Points,
			Pattern:      deckHatchPattern,
			PatternScale: deckHatchScale,
			Color:        deckHatchColor,
		})
	}
	return ee, nil
}
