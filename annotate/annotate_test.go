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
	"bridgegad"
	"bridgegad/drawing"
)

// testParams returns the reference three-span bridge at scale 100:50.
func testParams() *bridgegad.Params {
	return &bridgegad.Params{
		NSpan:   3,
		Span1:   30,
		LBridge: 90,
		BridgeW: 12,

		RTL:   105,
		Datum: 100,
		AbtL:  0,

		DeckT: 1.2,

		CapT:   104,
		CapB:   102,
		CapW:   1.2,
		PierTW: 0.8,
		Battr:  6,

		FutRL: 98,
		FutD:  1,
		FutW:  2.5,

		AbutHeight: 6,
		AbutWidth:  1.5,
		FootLength: 8,
		FootThick:  1.2,

		ApprLength: 8,
		ApprThick:  0.3,

		Scale1: 100,
		Scale2: 50,
	}
}

func onLayer(ee []drawing.Entity, layer string) []drawing.Entity {
	var res []drawing.Entity
	for _, e := range ee {
		if e.EntityLayer() == layer {
			res = append(res, e)
		}
	}
	return res
}
