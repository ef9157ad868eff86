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
	"math"
	"testing"

	"bridgegad/drawing"
)

func TestAbutments(t *testing.T) {
	p := testParams()
	f := p.Frame()

	ee, err := Abutments(p, f)
	if err != nil {
		t.Fatalf("Abutments: %v", err)
	}
	if len(ee) != 4 {
		t.Fatalf("got %d entities, want 4 (2 stems, 2 footings)", len(ee))
	}

	leftStem := ee[0].Bounds()
	leftFoot := ee[1].Bounds()
	rightStem := ee[2].Bounds()
	rightFoot := ee[3].Bounds()

	end := p.BridgeLength()

	// stems flank the deck, extending away from it
	if leftStem.URx != f.HPos(p.AbtL) || leftStem.LLx != f.HPos(p.AbtL-p.AbutWidth) {
		t.Errorf("left stem spans [%g, %g]", leftStem.LLx, leftStem.URx)
	}
	if rightStem.LLx != f.HPos(end) || rightStem.URx != f.HPos(end+p.AbutWidth) {
		t.Errorf("right stem spans [%g, %g]", rightStem.LLx, rightStem.URx)
	}

	// vertical extents
	if leftStem.URy != f.VPos(p.RTL) || leftStem.LLy != f.VPos(p.RTL-p.AbutHeight) {
		t.Errorf("left stem vertical extent [%g, %g]", leftStem.LLy, leftStem.URy)
	}
	if leftFoot.URy != f.VPos(p.RTL-p.AbutHeight) || leftFoot.LLy != f.VPos(p.RTL-p.AbutHeight-p.FootThick) {
		t.Errorf("left footing vertical extent [%g, %g]", leftFoot.LLy, leftFoot.URy)
	}

	// footings are centered under their stems
	leftStemCenter := (leftStem.LLx + leftStem.URx) / 2
	leftFootCenter := (leftFoot.LLx + leftFoot.URx) / 2
	if math.Abs(leftStemCenter-leftFootCenter) > 1e-9 {
		t.Errorf("left footing centered at %g, stem at %g", leftFootCenter, leftStemCenter)
	}
	rightStemCenter := (rightStem.LLx + rightStem.URx) / 2
	rightFootCenter := (rightFoot.LLx + rightFoot.URx) / 2
	if math.Abs(rightStemCenter-rightFootCenter) > 1e-9 {
		t.Errorf("right footing centered at %g, stem at %g", rightFootCenter, rightStemCenter)
	}

	// footing length
	if got := leftFoot.Dx(); math.Abs(got-p.FootLength*f.Scale) > 1e-9 {
		t.Errorf("left footing length %g, want %g", got, p.FootLength*f.Scale)
	}
}

func TestApproachSlabs(t *testing.T) {
	p := testParams()
	f := p.Frame()

	ee, err := ApproachSlabs(p, f)
	if err != nil {
		t.Fatalf("ApproachSlabs: %v", err)
	}
	if len(ee) != 2 {
		t.Fatalf("got %d slabs, want 2", len(ee))
	}

	end := p.BridgeLength()
	left := ee[0].Bounds()
	right := ee[1].Bounds()

	if left.LLx != f.HPos(p.AbtL-p.ApprLength) || left.URx != f.HPos(p.AbtL) {
		t.Errorf("left slab spans [%g, %g]", left.LLx, left.URx)
	}
	if right.LLx != f.HPos(end) || right.URx != f.HPos(end+p.ApprLength) {
		t.Errorf("right slab spans [%g, %g]", right.LLx, right.URx)
	}
	if left.URy != f.VPos(p.RTL) || left.LLy != f.VPos(p.RTL-p.ApprThick) {
		t.Errorf("left slab vertical extent [%g, %g]", left.LLy, left.URy)
	}
	if right.URy != f.VPos(p.RTL) || right.LLy != f.VPos(p.RTL-p.ApprThick) {
		t.Errorf("right slab vertical extent [%g, %g]", right.LLy, right.URy)
	}

	// slabs sit entirely on STRUCTURE
	for i, e := range ee {
		if e.EntityLayer() != drawing.LayerStructure {
			t.Errorf("slab %d on layer %q", i, e.EntityLayer())
		}
	}
}
