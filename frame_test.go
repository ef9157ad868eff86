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

package bridgegad

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestFrameFixedPoints(t *testing.T) {
	f := NewFrame(2, 100)

	if got := f.HPos(0); got != 0 {
		t.Errorf("HPos(0) = %g, want 0", got)
	}
	if got := f.VPos(100); got != 0 {
		t.Errorf("VPos(datum) = %g, want 0", got)
	}
	if got := f.Point(0, 100); got != (vec.Vec2{}) {
		t.Errorf("Point(0, datum) = %v, want origin", got)
	}
}

func TestFrameLinear(t *testing.T) {
	frames := []Frame{
		NewFrame(1, 0),
		NewFrame(2, 100),
		NewFrame(0.5, -20),
	}
	args := []float64{-100, -1, 0, 0.25, 1, 30, 1e6}

	for _, f := range frames {
		for _, a := range args {
			for _, b := range args {
				got := f.HPos(a + b)
				want := f.HPos(a) + f.HPos(b)
				if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
					t.Errorf("HPos not additive at %g+%g: got %g, want %g", a, b, got, want)
				}
			}

			// VPos is affine in the level with slope scale
			got := f.VPos(a+1) - f.VPos(a)
			if math.Abs(got-f.Scale) > 1e-9*math.Max(1, math.Abs(f.Scale)) {
				t.Errorf("VPos slope at %g: got %g, want %g", a, got, f.Scale)
			}
		}
	}
}

func TestFramePointAgrees(t *testing.T) {
	f := NewFrame(2, 100)
	for _, ch := range []float64{0, 15, 90} {
		for _, level := range []float64{98, 100, 105} {
			got := f.Point(ch, level)
			want := vec.Vec2{X: f.HPos(ch), Y: f.VPos(level)}
			if got != want {
				t.Errorf("Point(%g, %g) = %v, want %v", ch, level, got, want)
			}
		}
	}
}
