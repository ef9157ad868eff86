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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Frame maps real-world bridge coordinates (chainage along the bridge axis,
// elevation level) to drawing-space coordinates.  The horizontal axis is
// chainage scaled by the drawing scale; the vertical axis is the elevation
// above the datum level, scaled the same way:
//
//	x = chainage * scale
//	y = (level - datum) * scale
//
// A Frame is a pure value.  Elevation and plan geometry stay aligned along
// the horizontal axis exactly because every builder goes through the same
// Frame.
type Frame struct {
	Scale float64
	Datum float64

	m matrix.Matrix
}

// NewFrame returns the frame for the given scale ratio and datum level.
func NewFrame(scale, datum float64) Frame {
	m := matrix.Scale(scale, scale).Mul(matrix.Translate(0, -datum*scale))
	return Frame{Scale: scale, Datum: datum, m: m}
}

// HPos converts a chainage to a horizontal drawing coordinate.
func (f Frame) HPos(chainage float64) float64 {
	x, _ := f.m.Apply(chainage, 0)
	return x
}

// VPos converts an elevation level to a vertical drawing coordinate.
func (f Frame) VPos(level float64) float64 {
	_, y := f.m.Apply(0, level)
	return y
}

// Point converts a (chainage, level) pair to a drawing-space point.
func (f Frame) Point(chainage, level float64) vec.Vec2 {
	x, y := f.m.Apply(chainage, level)
	return vec.Vec2{X: x, Y: y}
}
