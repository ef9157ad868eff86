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

// Package drawing defines the document model a bridge drawing is assembled
// into: a fixed table of layers, text styles and dimension styles, and an
// insertion-ordered sequence of drawing entities.  A downstream exchange
// writer serializes the document; the model itself is format-agnostic.
package drawing

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Entity is a single drawing primitive.  The concrete types are [Line],
// [Polyline], [Hatch], [Text] and [LinearDim]; no other implementations
// exist.  Every entity carries the name of the layer it is drawn on.
type Entity interface {
	// EntityLayer returns the name of the layer the entity belongs to.
	EntityLayer() string

	// Bounds returns the bounding box of the entity's geometry.
	Bounds() rect.Rect

	isEntity()
}

// Line is a straight line segment.
type Line struct {
	Layer  string
	P1, P2 vec.Vec2
}

func (l *Line) EntityLayer() string { return l.Layer }

func (l *Line) Bounds() rect.Rect {
	return pointBounds([]vec.Vec2{l.P1, l.P2})
}

func (*Line) isEntity() {}

// Polyline is a sequence of connected line segments, optionally closed.
type Polyline struct {
	Layer  string
	Points []vec.Vec2
	Closed bool
}

func (p *Polyline) EntityLayer() string { return p.Layer }

func (p *Polyline) Bounds() rect.Rect {
	return pointBounds(p.Points)
}

func (*Polyline) isEntity() {}

// Hatch is a pattern fill of the region enclosed by Boundary.
type Hatch struct {
	Layer    string
	Boundary []vec.Vec2

	// Pattern is the name of the hatch pattern, e.g. "ANSI31".
	Pattern      string
	PatternScale float64

	// Color is the CAD color index of the fill.
	Color int
}

func (h *Hatch) EntityLayer() string { return h.Layer }

func (h *Hatch) Bounds() rect.Rect {
	return pointBounds(h.Boundary)
}

func (*Hatch) isEntity() {}

// Text is a text label.
type Text struct {
	Layer   string
	Pos     vec.Vec2
	Content string
	Height  float64

	// Style is the name of the text style, e.g. "MAIN_TEXT".
	Style string

	// Rotation is the text rotation in degrees, counter-clockwise.
	Rotation float64
}

func (t *Text) EntityLayer() string { return t.Layer }

func (t *Text) Bounds() rect.Rect {
	return pointBounds([]vec.Vec2{t.Pos})
}

func (*Text) isEntity() {}

// LinearDim is a linear dimension measuring the distance between P1 and
// P2, with the dimension line placed through Base.
type LinearDim struct {
	Layer string
	Base  vec.Vec2
	P1    vec.Vec2
	P2    vec.Vec2

	// Style is the name of the dimension style, e.g. "PROFESSIONAL".
	Style string
}

func (d *LinearDim) EntityLayer() string { return d.Layer }

func (d *LinearDim) Bounds() rect.Rect {
	return pointBounds([]vec.Vec2{d.Base, d.P1, d.P2})
}

func (*LinearDim) isEntity() {}

func pointBounds(pp []vec.Vec2) rect.Rect {
	if len(pp) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: pp[0].X, LLy: pp[0].Y, URx: pp[0].X, URy: pp[0].Y}
	for _, p := range pp[1:] {
		if p.X < r.LLx {
			r.LLx = p.X
		}
		if p.X > r.URx {
			r.URx = p.X
		}
		if p.Y < r.LLy {
			r.LLy = p.Y
		}
		if p.Y > r.URy {
			r.URy = p.Y
		}
	}
	return r
}
