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

// Package annotate builds the non-structural parts of a bridge drawing:
// reference grid, dimensions, title block, view labels and the north
// arrow.  Like the shape builders, every function here is pure and returns
// a list of entities for the assembler to append.
package annotate

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"bridgegad"
	"bridgegad/drawing"
)

// GridConfig controls the spacing of the reference grid.
type GridConfig struct {
	// LevelStep is the elevation increment between horizontal grid
	// lines, in metres.  Zero means the default of 1.
	LevelStep float64

	// ChainageStep is the chainage increment between vertical grid
	// lines, in metres.  Zero means the default of 10.
	ChainageStep float64
}

const (
	defaultLevelStep    = 1.0
	defaultChainageStep = 10.0
)

// Grid builds the reference grid behind the elevation view: horizontal
// lines at fixed level increments from the datum up to the riding level,
// each labeled "RL <level>", and vertical lines at fixed chainage
// increments across the bridge and approach extent, each labeled
// "Ch <chainage>" rotated 90 degrees.  Grid lines go on the GRID layer (dashed), labels on
// ANNOTATIONS.
func Grid(p *bridgegad.Params, f bridgegad.Frame, cfg GridConfig) ([]drawing.Entity, error) {
	levelStep := cfg.LevelStep
	if levelStep <= 0 {
		levelStep = defaultLevelStep
	}
	chainageStep := cfg.ChainageStep
	if chainageStep <= 0 {
		chainageStep = defaultChainageStep
	}

	left := p.AbtL - p.ApprLength
	right := p.BridgeLength() + p.ApprLength
	top := p.RTL

	// Guards against rounding keeping the last line out of the grid.
	const eps = 1e-9

	var ee []drawing.Entity

	for level := p.Datum; level <= top+eps; level += levelStep {
		y := f.VPos(level)
		ee = append(ee, &drawing.Line{
			Layer: drawing.LayerGrid,
			P1:    vec.Vec2{X: f.HPos(left), Y: y},
			P2:    vec.Vec2{X: f.HPos(right), Y: y},
		})
		ee = append(ee, &drawing.Text{
			Layer:   drawing.LayerAnnotations,
			Pos:     vec.Vec2{X: f.HPos(left) - 30, Y: y - 2},
			Content: fmt.Sprintf("RL %.2f", level),
			Height:  2.0,
			Style:   drawing.StyleMainText,
		})
	}

	for ch := left; ch <= right+eps; ch += chainageStep {
		x := f.HPos(ch)
		ee = append(ee, &drawing.Line{
			Layer: drawing.LayerGrid,
			P1:    vec.Vec2{X: x, Y: f.VPos(p.Datum)},
			P2:    vec.Vec2{X: x, Y: f.VPos(top)},
		})
		ee = append(ee, &drawing.Text{
			Layer:    drawing.LayerAnnotations,
			Pos:      vec.Vec2{X: x - 5, Y: f.VPos(p.Datum) - 15},
			Content:  fmt.Sprintf("Ch %.0f", ch),
			Height:   2.0,
			Style:    drawing.StyleMainText,
			Rotation: 90,
		})
	}

	return ee, nil
}
