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

package drawing

// Layer names used by the drawing builders.  Downstream tooling matches on
// these names, so they are part of the output contract.
const (
	LayerStructure   = "STRUCTURE"
	LayerDimensions  = "DIMENSIONS"
	LayerAnnotations = "ANNOTATIONS"
	LayerCenterlines = "CENTERLINES"
	LayerHatching    = "HATCHING"
	LayerDetails     = "DETAILS"
	LayerGrid        = "GRID"
)

// Text style and dimension style names.
const (
	StyleMainText  = "MAIN_TEXT"
	StyleTitleText = "TITLE_TEXT"

	DimStyleProfessional = "PROFESSIONAL"
)

// Layer describes one drawing layer.
type Layer struct {
	Name string

	// Color is the CAD color index of the layer.
	Color int

	// LineType is the name of the layer's line type ("CONTINUOUS",
	// "DASHED", "CENTER").
	LineType string

	Description string
}

// TextStyle describes one text style.
type TextStyle struct {
	Name string

	// Font is the font file reference, e.g. "arial.ttf".
	Font string

	Height      float64
	WidthFactor float64
}

// DimStyle describes one dimension style.
type DimStyle struct {
	Name string

	ArrowSize     float64
	TextHeight    float64
	ExtLineExt    float64
	ExtLineOffset float64
	Gap           float64

	// TextStyle is the name of the text style dimension text is set in.
	TextStyle string
}

// standardLayers is the fixed layer table installed into every document.
var standardLayers = []Layer{
	{Name: LayerStructure, Color: 1, LineType: "CONTINUOUS", Description: "Main structural elements"},
	{Name: LayerDimensions, Color: 6, LineType: "CONTINUOUS", Description: "Dimension lines and text"},
	{Name: LayerAnnotations, Color: 3, LineType: "CONTINUOUS", Description: "Text and labels"},
	{Name: LayerCenterlines, Color: 4, LineType: "CENTER", Description: "Center lines"},
	{Name: LayerHatching, Color: 9, LineType: "CONTINUOUS", Description: "Section hatching"},
	{Name: LayerDetails, Color: 2, LineType: "CONTINUOUS", Description: "Detail elements"},
	{Name: LayerGrid, Color: 8, LineType: "DASHED", Description: "Grid lines and axes"},
}

// standardStyles is the fixed text style table.
var standardStyles = []TextStyle{
	{Name: StyleMainText, Font: "arial.ttf", Height: 2.5, WidthFactor: 0.8},
	{Name: StyleTitleText, Font: "arial.ttf", Height: 5.0, WidthFactor: 1.0},
}

// standardDimStyles is the fixed dimension style table.
var standardDimStyles = []DimStyle{
	{
		Name:          DimStyleProfessional,
		ArrowSize:     2.0,
		TextHeight:    2.5,
		ExtLineExt:    1.0,
		ExtLineOffset: 0.6,
		Gap:           0.6,
		TextStyle:     StyleMainText,
	},
}
