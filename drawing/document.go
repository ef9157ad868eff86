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

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// Document is a bridge drawing under construction: the fixed layer, text
// style and dimension style tables, plus the ordered sequence of entities
// appended so far.
//
// Entity order is significant.  Downstream writers must serialize entities
// exactly in insertion order; the builders rely on this for layering and
// readability.  A Document only grows: entities can be appended but never
// edited or removed.
//
// A Document is not safe for concurrent use.  During generation it is
// exclusively owned by a single assembler; afterwards it is complete and
// must not be modified.
type Document struct {
	layers    map[string]Layer
	styles    map[string]TextStyle
	dimStyles map[string]DimStyle

	layerOrder []string

	entities []Entity
}

// NewDocument creates an empty document with the standard layer, text
// style and dimension style tables installed.  The tables are fixed: they
// are installed atomically here and cannot be changed afterwards.
func NewDocument() *Document {
	doc := &Document{
		layers:    make(map[string]Layer, len(standardLayers)),
		styles:    make(map[string]TextStyle, len(standardStyles)),
		dimStyles: make(map[string]DimStyle, len(standardDimStyles)),
	}
	for _, l := range standardLayers {
		doc.layers[l.Name] = l
		doc.layerOrder = append(doc.layerOrder, l.Name)
	}
	for _, s := range standardStyles {
		doc.styles[s.Name] = s
	}
	for _, s := range standardDimStyles {
		doc.dimStyles[s.Name] = s
	}
	return doc
}

// Add appends an entity to the document.  The entity must reference a
// layer from the layer table; Text and LinearDim entities must also
// reference a known text or dimension style.  Entities with no geometry
// are rejected.
func (doc *Document) Add(e Entity) error {
	if err := doc.validate(e); err != nil {
		return err
	}
	doc.entities = append(doc.entities, e)
	return nil
}

// AddAll appends a batch of entities.  The batch is all-or-nothing: if any
// entity is invalid, the document is left unchanged.
func (doc *Document) AddAll(ee []Entity) error {
	for _, e := range ee {
		if err := doc.validate(e); err != nil {
			return err
		}
	}
	for _, e := range ee {
		doc.entities = append(doc.entities, e)
	}
	return nil
}

func (doc *Document) validate(e Entity) error {
	if e == nil {
		return fmt.Errorf("nil entity")
	}
	if _, ok := doc.layers[e.EntityLayer()]; !ok {
		return fmt.Errorf("unknown layer %q", e.EntityLayer())
	}

	switch e := e.(type) {
	case *Polyline:
		if len(e.Points) < 2 {
			return fmt.Errorf("polyline on %s has %d points", e.Layer, len(e.Points))
		}
	case *Hatch:
		if len(e.Boundary) < 3 {
			return fmt.Errorf("hatch on %s has %d boundary points", e.Layer, len(e.Boundary))
		}
	case *Text:
		if _, ok := doc.styles[e.Style]; !ok {
			return fmt.Errorf("unknown text style %q", e.Style)
		}
		if e.Content == "" {
			return fmt.Errorf("empty text on %s", e.Layer)
		}
	case *LinearDim:
		if _, ok := doc.dimStyles[e.Style]; !ok {
			return fmt.Errorf("unknown dimension style %q", e.Style)
		}
		if e.P1 == e.P2 {
			return fmt.Errorf("degenerate dimension on %s", e.Layer)
		}
	}
	return nil
}

// Layers returns the layer table in its canonical order.
func (doc *Document) Layers() []Layer {
	res := make([]Layer, len(doc.layerOrder))
	for i, name := range doc.layerOrder {
		res[i] = doc.layers[name]
	}
	return res
}

// Styles returns the text style table.
func (doc *Document) Styles() []TextStyle {
	res := make([]TextStyle, len(standardStyles))
	copy(res, standardStyles)
	return res
}

// DimStyles returns the dimension style table.
func (doc *Document) DimStyles() []DimStyle {
	res := make([]DimStyle, len(standardDimStyles))
	copy(res, standardDimStyles)
	return res
}

// Entities returns the entities in insertion order.  The returned slice is
// a copy; the entities themselves are shared and must not be modified.
func (doc *Document) Entities() []Entity {
	res := make([]Entity, len(doc.entities))
	copy(res, doc.entities)
	return res
}

// Len returns the number of entities in the document.
func (doc *Document) Len() int {
	return len(doc.entities)
}

// Bounds returns the bounding box of all entity geometry, or the zero
// rectangle for an empty document.
func (doc *Document) Bounds() rect.Rect {
	if len(doc.entities) == 0 {
		return rect.Rect{}
	}
	r := doc.entities[0].Bounds()
	for _, e := range doc.entities[1:] {
		b := e.Bounds()
		if b.LLx < r.LLx {
			r.LLx = b.LLx
		}
		if b.LLy < r.LLy {
			r.LLy = b.LLy
		}
		if b.URx > r.URx {
			r.URx = b.URx
		}
		if b.URy > r.URy {
			r.URy = b.URy
		}
	}
	return r
}
