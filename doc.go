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

// Package bridgegad derives two-dimensional general arrangement drawings
// (elevation and plan) of multi-span slab bridges from a set of design
// parameters.
//
// The root package holds the parameter model, the drawing options, the
// coordinate frame shared by all geometry builders, and the error taxonomy.
// The geometry itself lives in the subpackages:
//
//   - [bridgegad/drawing] defines the drawing document model: entities,
//     layers, text styles and dimension styles.
//   - [bridgegad/shape] builds the structural shapes (deck, piers,
//     abutments, approach slabs, plan outline).
//   - [bridgegad/annotate] builds grid lines, dimensions, the title block
//     and the view labels.
//   - [bridgegad/assemble] sequences the builders into one document and
//     collects the build report.
//
// The finished document is a pure value; serializing it to a CAD exchange
// format is the job of a downstream writer.
package bridgegad
