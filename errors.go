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

// ConfigurationError indicates that the drawing options are malformed.
// It is returned before any geometry is built.
type ConfigurationError struct {
	Option string
	Err    error
}

func (err *ConfigurationError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "invalid option " + err.Option + middle
}

func (err *ConfigurationError) Unwrap() error {
	return err.Err
}

// GeometryError indicates that a structurally required computation yields
// an invalid shape, for example a pier of negative height or a zero batter
// ratio.  A GeometryError aborts the whole generation; the caller receives
// no document.
type GeometryError struct {
	// Feature names the structural feature whose geometry is invalid,
	// e.g. "pier 2" or "scale".
	Feature string

	// Reason describes what is wrong with the feature.
	Reason string
}

func (err *GeometryError) Error() string {
	return "invalid geometry in " + err.Feature + ": " + err.Reason
}

// A Note records a non-fatal event observed while building a drawing: a
// parameter filled in from its default, a skipped dimension, a skipped
// annotation.  Notes are collected into the build report and never abort
// generation.
type Note struct {
	// Feature names the part of the drawing the note refers to.
	Feature string

	// Message is a human-readable description of what happened.
	Message string
}
