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
	"errors"
	"strconv"
	"strings"
	"time"
)

// Options controls which optional parts of the drawing are generated and
// what the title block says.  The zero value is not directly usable; call
// [DefaultOptions], or start from it and override fields.
type Options struct {
	// Scale is the scale string shown in the title block, in the form
	// "N:M".  It is display-only: the geometric scale is taken from the
	// SCALE1/SCALE2 parameters, which the assembler normalizes to a fixed
	// internal pair.  The two can and do diverge.
	Scale string

	IncludeDimensions  bool
	IncludeAnnotations bool
	IncludeTitleBlock  bool

	ProjectName  string
	DrawingTitle string
	PreparedBy   string

	// Date is the date string shown in the title block.  When empty, the
	// current date is used.
	Date string
}

// DefaultOptions returns the standard option set: all optional parts
// enabled, generic title block text, today's date.
func DefaultOptions() *Options {
	return &Options{
		Scale:              "1:100",
		IncludeDimensions:  true,
		IncludeAnnotations: true,
		IncludeTitleBlock:  true,
		ProjectName:        "Bridge Project",
		DrawingTitle:       "Bridge General Arrangement",
		PreparedBy:         "BridgeGAD Pro",
		Date:               time.Now().Format("2006-01-02"),
	}
}

var errScaleSyntax = errors.New("scale must have the form \"N:M\"")

// ParseScale parses a display scale string of the form "N:M" into its
// numerator and denominator.  Both parts must be positive numbers.
func ParseScale(s string) (num, den float64, err error) {
	wrap := func(e error) error {
		return &ConfigurationError{Option: "Scale", Err: e}
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, wrap(errScaleSyntax)
	}
	num, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, wrap(err)
	}
	den, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, wrap(err)
	}
	if num <= 0 || den <= 0 {
		return 0, 0, wrap(errors.New("scale parts must be positive"))
	}
	return num, den, nil
}
