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
	"testing"
)

func TestParseScale(t *testing.T) {
	tests := []struct {
		in       string
		num, den float64
		ok       bool
	}{
		{"1:100", 1, 100, true},
		{"100:50", 100, 50, true},
		{"1 : 200", 1, 200, true},
		{"2.5:1", 2.5, 1, true},
		{"", 0, 0, false},
		{"1:100:2", 0, 0, false},
		{"full size", 0, 0, false},
		{"0:100", 0, 0, false},
		{"1:-50", 0, 0, false},
		{"x:100", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			num, den, err := ParseScale(tt.in)
			if tt.ok {
				if err != nil {
					t.Fatalf("ParseScale(%q): %v", tt.in, err)
				}
				if num != tt.num || den != tt.den {
					t.Errorf("got %g:%g, want %g:%g", num, den, tt.num, tt.den)
				}
				return
			}
			var cerr *ConfigurationError
			if !errors.As(err, &cerr) {
				t.Fatalf("ParseScale(%q) = %v, want ConfigurationError", tt.in, err)
			}
			if cerr.Option != "Scale" {
				t.Errorf("option = %q, want Scale", cerr.Option)
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if !opts.IncludeDimensions || !opts.IncludeAnnotations || !opts.IncludeTitleBlock {
		t.Error("optional parts not enabled by default")
	}
	if _, _, err := ParseScale(opts.Scale); err != nil {
		t.Errorf("default scale %q does not parse: %v", opts.Scale, err)
	}
	if opts.Date == "" {
		t.Error("default date is empty")
	}
}
