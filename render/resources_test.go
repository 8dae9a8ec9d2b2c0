// seehuhn.de/go/pdfdraw - an interpreter for PDF content streams
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/graphics/color"
	"seehuhn.de/go/pdfdraw/graphics/pattern"
)

func TestReadResources(t *testing.T) {
	dict := pdfdraw.Dict{
		"ColorSpace": pdfdraw.Dict{
			"CS1": pdfdraw.Name("DeviceGray"),
			"CS0": pdfdraw.Array{pdfdraw.Name("CalRGB"), pdfdraw.Dict{}},
			"CS2": pdfdraw.Name("CS0"),
		},
		"Pattern": pdfdraw.Dict{
			"P0": pdfdraw.Dict{
				"PatternType": pdfdraw.Integer(2),
				"Shading": pdfdraw.Dict{
					"ShadingType": pdfdraw.Integer(4),
					"ColorSpace":  pdfdraw.Name("DeviceGray"),
					"Background":  pdfdraw.Array{pdfdraw.Real(0.5)},
				},
			},
		},
		"ExtGState": pdfdraw.Dict{"G0": pdfdraw.Dict{"LW": pdfdraw.Integer(2)}},
		"Font":      pdfdraw.Integer(7), // malformed, skipped
	}
	res, err := ReadResources(dict)
	if err != nil {
		t.Fatal(err)
	}
	if res.Fonts != nil {
		t.Error("malformed font dictionary was not skipped")
	}

	want := []pdfdraw.Name{"CS0", "CS1", "CS2"}
	if d := cmp.Diff(want, res.ColorSpaceNames()); d != "" {
		t.Errorf("names differ (-want +got):\n%s", d)
	}

	if cs, ok := res.ColorSpace("CS1"); !ok || cs != color.SpaceDeviceGray {
		t.Errorf("CS1: got %v %t", cs, ok)
	}
	if cs, ok := res.ColorSpace("CS0"); !ok || cs.Family() != color.FamilyCalRGB {
		t.Errorf("CS0: got %v %t", cs, ok)
	}
	if _, ok := res.ColorSpace("CS2"); ok {
		t.Error("CS2: reference to other resource accepted")
	}
	if _, ok := res.ColorSpace("CS9"); ok {
		t.Error("CS9: missing colour space found")
	}

	if !res.HasPattern("P0") || res.HasPattern("P1") {
		t.Error("HasPattern is wrong")
	}
	p, err := res.Pattern("P0")
	if err != nil {
		t.Fatal(err)
	}
	if got := pattern.Fallback(p); got != (color.Solid{R: 0.5, G: 0.5, B: 0.5}) {
		t.Errorf("got fallback %v", got)
	}
	if _, err := res.Pattern("P1"); !pdfdraw.IsMalformed(err) {
		t.Errorf("P1: got %v", err)
	}

	e, err := res.ExtGState("G0")
	if err != nil {
		t.Fatal(err)
	}
	if e.LineWidth != 2 {
		t.Errorf("got line width %g", e.LineWidth)
	}
}

func TestNilResources(t *testing.T) {
	var res *Resources
	if _, ok := res.ColorSpace("CS0"); ok {
		t.Error("colour space found in nil resources")
	}
	if res.HasPattern("P0") {
		t.Error("pattern found in nil resources")
	}
	if res.ColorSpaceNames() != nil {
		t.Error("names in nil resources")
	}

	empty, err := ReadResources(nil)
	if err != nil || empty == nil {
		t.Fatalf("got %v, %v", empty, err)
	}
	if _, err := ReadResources(pdfdraw.Integer(1)); !pdfdraw.IsMalformed(err) {
		t.Errorf("got %v", err)
	}
}
