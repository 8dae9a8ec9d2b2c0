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

package pattern

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/graphics/color"
)

func axialShading() pdfdraw.Dict {
	return pdfdraw.Dict{
		"ShadingType": pdfdraw.Integer(2),
		"ColorSpace":  pdfdraw.Name("DeviceRGB"),
		"Coords":      pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(0), pdfdraw.Integer(100), pdfdraw.Integer(0)},
		"Function": pdfdraw.Dict{
			"FunctionType": pdfdraw.Integer(2),
			"Domain":       pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(1)},
			"C0":           pdfdraw.Array{pdfdraw.Integer(1), pdfdraw.Integer(0), pdfdraw.Integer(0)},
			"C1":           pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(0), pdfdraw.Integer(1)},
			"N":            pdfdraw.Integer(1),
		},
	}
}

func TestShadingFallback(t *testing.T) {
	dict := pdfdraw.Dict{
		"PatternType": pdfdraw.Integer(2),
		"Shading":     axialShading(),
		"Matrix": pdfdraw.Array{
			pdfdraw.Integer(2), pdfdraw.Integer(0), pdfdraw.Integer(0),
			pdfdraw.Integer(2), pdfdraw.Integer(0), pdfdraw.Integer(0),
		},
	}
	p, err := Read(dict)
	if err != nil {
		t.Fatal(err)
	}
	t2, ok := p.(*Type2)
	if !ok {
		t.Fatalf("got %T, want *Type2", p)
	}
	if t2.Matrix != (matrix.Matrix{2, 0, 0, 2, 0, 0}) {
		t.Errorf("wrong matrix %v", t2.Matrix)
	}

	got := Fallback(p)
	want := color.Solid{R: 0.5, G: 0, B: 0.5}
	if math.Abs(got.R-want.R) > 1e-9 || math.Abs(got.G-want.G) > 1e-9 || math.Abs(got.B-want.B) > 1e-9 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFunctionArray(t *testing.T) {
	sh := axialShading()
	gray := func(c0, c1 int) pdfdraw.Dict {
		return pdfdraw.Dict{
			"FunctionType": pdfdraw.Integer(2),
			"Domain":       pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(1)},
			"C0":           pdfdraw.Array{pdfdraw.Integer(c0)},
			"C1":           pdfdraw.Array{pdfdraw.Integer(c1)},
			"N":            pdfdraw.Integer(1),
		}
	}
	sh["Function"] = pdfdraw.Array{gray(0, 1), gray(1, 1), gray(1, 0)}
	s, err := ReadShading(sh)
	if err != nil {
		t.Fatal(err)
	}
	if m, n := s.Function.Shape(); m != 1 || n != 3 {
		t.Fatalf("got shape %d->%d", m, n)
	}
	got := Fallback(&Type2{Shading: s})
	if got != (color.Solid{R: 0.5, G: 1, B: 0.5}) {
		t.Errorf("got %v", got)
	}
}

func TestTiling(t *testing.T) {
	stm := &pdfdraw.Stream{
		Dict: pdfdraw.Dict{
			"PatternType": pdfdraw.Integer(1),
			"PaintType":   pdfdraw.Integer(2),
			"TilingType":  pdfdraw.Integer(1),
			"BBox":        pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(0), pdfdraw.Integer(10), pdfdraw.Integer(10)},
			"XStep":       pdfdraw.Integer(10),
			"YStep":       pdfdraw.Integer(10),
		},
		Data: []byte("0 0 5 5 re f"),
	}
	p, err := Read(stm)
	if err != nil {
		t.Fatal(err)
	}
	t1 := p.(*Type1)
	if t1.Colored || t1.BBox != (rect.Rect{URx: 10, URy: 10}) || t1.Matrix != matrix.Identity {
		t.Errorf("unexpected pattern %+v", t1)
	}
	if Fallback(p) != (color.Solid{}) {
		t.Error("tiling patterns should fall back to black")
	}
}

func TestReadMalformed(t *testing.T) {
	cases := []pdfdraw.Object{
		nil,
		pdfdraw.Integer(1),
		pdfdraw.Dict{"PatternType": pdfdraw.Integer(3)},
		pdfdraw.Dict{"PatternType": pdfdraw.Integer(1)}, // not a stream
		pdfdraw.Dict{"PatternType": pdfdraw.Integer(2)}, // no shading
	}
	for i, obj := range cases {
		if _, err := Read(obj); !pdfdraw.IsMalformed(err) {
			t.Errorf("%d: expected malformed error, got %v", i, err)
		}
	}
}
