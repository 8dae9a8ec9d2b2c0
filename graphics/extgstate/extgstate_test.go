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

package extgstate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/graphics"
	"seehuhn.de/go/pdfdraw/graphics/color"
)

func TestDecode(t *testing.T) {
	font := pdfdraw.Dict{"Type": pdfdraw.Name("Font"), "BaseFont": pdfdraw.Name("Times-Roman")}
	dict := pdfdraw.Dict{
		"Type": pdfdraw.Name("ExtGState"),
		"LW":   pdfdraw.Real(2.5),
		"LC":   pdfdraw.Integer(7), // clamped
		"LJ":   pdfdraw.Integer(1),
		"ML":   pdfdraw.Real(0.5), // clamped
		"D":    pdfdraw.Array{pdfdraw.Array{pdfdraw.Integer(3), pdfdraw.Integer(2)}, pdfdraw.Integer(1)},
		"RI":   pdfdraw.Name("Perceptual"),
		"CA":   pdfdraw.Real(0.5),
		"ca":   pdfdraw.Real(0.25),
		"OP":   pdfdraw.Bool(true),
		"OPM":  pdfdraw.Integer(1),
		"FL":   pdfdraw.Integer(3),
		"Font": pdfdraw.Array{font, pdfdraw.Integer(12)},
		"BM":   pdfdraw.Name("Multiply"),
		"TK":   pdfdraw.Integer(1), // malformed, skipped
	}

	got, err := Decode(dict)
	if err != nil {
		t.Fatal(err)
	}
	want := &ExtGState{
		Set: graphics.StateLineWidth | graphics.StateLineCap | graphics.StateLineJoin |
			graphics.StateMiterLimit | graphics.StateDash | graphics.StateRenderingIntent |
			graphics.StateStrokeAlpha | graphics.StateFillAlpha | graphics.StateOverprint |
			graphics.StateOverprintMode | graphics.StateFlatnessTolerance | graphics.StateTextFont,
		TextFont:          font,
		TextFontSize:      12,
		LineWidth:         2.5,
		LineCap:           graphics.LineCapSquare,
		LineJoin:          graphics.LineJoinRound,
		MiterLimit:        1,
		DashPattern:       []float64{3, 2},
		DashPhase:         1,
		RenderingIntent:   "Perceptual",
		StrokeAlpha:       0.5,
		FillAlpha:         0.25,
		OverprintStroke:   true,
		OverprintFill:     true, // defaults to OP
		OverprintMode:     1,
		FlatnessTolerance: 3,
		Ignored:           []pdfdraw.Name{"BM"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
	if !want.Equal(got) {
		t.Error("Equal returned false")
	}
}

func TestDecodeNotDict(t *testing.T) {
	for _, obj := range []pdfdraw.Object{nil, pdfdraw.Integer(1)} {
		_, err := Decode(obj)
		if !pdfdraw.IsMalformed(err) {
			t.Errorf("%v: expected malformed error, got %v", obj, err)
		}
	}
}

func TestReadDash(t *testing.T) {
	cases := []struct {
		in   pdfdraw.Object
		want []float64
		ok   bool
	}{
		{pdfdraw.Array{}, []float64{}, true},
		{pdfdraw.Array{pdfdraw.Integer(1)}, []float64{1}, true},
		{pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(0)}, nil, false},
		{pdfdraw.Array{pdfdraw.Integer(-1), pdfdraw.Integer(2)}, nil, false},
		{pdfdraw.Name("x"), nil, false},
	}
	for i, c := range cases {
		got, ok := ReadDash(c.in)
		if ok != c.ok {
			t.Errorf("%d: got ok=%t, want %t", i, ok, c.ok)
			continue
		}
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%d: (-want +got):\n%s", i, d)
		}
	}
}

func TestApplyTo(t *testing.T) {
	s := graphics.NewState()
	txt := graphics.NewTextState()
	txt.FontName = "F1"
	s.SetFillColor(color.Solid{R: 1})
	s.SetFillAlpha(0.5)
	before := s.FillPaint()

	e := &ExtGState{
		Set:           graphics.StateFillAlpha | graphics.StateOverprint | graphics.StateDash | graphics.StateTextFont,
		FillAlpha:     0.25,
		OverprintFill: true,
		DashPattern:   []float64{},
		TextFont:      pdfdraw.Dict{},
		TextFontSize:  9,
	}
	s.Dash = &graphics.Dash{Pattern: []float64{1}}
	e.ApplyTo(s, txt)

	if s.FillAlpha != 0.25 || s.EffectiveFillAlpha() != 0.25 {
		t.Errorf("alpha: base %g, effective %g", s.FillAlpha, s.EffectiveFillAlpha())
	}
	p := s.FillPaint()
	if p == before {
		t.Error("fill paint was not invalidated")
	}
	if p.Blend != graphics.BlendDarken {
		t.Errorf("got blend mode %s", p.Blend)
	}
	if s.Dash != nil {
		t.Errorf("empty dash array should give solid lines, got %v", s.Dash)
	}
	if txt.FontName != "" || txt.FontSize != 9 || txt.Font == nil {
		t.Errorf("unexpected font %q %v %g", txt.FontName, txt.Font, txt.FontSize)
	}
	// parameters which are not set stay unchanged
	if s.LineWidth != 1 || s.StrokeAlpha != 1 {
		t.Error("unset parameters were modified")
	}
}
