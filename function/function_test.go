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

package function

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/pdfdraw"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestType2(t *testing.T) {
	f := &Type2{
		XMin: 0,
		XMax: 1,
		C0:   []float64{0, 1},
		C1:   []float64{1, 0},
		N:    2,
	}
	if err := f.validate(); err != nil {
		t.Fatal(err)
	}
	got := f.Apply(0.5)
	if d := cmp.Diff([]float64{0.25, 0.75}, got, approx); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}

	// inputs are clipped to the domain
	got = f.Apply(7)
	if d := cmp.Diff([]float64{1, 0}, got, approx); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

func TestType0Linear(t *testing.T) {
	f := &Type0{
		Domain:        []float64{0, 1},
		Range:         []float64{0, 1},
		Size:          []int{2},
		BitsPerSample: 8,
		Samples:       []byte{0, 255},
	}
	if err := f.validate(); err != nil {
		t.Fatal(err)
	}
	for _, x := range []float64{0, 0.25, 0.5, 1} {
		got := f.Apply(x)
		if d := cmp.Diff([]float64{x}, got, approx); d != "" {
			t.Errorf("f(%g) (-want +got):\n%s", x, d)
		}
	}
}

func TestType0TwoDimensional(t *testing.T) {
	// f(x, y) = (x + y) / 2 on a 2x2 grid, first input varying fastest
	f := &Type0{
		Domain:        []float64{0, 1, 0, 1},
		Range:         []float64{0, 1},
		Size:          []int{2, 2},
		BitsPerSample: 4,
		Samples:       []byte{0x07, 0x7f},
		Decode:        []float64{0, 2},
	}
	// samples: (0,0)=0, (1,0)=7, (0,1)=7, (1,1)=15
	if err := f.validate(); err != nil {
		t.Fatal(err)
	}
	got := f.Apply(1, 0)
	want := 7.0 / 15 * 2
	if want > 1 {
		want = 1
	}
	if d := cmp.Diff([]float64{want}, got, approx); d != "" {
		t.Errorf("f(1, 0) (-want +got):\n%s", d)
	}
	got = f.Apply(0.5, 0.5)
	want = (0 + 7 + 7 + 15) / 4.0 / 15 * 2
	if want > 1 {
		want = 1
	}
	if d := cmp.Diff([]float64{want}, got, approx); d != "" {
		t.Errorf("f(0.5, 0.5) (-want +got):\n%s", d)
	}
}

func TestType0Sample(t *testing.T) {
	f := &Type0{BitsPerSample: 12, Samples: []byte{0xAB, 0xCD, 0xEF}}
	if got := f.sample(0); got != 0xABC {
		t.Errorf("sample 0 = %x", int(got))
	}
	if got := f.sample(1); got != 0xDEF {
		t.Errorf("sample 1 = %x", int(got))
	}
	if got := f.sample(2); got != 0 {
		t.Errorf("sample past end = %g", got)
	}
}

func TestType3(t *testing.T) {
	f := &Type3{
		XMin: 0,
		XMax: 1,
		Functions: []Func{
			&Type2{XMin: 0, XMax: 1, C0: []float64{0}, C1: []float64{1}, N: 1},
			&Type2{XMin: 0, XMax: 1, C0: []float64{1}, C1: []float64{0}, N: 1},
		},
		Bounds: []float64{0.5},
		Encode: []float64{0, 1, 0, 1},
	}
	if err := f.validate(); err != nil {
		t.Fatal(err)
	}
	cases := []struct{ x, y float64 }{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
		{1, 0},
	}
	for _, c := range cases {
		got := f.Apply(c.x)
		if d := cmp.Diff([]float64{c.y}, got, approx); d != "" {
			t.Errorf("f(%g) (-want +got):\n%s", c.x, d)
		}
	}
}

func TestType4(t *testing.T) {
	cases := []struct {
		program string
		domain  []float64
		rng     []float64
		in      []float64
		want    []float64
	}{
		{"{ 2 mul }", []float64{0, 1}, []float64{0, 2}, []float64{0.3}, []float64{0.6}},
		{"{ dup 0.5 gt { pop 1 } { pop 0 } ifelse }", []float64{0, 1}, []float64{0, 1},
			[]float64{0.7}, []float64{1}},
		{"{ dup 0.5 gt { pop 1 } { pop 0 } ifelse }", []float64{0, 1}, []float64{0, 1},
			[]float64{0.2}, []float64{0}},
		{"{ 0 0 0 4 -1 roll }", []float64{0, 1}, []float64{0, 1, 0, 1, 0, 1, 0, 1},
			[]float64{0.4}, []float64{0, 0, 0, 0.4}},
		{"{ exch sub abs }", []float64{0, 1, 0, 1}, []float64{0, 1},
			[]float64{0.25, 1}, []float64{0.75}},
		{"{ 1 exch sub dup 0 lt { pop 0 } if }", []float64{0, 1}, []float64{0, 1},
			[]float64{0.25}, []float64{0.75}},
		{"{ 7 2 idiv 7 2 mod add cvr 10 div }", []float64{0, 1}, []float64{0, 1},
			[]float64{0}, []float64{0.4}},
		{"{ pop 1 0 atan 360 div }", []float64{0, 1}, []float64{0, 1},
			[]float64{0}, []float64{0.25}},
		{"{ pop pop }", []float64{0, 1}, []float64{0.5, 1}, // stack underflow
			[]float64{0}, []float64{0.5}},
	}
	for i, c := range cases {
		f := &Type4{Domain: c.domain, Range: c.rng, Program: c.program}
		if err := f.validate(); err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		got := f.Apply(c.in...)
		if d := cmp.Diff(c.want, got, approx); d != "" {
			t.Errorf("%d: %s (-want +got):\n%s", i, c.program, d)
		}
	}
}

func TestType4Invalid(t *testing.T) {
	programs := []string{
		"2 mul",
		"{ 2 mul",
		"{ foo }",
		"{ { 1 } }",
		"{ { 1 } { 2 } if }",
	}
	for _, p := range programs {
		f := &Type4{Domain: []float64{0, 1}, Range: []float64{0, 1}, Program: p}
		err := f.validate()
		if !errors.Is(err, &InvalidFunctionError{}) {
			t.Errorf("%q: expected InvalidFunctionError, got %v", p, err)
		}
	}
}

func TestRead(t *testing.T) {
	obj := pdfdraw.Dict{
		"FunctionType": pdfdraw.Integer(3),
		"Domain":       pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(1)},
		"Functions": pdfdraw.Array{
			pdfdraw.Dict{
				"FunctionType": pdfdraw.Integer(2),
				"Domain":       pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(1)},
				"N":            pdfdraw.Integer(1),
			},
			&pdfdraw.Stream{
				Dict: pdfdraw.Dict{
					"FunctionType": pdfdraw.Integer(4),
					"Domain":       pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(1)},
					"Range":        pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(1)},
				},
				Data: []byte("{ 1 exch sub }"),
			},
		},
		"Bounds": pdfdraw.Array{pdfdraw.Real(0.5)},
		"Encode": pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(1), pdfdraw.Integer(0), pdfdraw.Integer(1)},
	}
	f, err := Read(obj)
	if err != nil {
		t.Fatal(err)
	}
	if m, n := f.Shape(); m != 1 || n != 1 {
		t.Errorf("wrong shape %d→%d", m, n)
	}
	if d := cmp.Diff([]float64{0.5}, f.Apply(0.25), approx); d != "" {
		t.Errorf("f(0.25) (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{0.5}, f.Apply(0.75), approx); d != "" {
		t.Errorf("f(0.75) (-want +got):\n%s", d)
	}
}

func TestReadMalformed(t *testing.T) {
	cases := []pdfdraw.Object{
		pdfdraw.Integer(1),
		pdfdraw.Dict{},
		pdfdraw.Dict{"FunctionType": pdfdraw.Integer(0)},
		pdfdraw.Dict{"FunctionType": pdfdraw.Integer(7)},
		pdfdraw.Dict{
			"FunctionType": pdfdraw.Integer(2),
			"Domain":       pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(1)},
			"C0":           pdfdraw.Array{pdfdraw.Integer(0)},
			"C1":           pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(1)},
			"N":            pdfdraw.Integer(1),
		},
	}
	for i, obj := range cases {
		_, err := Read(obj)
		if !pdfdraw.IsMalformed(err) {
			t.Errorf("%d: expected malformed error, got %v", i, err)
		}
	}
}
