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

package color

import (
	"testing"

	"seehuhn.de/go/pdfdraw"
)

func TestReadSpaceNames(t *testing.T) {
	cases := []struct {
		in   pdfdraw.Name
		want Space
	}{
		{"DeviceGray", SpaceDeviceGray},
		{"G", SpaceDeviceGray},
		{"DeviceRGB", SpaceDeviceRGB},
		{"RGB", SpaceDeviceRGB},
		{"DeviceCMYK", SpaceDeviceCMYK},
		{"Pattern", SpacePatternColored},
		{"CS1", SpaceNamed("CS1")},
	}
	for _, c := range cases {
		got, err := ReadSpace(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("ReadSpace(%s) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestReadSpaceIndexed(t *testing.T) {
	desc := pdfdraw.Array{
		pdfdraw.Name("Indexed"),
		pdfdraw.Name("DeviceRGB"),
		pdfdraw.Integer(1),
		pdfdraw.String{1, 2, 3, 4, 5, 6},
	}
	cs, err := ReadSpace(desc)
	if err != nil {
		t.Fatal(err)
	}
	idx, ok := cs.(*SpaceIndexed)
	if !ok {
		t.Fatalf("wrong type %T", cs)
	}
	if idx.Base != SpaceDeviceRGB || idx.HiVal != 1 || len(idx.Lookup) != 6 {
		t.Errorf("wrong Indexed space %v", idx)
	}

	desc[2] = pdfdraw.Integer(256)
	if _, err := ReadSpace(desc); !pdfdraw.IsMalformed(err) {
		t.Errorf("expected malformed error, got %v", err)
	}
}

func TestReadSpaceSeparation(t *testing.T) {
	desc := pdfdraw.Array{
		pdfdraw.Name("Separation"),
		pdfdraw.Name("Gold"),
		pdfdraw.Name("DeviceCMYK"),
		pdfdraw.Dict{
			"FunctionType": pdfdraw.Integer(2),
			"Domain":       pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(1)},
			"C0":           pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Integer(0), pdfdraw.Integer(0), pdfdraw.Integer(0)},
			"C1":           pdfdraw.Array{pdfdraw.Integer(0), pdfdraw.Real(0.2), pdfdraw.Real(0.8), pdfdraw.Integer(0)},
			"N":            pdfdraw.Integer(1),
		},
	}
	cs, err := ReadSpace(desc)
	if err != nil {
		t.Fatal(err)
	}
	r := &Resolver{}
	got, err := r.Resolve(&cs, ValueComponents{pdfdraw.Integer(1)})
	if err != nil {
		t.Fatal(err)
	}
	want := Solid{1, 0.8, 0.2}
	s := got.(Solid)
	if abs(s.R-want.R) > 1e-12 || abs(s.G-want.G) > 1e-12 || abs(s.B-want.B) > 1e-12 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestReadSpaceICC(t *testing.T) {
	desc := pdfdraw.Array{
		pdfdraw.Name("ICCBased"),
		&pdfdraw.Stream{
			Dict: pdfdraw.Dict{
				"N":         pdfdraw.Integer(3),
				"Alternate": pdfdraw.Name("DeviceRGB"),
			},
			Data: []byte("not a real profile"),
		},
	}
	cs, err := ReadSpace(desc)
	if err != nil {
		t.Fatal(err)
	}
	icc := cs.(*SpaceICCBased)
	if icc.N != 3 || icc.Alternate != SpaceDeviceRGB || len(icc.Range) != 6 {
		t.Errorf("wrong ICC space %+v", icc)
	}

	// without /N, the profile must be decoded
	delete(desc[1].(*pdfdraw.Stream).Dict, "N")
	if _, err := ReadSpace(desc); !pdfdraw.IsMalformed(err) {
		t.Errorf("expected malformed error, got %v", err)
	}
}

func TestReadSpaceOther(t *testing.T) {
	desc := pdfdraw.Array{pdfdraw.Name("Lab"), pdfdraw.Dict{}}
	cs, err := ReadSpace(desc)
	if err != nil {
		t.Fatal(err)
	}
	if cs.Family() != FamilyLab {
		t.Errorf("wrong family %s", cs.Family())
	}
	if _, ok := cs.(*SpaceOther); !ok {
		t.Errorf("wrong type %T", cs)
	}
}

func TestReadSpaceMalformed(t *testing.T) {
	cases := []pdfdraw.Object{
		nil,
		pdfdraw.Integer(1),
		pdfdraw.Array{},
		pdfdraw.Array{pdfdraw.Name("Indexed"), pdfdraw.Name("DeviceRGB")},
		pdfdraw.Array{pdfdraw.Name("Separation"), pdfdraw.Name("X"), pdfdraw.Name("DeviceGray"), pdfdraw.Integer(0)},
	}
	for i, desc := range cases {
		if _, err := ReadSpace(desc); !pdfdraw.IsMalformed(err) {
			t.Errorf("%d: expected malformed error, got %v", i, err)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
