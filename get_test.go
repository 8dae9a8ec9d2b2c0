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

package pdfdraw

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetNumber(t *testing.T) {
	cases := []struct {
		in   Object
		want float64
		ok   bool
	}{
		{Integer(7), 7, true},
		{Real(-1.5), -1.5, true},
		{Name("x"), 0, false},
		{nil, 0, false},
	}
	for _, c := range cases {
		got, err := GetNumber(c.in)
		if (err == nil) != c.ok {
			t.Errorf("GetNumber(%s): unexpected error status %v", Format(c.in), err)
			continue
		}
		if err != nil && !IsMalformed(err) {
			t.Errorf("GetNumber(%s): error %v is not malformed", Format(c.in), err)
		}
		if got != c.want {
			t.Errorf("GetNumber(%s) = %g, want %g", Format(c.in), got, c.want)
		}
	}
}

func TestGetInteger(t *testing.T) {
	if x, err := GetInteger(Real(3)); err != nil || x != 3 {
		t.Errorf("GetInteger(3.0) = %d, %v", x, err)
	}
	if _, err := GetInteger(Real(3.5)); err == nil {
		t.Error("GetInteger(3.5) should fail")
	}
}

func TestGetFloatArray(t *testing.T) {
	got, err := GetFloatArray(Array{Integer(1), Real(0.5), Integer(-2)})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{1, 0.5, -2}, got); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}

	_, err = GetFloatArray(Array{Integer(1), Name("a")})
	if !IsMalformed(err) {
		t.Errorf("expected malformed error, got %v", err)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   Object
		want string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Integer(-3), "-3"},
		{Real(2), "2."},
		{Name("A B"), "/A#20B"},
		{String("a(b)c"), "(a(b)c)"},
		{String("abc)"), `(abc\))`},
		{String("\x00\x01"), "<0001>"},
		{Array{Integer(1), nil, Name("x")}, "[1 null /x]"},
		{Dict{"B": Integer(2), "A": Integer(1)}, "<< /A 1 /B 2 >>"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%#v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should be nil")
	}
	base := errors.New("boom")
	err := Wrap(base)
	if !IsMalformed(err) || !errors.Is(err, base) {
		t.Errorf("Wrap did not produce a malformed error wrapping base: %v", err)
	}
	if Wrap(err) != err {
		t.Error("Wrap should not wrap twice")
	}
}
