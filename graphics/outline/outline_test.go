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

package outline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestMoveLineClose(t *testing.T) {
	var b Builder
	b.Move(vec.Vec2{X: 1, Y: 2})
	b.Line(vec.Vec2{X: 3, Y: 4})
	b.Close()
	o := b.Take()

	want := &Outline{Contours: []Contour{{
		Start:    vec.Vec2{X: 1, Y: 2},
		Segments: []Segment{{End: vec.Vec2{X: 3, Y: 4}}},
		Closed:   true,
	}}}
	if d := cmp.Diff(want, o); d != "" {
		t.Errorf("unexpected outline (-want +got):\n%s", d)
	}
	if n := o.Contours[0].NumPoints(); n != 2 {
		t.Errorf("got %d points, want 2", n)
	}
	if !b.IsEmpty() {
		t.Error("builder not empty after Take")
	}
	if o2 := b.Take(); !o2.IsEmpty() {
		t.Errorf("second Take returned %s", o2)
	}
}

func TestMoveFlushes(t *testing.T) {
	var b Builder
	b.Move(vec.Vec2{X: 0, Y: 0})
	b.Line(vec.Vec2{X: 1, Y: 0})
	b.Move(vec.Vec2{X: 5, Y: 5})
	b.Curve(vec.Vec2{X: 6, Y: 5}, vec.Vec2{X: 7, Y: 6}, vec.Vec2{X: 7, Y: 7})
	o := b.Take()
	if len(o.Contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(o.Contours))
	}
	if got := o.String(); got != "0 0 m 1 0 l 5 5 m 6 5 7 6 7 7 c" {
		t.Errorf("got %q", got)
	}
}

func TestRect(t *testing.T) {
	var b Builder
	b.Move(vec.Vec2{X: 9, Y: 9})
	b.Line(vec.Vec2{X: 8, Y: 8})
	b.Rect(0, 0, 10, 20)
	o := b.Take()
	if len(o.Contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(o.Contours))
	}
	r := o.Contours[1]
	if !r.Closed || r.NumPoints() != 4 {
		t.Errorf("unexpected rectangle contour %v", r)
	}
	want := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 20}
	if got := (&Outline{Contours: []Contour{r}}).Bounds(); got != want {
		t.Errorf("got bounds %v, want %v", got, want)
	}
}

func TestEndPath(t *testing.T) {
	var b Builder
	b.Rect(0, 0, 1, 1)
	b.Move(vec.Vec2{X: 2, Y: 2})
	b.Line(vec.Vec2{X: 3, Y: 3})
	b.EndPath()
	if !b.IsEmpty() {
		t.Error("builder not empty after EndPath")
	}
	if _, ok := b.CurrentPoint(); ok {
		t.Error("current point after EndPath")
	}
}

func TestLineAfterClose(t *testing.T) {
	var b Builder
	b.Move(vec.Vec2{X: 0, Y: 0})
	b.Line(vec.Vec2{X: 4, Y: 0})
	b.Close()
	b.Line(vec.Vec2{X: 0, Y: 4})
	o := b.Take()
	if got := o.String(); got != "0 0 m 4 0 l h 0 0 m 0 4 l" {
		t.Errorf("got %q", got)
	}
}

func TestCurrentPointAfterClose(t *testing.T) {
	var b Builder
	b.Move(vec.Vec2{X: 1, Y: 2})
	b.Line(vec.Vec2{X: 5, Y: 2})
	b.Line(vec.Vec2{X: 5, Y: 6})
	b.Close()
	p, ok := b.CurrentPoint()
	if !ok || p != (vec.Vec2{X: 1, Y: 2}) {
		t.Errorf("got current point %v %t, want (1,2)", p, ok)
	}
}

func TestLineWithoutMove(t *testing.T) {
	var b Builder
	b.Line(vec.Vec2{X: 1, Y: 1})
	b.Line(vec.Vec2{X: 2, Y: 1})
	p, ok := b.CurrentPoint()
	if !ok || p != (vec.Vec2{X: 2, Y: 1}) {
		t.Errorf("got current point %v %t", p, ok)
	}
	if got := b.Take().String(); got != "1 1 m 2 1 l" {
		t.Errorf("got %q", got)
	}
}

func TestPeek(t *testing.T) {
	var b Builder
	b.Move(vec.Vec2{X: 1, Y: 1})
	b.Line(vec.Vec2{X: 2, Y: 2})
	p := b.Peek()
	if len(p.Contours) != 1 {
		t.Fatalf("got %d contours", len(p.Contours))
	}
	b.Line(vec.Vec2{X: 3, Y: 3})
	if len(p.Contours[0].Segments) != 1 {
		t.Error("Peek result shares storage with the builder")
	}
}

func TestPath(t *testing.T) {
	var b Builder
	b.Move(vec.Vec2{X: 0, Y: 0})
	b.Curve(vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 0, Y: 1})
	b.Close()
	o := b.Take()

	var cmds []path.Command
	var pts []vec.Vec2
	for cmd, p := range o.Path() {
		cmds = append(cmds, cmd)
		pts = append(pts, p...)
	}
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdClose}
	if d := cmp.Diff(wantCmds, cmds); d != "" {
		t.Errorf("commands (-want +got):\n%s", d)
	}
	if len(pts) != 4 {
		t.Errorf("got %d points, want 4", len(pts))
	}
}

func TestTransform(t *testing.T) {
	var b Builder
	b.Rect(1, 1, 2, 3)
	o := b.Take()
	m := matrix.Matrix{2, 0, 0, 2, 10, 0}
	got := o.Transform(m).Bounds()
	want := rect.Rect{LLx: 12, LLy: 2, URx: 16, URy: 8}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if o.Bounds() != (rect.Rect{LLx: 1, LLy: 1, URx: 3, URy: 4}) {
		t.Error("Transform modified the original outline")
	}
}
