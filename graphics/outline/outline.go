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

// Package outline represents the geometry of PDF paths.
//
// An [Outline] is a sequence of contours, each of which is a connected
// subpath made of straight lines and cubic Bézier curves.  A [Builder]
// assembles an outline from the path construction operators of a
// content stream.
package outline

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is a straight line or a cubic Bézier curve.
// For lines, only End is used.
type Segment struct {
	Cubic  bool
	C1, C2 vec.Vec2
	End    vec.Vec2
}

// Contour is a connected subpath.
type Contour struct {
	Start    vec.Vec2
	Segments []Segment
	Closed   bool
}

// NumPoints returns the number of on-curve points of the contour,
// including the start point.
func (c *Contour) NumPoints() int {
	return 1 + len(c.Segments)
}

// End returns the current point at the end of the contour.
func (c *Contour) End() vec.Vec2 {
	if len(c.Segments) == 0 {
		return c.Start
	}
	return c.Segments[len(c.Segments)-1].End
}

func (c *Contour) clone() Contour {
	res := *c
	res.Segments = append([]Segment(nil), c.Segments...)
	return res
}

// Outline is a sequence of contours.
type Outline struct {
	Contours []Contour
}

// IsEmpty reports whether the outline has no contours.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Contours) == 0
}

// Clone returns a deep copy of the outline.
func (o *Outline) Clone() *Outline {
	if o == nil {
		return nil
	}
	res := &Outline{Contours: make([]Contour, len(o.Contours))}
	for i := range o.Contours {
		res.Contours[i] = o.Contours[i].clone()
	}
	return res
}

// Transform returns a copy of the outline with all points mapped by m.
func (o *Outline) Transform(m matrix.Matrix) *Outline {
	res := o.Clone()
	if res == nil {
		return nil
	}
	for i := range res.Contours {
		c := &res.Contours[i]
		c.Start.X, c.Start.Y = m.Apply(c.Start.X, c.Start.Y)
		for j := range c.Segments {
			s := &c.Segments[j]
			s.End.X, s.End.Y = m.Apply(s.End.X, s.End.Y)
			if s.Cubic {
				s.C1.X, s.C1.Y = m.Apply(s.C1.X, s.C1.Y)
				s.C2.X, s.C2.Y = m.Apply(s.C2.X, s.C2.Y)
			}
		}
	}
	return res
}

// Bounds returns the bounding box of all points of the outline,
// including Bézier control points.  The zero rectangle is returned
// for an empty outline.
func (o *Outline) Bounds() rect.Rect {
	if o.IsEmpty() {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	add := func(p vec.Vec2) {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	for _, c := range o.Contours {
		add(c.Start)
		for _, s := range c.Segments {
			add(s.End)
			if s.Cubic {
				add(s.C1)
				add(s.C2)
			}
		}
	}
	return b
}

// Path returns the outline as a sequence of path commands.
func (o *Outline) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if o == nil {
			return
		}
		var buf [3]vec.Vec2
		for _, c := range o.Contours {
			buf[0] = c.Start
			if !yield(path.CmdMoveTo, buf[:1]) {
				return
			}
			for _, s := range c.Segments {
				if s.Cubic {
					buf[0], buf[1], buf[2] = s.C1, s.C2, s.End
					if !yield(path.CmdCubeTo, buf[:3]) {
						return
					}
				} else {
					buf[0] = s.End
					if !yield(path.CmdLineTo, buf[:1]) {
						return
					}
				}
			}
			if c.Closed && !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}

// String returns the outline in PDF path construction syntax.
func (o *Outline) String() string {
	if o.IsEmpty() {
		return "<empty>"
	}
	var res []byte
	for _, c := range o.Contours {
		res = fmt.Appendf(res, "%g %g m ", c.Start.X, c.Start.Y)
		for _, s := range c.Segments {
			if s.Cubic {
				res = fmt.Appendf(res, "%g %g %g %g %g %g c ",
					s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.End.X, s.End.Y)
			} else {
				res = fmt.Appendf(res, "%g %g l ", s.End.X, s.End.Y)
			}
		}
		if c.Closed {
			res = append(res, "h "...)
		}
	}
	return string(res[:len(res)-1])
}
