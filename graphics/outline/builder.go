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

import "seehuhn.de/go/geom/vec"

// Builder accumulates the current path of a content stream.
//
// The builder holds the subpath currently under construction, together
// with the completed subpaths.  The zero value is an empty builder.
type Builder struct {
	cur     Contour
	started bool
	out     Outline
}

// Move flushes the current subpath and starts a new one at p.
func (b *Builder) Move(p vec.Vec2) {
	b.Flush()
	b.cur.Start = p
	b.started = true
}

// Line appends a straight line from the current point to p.
func (b *Builder) Line(p vec.Vec2) {
	if !b.prepare(p) {
		return
	}
	b.cur.Segments = append(b.cur.Segments, Segment{End: p})
}

// Curve appends a cubic Bézier curve with control points c1 and c2,
// ending at p.
func (b *Builder) Curve(c1, c2, p vec.Vec2) {
	if !b.prepare(p) {
		return
	}
	b.cur.Segments = append(b.cur.Segments, Segment{Cubic: true, C1: c1, C2: c2, End: p})
}

// prepare makes sure that a segment can be appended.  Without a current
// point, the endpoint p starts a new subpath and false is returned.  After
// a close, the new segment starts a new subpath at the start point of the
// closed one.
func (b *Builder) prepare(p vec.Vec2) bool {
	if !b.started {
		b.cur.Start = p
		b.started = true
		return false
	}
	if b.cur.Closed {
		start := b.cur.Start
		b.Flush()
		b.cur.Start = start
		b.started = true
	}
	return true
}

// Close closes the current subpath.  The subpath stays current until the
// next Move or Flush.
func (b *Builder) Close() {
	if b.started {
		b.cur.Closed = true
	}
}

// Rect flushes the current subpath and appends a closed rectangle with
// corner (x, y), width w and height h directly to the outline.
func (b *Builder) Rect(x, y, w, h float64) {
	b.Flush()
	b.out.Contours = append(b.out.Contours, Contour{
		Start: vec.Vec2{X: x, Y: y},
		Segments: []Segment{
			{End: vec.Vec2{X: x + w, Y: y}},
			{End: vec.Vec2{X: x + w, Y: y + h}},
			{End: vec.Vec2{X: x, Y: y + h}},
		},
		Closed: true,
	})
}

// CurrentPoint returns the current point, if there is one.  After Close,
// this is the start point of the closed subpath.
func (b *Builder) CurrentPoint() (vec.Vec2, bool) {
	if b.started {
		if b.cur.Closed {
			return b.cur.Start, true
		}
		return b.cur.End(), true
	}
	if n := len(b.out.Contours); n > 0 {
		return b.out.Contours[n-1].Start, true
	}
	return vec.Vec2{}, false
}

// Flush moves a non-empty current subpath into the outline.
func (b *Builder) Flush() {
	if b.started {
		b.out.Contours = append(b.out.Contours, b.cur)
	}
	b.cur = Contour{}
	b.started = false
}

// EndPath discards the current subpath and the outline.
func (b *Builder) EndPath() {
	b.cur = Contour{}
	b.started = false
	b.out = Outline{}
}

// Take flushes the current subpath and returns the accumulated outline.
// The builder is empty afterwards.
func (b *Builder) Take() *Outline {
	b.Flush()
	res := &Outline{Contours: b.out.Contours}
	b.out = Outline{}
	return res
}

// Peek returns a copy of the accumulated outline, including the current
// subpath, without changing the builder.
func (b *Builder) Peek() *Outline {
	res := b.out.Clone()
	if b.started {
		res.Contours = append(res.Contours, b.cur.clone())
	}
	return res
}

// IsEmpty reports whether there is no current path.
func (b *Builder) IsEmpty() bool {
	return !b.started && len(b.out.Contours) == 0
}
