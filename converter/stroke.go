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

package converter

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdraw/graphics"
	"seehuhn.de/go/pdfdraw/graphics/outline"
)

// flatStep is the approximate length, in device units, of the line
// segments used to approximate curves.
const flatStep = 2.0

// A polyline is a flattened subpath.
type polyline struct {
	pts    []vec.Vec2
	closed bool
}

// flatten maps o to device space and replaces curves by line segments.
func flatten(o *outline.Outline, m matrix.Matrix) []polyline {
	var res []polyline
	var cur polyline
	flush := func() {
		if len(cur.pts) > 0 {
			res = append(res, cur)
		}
		cur = polyline{}
	}
	for cmd, pts := range o.Transform(m).Path() {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			cur.pts = append(cur.pts, pts[0])
		case path.CmdLineTo:
			cur.pts = append(cur.pts, pts[0])
		case path.CmdQuadTo:
			p0 := cur.pts[len(cur.pts)-1]
			c := pts[0]
			p := pts[1]
			c1 := lerp(p0, c, 2.0/3)
			c2 := lerp(p, c, 2.0/3)
			cur.pts = appendCubic(cur.pts, c1, c2, p)
		case path.CmdCubeTo:
			cur.pts = appendCubic(cur.pts, pts[0], pts[1], pts[2])
		case path.CmdClose:
			cur.closed = true
		}
	}
	flush()
	return res
}

// appendCubic appends points on the cubic Bézier curve from the last
// point of pts, not including the start point.
func appendCubic(pts []vec.Vec2, c1, c2, p vec.Vec2) []vec.Vec2 {
	p0 := pts[len(pts)-1]
	l := dist(p0, c1) + dist(c1, c2) + dist(c2, p)
	n := min(max(int(math.Ceil(l/flatStep)), 1), 256)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		a, b, c, d := s*s*s, 3*s*s*t, 3*s*t*t, t*t*t
		pts = append(pts, vec.Vec2{
			X: a*p0.X + b*c1.X + c*c2.X + d*p.X,
			Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p.Y,
		})
	}
	return pts
}

// dash splits the polylines according to a dash pattern.  The result
// consists of open polylines only.
func dash(lines []polyline, pat []float64, phase float64) []polyline {
	total := 0.0
	for _, x := range pat {
		total += x
	}
	if total <= 0 {
		return lines
	}

	var res []polyline
	for _, pl := range lines {
		pts := pl.pts
		if pl.closed && len(pts) > 1 {
			pts = append(slices.Clone(pts), pts[0])
		}

		// find the starting position within the pattern
		idx, on := 0, true
		ph := math.Mod(phase, total)
		if ph < 0 {
			ph += total
		}
		for ph >= pat[idx] {
			ph -= pat[idx]
			idx = (idx + 1) % len(pat)
			on = !on
		}
		remaining := pat[idx] - ph

		var cur []vec.Vec2
		if on {
			cur = []vec.Vec2{pts[0]}
		}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			segLen := dist(a, b)
			pos := 0.0
			for segLen-pos > remaining {
				pos += remaining
				p := lerp(a, b, pos/segLen)
				if on {
					res = append(res, polyline{pts: append(cur, p)})
					cur = nil
				} else {
					cur = []vec.Vec2{p}
				}
				on = !on
				idx = (idx + 1) % len(pat)
				remaining = pat[idx]
			}
			remaining -= segLen - pos
			if on {
				cur = append(cur, b)
			}
		}
		if on && len(cur) > 1 {
			res = append(res, polyline{pts: cur})
		}
	}
	return res
}

// strokePolygons returns polygons which together cover the area painted
// by stroking the polylines with half width hw.  All polygons are
// oriented counter-clockwise, so that the nonzero winding rule gives
// their union.
func strokePolygons(lines []polyline, hw float64, style graphics.StrokeStyle) [][]vec.Vec2 {
	var res [][]vec.Vec2
	add := func(poly ...vec.Vec2) {
		if area(poly) < 0 {
			slices.Reverse(poly)
		}
		res = append(res, poly)
	}

	for _, pl := range lines {
		if len(pl.pts) < 2 {
			// a lone move is not painted
			continue
		}
		pts := dedup(pl.pts)
		closed := pl.closed && len(pts) > 2
		if closed && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}

		if len(pts) == 2 && pts[0] == pts[1] {
			p := pts[0]
			switch style.Cap {
			case graphics.LineCapRound:
				add(circle(p, hw)...)
			case graphics.LineCapSquare:
				add(
					vec.Vec2{X: p.X - hw, Y: p.Y - hw},
					vec.Vec2{X: p.X + hw, Y: p.Y - hw},
					vec.Vec2{X: p.X + hw, Y: p.Y + hw},
					vec.Vec2{X: p.X - hw, Y: p.Y + hw},
				)
			}
			continue
		}

		n := len(pts)
		numSeg := n - 1
		if closed {
			numSeg = n
		}
		for i := 0; i < numSeg; i++ {
			a, b := pts[i], pts[(i+1)%n]
			nv := normal(a, b, hw)
			add(
				vec.Vec2{X: a.X + nv.X, Y: a.Y + nv.Y},
				vec.Vec2{X: b.X + nv.X, Y: b.Y + nv.Y},
				vec.Vec2{X: b.X - nv.X, Y: b.Y - nv.Y},
				vec.Vec2{X: a.X - nv.X, Y: a.Y - nv.Y},
			)
		}

		// joins
		for i := 0; i < n; i++ {
			if !closed && (i == 0 || i == n-1) {
				continue
			}
			prev, p, next := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
			if j := join(prev, p, next, hw, style); j != nil {
				add(j...)
			}
		}

		// caps
		if !closed {
			for _, end := range [2][2]vec.Vec2{{pts[1], pts[0]}, {pts[n-2], pts[n-1]}} {
				from, p := end[0], end[1]
				switch style.Cap {
				case graphics.LineCapRound:
					add(circle(p, hw)...)
				case graphics.LineCapSquare:
					l := dist(from, p)
					d := vec.Vec2{X: (p.X - from.X) / l * hw, Y: (p.Y - from.Y) / l * hw}
					nv := normal(from, p, hw)
					add(
						vec.Vec2{X: p.X + nv.X, Y: p.Y + nv.Y},
						vec.Vec2{X: p.X + nv.X + d.X, Y: p.Y + nv.Y + d.Y},
						vec.Vec2{X: p.X - nv.X + d.X, Y: p.Y - nv.Y + d.Y},
						vec.Vec2{X: p.X - nv.X, Y: p.Y - nv.Y},
					)
				}
			}
		}
	}
	return res
}

// join returns the polygon which fills the gap between the segments
// prev-p and p-next on the outside of the corner, or nil.
func join(prev, p, next vec.Vec2, hw float64, style graphics.StrokeStyle) []vec.Vec2 {
	if style.Join == graphics.LineJoinRound {
		return circle(p, hw)
	}

	d1x, d1y := p.X-prev.X, p.Y-prev.Y
	d2x, d2y := next.X-p.X, next.Y-p.Y
	cross := d1x*d2y - d1y*d2x
	if math.Abs(cross) < 1e-12*(d1x*d1x+d1y*d1y+d2x*d2x+d2y*d2y) {
		return nil
	}

	n1 := normal(prev, p, hw)
	n2 := normal(p, next, hw)
	if cross > 0 {
		// left turn: the outside is on the right
		n1 = vec.Vec2{X: -n1.X, Y: -n1.Y}
		n2 = vec.Vec2{X: -n2.X, Y: -n2.Y}
	}
	o1 := vec.Vec2{X: p.X + n1.X, Y: p.Y + n1.Y}
	o2 := vec.Vec2{X: p.X + n2.X, Y: p.Y + n2.Y}

	if style.Join == graphics.LineJoinMiter {
		bx, by := n1.X+n2.X, n1.Y+n2.Y
		bl := math.Hypot(bx, by)
		if bl > 0 {
			bx, by = bx/bl, by/bl
			cosHalf := (bx*n1.X + by*n1.Y) / hw
			if cosHalf > 0 && 1/cosHalf <= style.MiterLimit {
				m := vec.Vec2{X: p.X + bx*hw/cosHalf, Y: p.Y + by*hw/cosHalf}
				return []vec.Vec2{p, o1, m, o2}
			}
		}
	}
	return []vec.Vec2{p, o1, o2}
}

// normal returns the left normal of the segment a-b, with length hw.
func normal(a, b vec.Vec2, hw float64) vec.Vec2 {
	l := dist(a, b)
	if l == 0 {
		return vec.Vec2{}
	}
	return vec.Vec2{X: -(b.Y - a.Y) / l * hw, Y: (b.X - a.X) / l * hw}
}

func circle(c vec.Vec2, r float64) []vec.Vec2 {
	n := min(max(int(math.Ceil(2*math.Pi*r/flatStep)), 8), 128)
	res := make([]vec.Vec2, n)
	for i := range res {
		phi := 2 * math.Pi * float64(i) / float64(n)
		res[i] = vec.Vec2{X: c.X + r*math.Cos(phi), Y: c.Y + r*math.Sin(phi)}
	}
	return res
}

// area returns the signed area of a polygon.  The area is positive for
// counter-clockwise polygons in a y-up coordinate system.
func area(poly []vec.Vec2) float64 {
	s := 0.0
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		s += p.X*q.Y - q.X*p.Y
	}
	return s / 2
}

func dedup(pts []vec.Vec2) []vec.Vec2 {
	res := pts[:1:1]
	for _, p := range pts[1:] {
		if p != res[len(res)-1] {
			res = append(res, p)
		}
	}
	if len(res) == 1 && len(pts) > 1 {
		// a zero-length segment is drawn as a dot
		res = append(res, res[0])
	}
	return res
}

func dist(a, b vec.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}
