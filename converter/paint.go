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
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/graphics/color"
	"seehuhn.de/go/pdfdraw/graphics/pattern"
	"seehuhn.de/go/pdfdraw/render"
)

// patternCache maps pattern colours to solid colours.
type patternCache struct {
	res   *render.Resources
	known map[pdfdraw.Name]color.Solid
}

// solid returns the colour used to paint c.  Patterns are replaced by
// an approximating solid colour, see [pattern.Fallback].
func (pc *patternCache) solid(c color.Color) color.Solid {
	switch c := c.(type) {
	case color.Solid:
		return c
	case color.PatternRef:
		if s, ok := pc.known[c.Name]; ok {
			return s
		}
		var s color.Solid
		p, err := pc.res.Pattern(c.Name)
		if err == nil {
			s = pattern.Fallback(p)
		}
		if pc.known == nil {
			pc.known = make(map[pdfdraw.Name]color.Solid)
		}
		pc.known[c.Name] = s
		return s
	default:
		return color.Solid{}
	}
}

// scale returns the factor by which m changes lengths, on average.
func scale(m matrix.Matrix) float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

func clamp(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8(x float64) uint8 {
	return uint8(clamp(x)*255 + 0.5)
}

func colorString(c color.Color) string {
	switch c := c.(type) {
	case color.Solid:
		return fmt.Sprintf("rgb(%.4g %.4g %.4g)", c.R, c.G, c.B)
	case color.PatternRef:
		return "pattern(" + string(c.Name) + ")"
	default:
		return "none"
	}
}
